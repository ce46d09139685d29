/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mspimport

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sdnml/fabwallet/pkg/status"
)

const (
	signCertsDir  = "signcerts"
	certFileName  = "cert.pem"
	keystoreDir   = "keystore"
	privateKeyExt = "_sk"
)

// Layout locates the credentials inside an MSP directory:
// <root>/signcerts/cert.pem and <root>/keystore/<name>_sk
type Layout struct {
	Root string
}

// CertPath is the signing certificate file
func (l Layout) CertPath() string {
	return filepath.Join(l.Root, signCertsDir, certFileName)
}

// KeystorePath is the directory holding the private key
func (l Layout) KeystorePath() string {
	return filepath.Join(l.Root, keystoreDir)
}

// Resolve returns the certificate and private key paths. It fails if the
// certificate is missing or the keystore holds no *_sk file. Key file names
// are sorted and the first one is used.
func (l Layout) Resolve() (certPath, keyPath string, err error) {
	certPath = l.CertPath()
	info, err := os.Stat(certPath)
	if err != nil || info.IsDir() {
		return "", "", status.New(status.ConfigStatus, status.MissingCertificate, "certificate not found at "+certPath, err)
	}

	keyDir := l.KeystorePath()
	files, err := ioutil.ReadDir(keyDir)
	if err != nil {
		return "", "", status.New(status.ConfigStatus, status.MissingPrivateKey, "no private key file found in "+keyDir, err)
	}

	var keys []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), privateKeyExt) {
			keys = append(keys, f.Name())
		}
	}
	if len(keys) == 0 {
		return "", "", status.Errorf(status.ConfigStatus, status.MissingPrivateKey, "no private key file found in %s", keyDir)
	}

	sort.Strings(keys)
	if len(keys) > 1 {
		logger.Warnf("found %d private keys in %s, using %s", len(keys), keyDir, keys[0])
	}
	return certPath, filepath.Join(keyDir, keys[0]), nil
}
