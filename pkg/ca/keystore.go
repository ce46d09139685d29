/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"encoding/hex"
	"encoding/pem"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/pkg/errors"
)

const privateKeySuffix = "_sk"

// keyFilePath returns the SDK software keystore file for ski
func keyFilePath(keystorePath string, ski []byte) string {
	return filepath.Join(keystorePath, hex.EncodeToString(ski)+privateKeySuffix)
}

// privateKeyPEM returns the PEM encoded private key the SDK software keystore
// holds for key. Keys are stored as <keystore>/<hex SKI>_sk.
func privateKeyPEM(keystorePath string, key core.Key) ([]byte, error) {
	if key == nil {
		return nil, errors.New("signing identity has no private key")
	}
	ski := key.SKI()
	if len(ski) == 0 {
		return nil, errors.New("private key has an empty SKI")
	}

	keyFile := keyFilePath(keystorePath, ski)
	raw, err := ioutil.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read private key from keystore")
	}

	if block, _ := pem.Decode(raw); block == nil {
		return nil, errors.Errorf("private key file %s is not PEM encoded", keyFile)
	}
	return raw, nil
}

// fileKeyWriter writes PEM private keys where the SDK software keystore
// looks them up by SKI
type fileKeyWriter struct {
	path string
}

func (w *fileKeyWriter) Write(ski []byte, keyPEM []byte) error {
	if len(ski) == 0 {
		return errors.New("private key has an empty SKI")
	}
	if err := os.MkdirAll(w.path, 0700); err != nil {
		return errors.Wrap(err, "failed to create keystore")
	}
	if err := ioutil.WriteFile(keyFilePath(w.path, ski), keyPEM, 0600); err != nil {
		return errors.Wrap(err, "failed to write private key to keystore")
	}
	return nil
}
