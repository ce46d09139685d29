/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mspimport copies the signing certificate and private key of an MSP
// directory, as produced by cryptogen or the Fabric CA client, into a wallet.
package mspimport

import (
	"io/ioutil"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
	"github.com/sdnml/fabwallet/pkg/wallet"
)

var logger = logging.NewLogger("fabwallet/mspimport")

// Request holds the inputs of one import
type Request struct {
	// MSPPath is the root of the MSP directory
	MSPPath string
	Label   string
	MSPID   string
}

// Importer writes MSP credentials into a wallet
type Importer struct {
	store wallet.Store
}

// New returns an Importer
func New(store wallet.Store) *Importer {
	return &Importer{store: store}
}

// Run reads the MSP credentials and stores them under req.Label. A record
// already stored under the label is replaced without being read.
func (i *Importer) Run(req Request) (*identity.Identity, error) {
	if req.MSPPath == "" || req.Label == "" || req.MSPID == "" {
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "MSP path, identity label and MSP ID are required")
	}

	certPath, keyPath, err := Layout{Root: req.MSPPath}.Resolve()
	if err != nil {
		return nil, err
	}
	logger.Debugf("importing %s and %s", certPath, keyPath)

	cert, err := readFile(certPath)
	if err != nil {
		return nil, err
	}
	key, err := readFile(keyPath)
	if err != nil {
		return nil, err
	}

	id := identity.New(req.Label, req.MSPID, string(cert), string(key))
	if err := i.store.Put(id); err != nil {
		return nil, errors.WithMessagef(err, "failed to import identity [%s]", req.Label)
	}

	logger.Infof("Imported identity %s into wallet", req.Label)
	return id, nil
}

func readFile(path string) ([]byte, error) {
	raw, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, status.New(status.ConfigStatus, status.ReadFailed, "failed to read "+path, err)
	}
	return raw, nil
}
