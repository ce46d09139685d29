/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
)

// SDKStore adapts a gateway wallet to the Store interface
type SDKStore struct {
	wallet *gateway.Wallet
}

// NewFileSystemStore opens a filesystem wallet rooted at path
func NewFileSystemStore(path string) (*SDKStore, error) {
	if path == "" {
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "wallet path is required")
	}
	w, err := gateway.NewFileSystemWallet(path)
	if err != nil {
		return nil, status.New(status.WalletStatus, status.ReadFailed, "failed to open wallet at "+path, err)
	}
	logger.Debugf("opened filesystem wallet at %s", path)
	return &SDKStore{wallet: w}, nil
}

// NewInMemoryStore returns a store that is lost when the process exits
func NewInMemoryStore() *SDKStore {
	return &SDKStore{wallet: gateway.NewInMemoryWallet()}
}

// Get returns the record stored under label
func (s *SDKStore) Get(label string) (*identity.Identity, error) {
	if !s.wallet.Exists(label) {
		return nil, errors.Wrapf(ErrNotFound, "label [%s]", label)
	}
	walletID, err := s.wallet.Get(label)
	if err != nil {
		return nil, readFailed(label, err)
	}
	id, err := identity.FromWallet(label, walletID)
	if err != nil {
		return nil, readFailed(label, err)
	}
	return id, nil
}

// Put writes the record under its label, replacing any existing record
func (s *SDKStore) Put(id *identity.Identity) error {
	if err := id.Validate(); err != nil {
		return status.New(status.WalletStatus, status.WriteFailed, "invalid identity", err)
	}
	// the filesystem wallet does not truncate an existing file on write
	if err := s.wallet.Remove(id.Label); err != nil {
		return writeFailed(id.Label, err)
	}
	if err := s.wallet.Put(id.Label, id.ToX509()); err != nil {
		return writeFailed(id.Label, err)
	}
	return nil
}
