/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package wallet provides the credential stores that hold identity records.
//
// The filesystem and in-memory stores delegate to the SDK gateway wallet, so
// the on-disk format is the one every Fabric SDK reads. The vault store keeps
// the same JSON record shape in a Vault KV v2 secrets engine.
package wallet

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
)

var logger = logging.NewLogger("fabwallet/wallet")

// Store types accepted by Open
const (
	FileSystemType = "filesystem"
	VaultType      = "vault"
)

// ErrNotFound is returned by Get when no record exists for a label
var ErrNotFound = errors.New("identity not found in wallet")

// Store is a keyed collection of identity records
type Store interface {
	// Get returns the record stored under label, or ErrNotFound
	Get(label string) (*identity.Identity, error)
	// Put writes the record under its label, replacing any existing record
	Put(id *identity.Identity) error
}

// IsNotFound reports whether err means the label has no record
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// Exists reports whether a record is stored under label. Read failures other
// than a missing record are returned to the caller.
func Exists(store Store, label string) (bool, error) {
	_, err := store.Get(label)
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// Config selects and configures a store
type Config struct {
	Type  string
	Path  string
	Vault VaultConfig
}

// Open returns the store described by cfg. A filesystem store creates its
// directory if it does not exist.
func Open(cfg Config) (Store, error) {
	switch cfg.Type {
	case "", FileSystemType:
		return NewFileSystemStore(cfg.Path)
	case VaultType:
		return NewVaultStore(cfg.Vault)
	default:
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "unsupported wallet type [%s]", cfg.Type)
	}
}

func readFailed(label string, err error) error {
	return status.New(status.WalletStatus, status.ReadFailed, "failed to read identity ["+label+"] from wallet", err)
}

func writeFailed(label string, err error) error {
	return status.New(status.WalletStatus, status.WriteFailed, "failed to write identity ["+label+"] to wallet", err)
}
