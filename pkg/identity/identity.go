/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identity defines the record persisted in a wallet: a labelled
// X.509 certificate and private key pair plus the MSP the identity belongs to.
package identity

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
)

// X509Type is the only credential scheme supported by the wallet helpers
const X509Type = "X.509"

// Identity is a wallet record
type Identity struct {
	Label       string
	MSPID       string
	Type        string
	Certificate string
	PrivateKey  string
}

// New creates an X.509 identity record
func New(label, mspID, cert, key string) *Identity {
	return &Identity{
		Label:       label,
		MSPID:       mspID,
		Type:        X509Type,
		Certificate: cert,
		PrivateKey:  key,
	}
}

// Validate checks that all fields required by the wallet are present.
// Certificate and key contents are opaque and are not parsed.
func (id *Identity) Validate() error {
	if id == nil {
		return errors.New("identity is nil")
	}
	if id.Label == "" {
		return errors.New("identity label is required")
	}
	if id.MSPID == "" {
		return errors.Errorf("MSP ID is required for identity [%s]", id.Label)
	}
	if id.Type != X509Type {
		return errors.Errorf("unsupported identity type [%s] for identity [%s]", id.Type, id.Label)
	}
	if id.Certificate == "" {
		return errors.Errorf("certificate is required for identity [%s]", id.Label)
	}
	if id.PrivateKey == "" {
		return errors.Errorf("private key is required for identity [%s]", id.Label)
	}
	return nil
}

// ToX509 converts the record into the SDK wallet representation
func (id *Identity) ToX509() *gateway.X509Identity {
	return gateway.NewX509Identity(id.MSPID, id.Certificate, id.PrivateKey)
}

// FromWallet converts an identity read from an SDK wallet into a record
// stored under label
func FromWallet(label string, walletID gateway.Identity) (*Identity, error) {
	x509ID, ok := walletID.(*gateway.X509Identity)
	if !ok || x509ID == nil {
		return nil, errors.Errorf("identity [%s] is not an X.509 identity", label)
	}
	return New(label, x509ID.MspID, x509ID.Certificate(), x509ID.Key()), nil
}
