/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"encoding/pem"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	mspctx "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config/cryptoutil"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/identity"
)

// certSKI returns the subject key identifier of the public key in a PEM certificate
type certSKI func(certPEM []byte) ([]byte, error)

// sdkCertSKI computes the SKI the way the SDK does when it looks up the
// private key of a stored user
func sdkCertSKI(cs core.CryptoSuite) certSKI {
	return func(certPEM []byte) ([]byte, error) {
		key, err := cryptoutil.GetPublicKeyFromCert(certPEM, cs)
		if err != nil {
			return nil, err
		}
		return key.SKI(), nil
	}
}

type keyWriter interface {
	Write(ski []byte, keyPEM []byte) error
}

type userStore interface {
	Store(user *mspctx.UserData) error
}

// registrarLoader makes a wallet identity usable as the SDK registrar by
// writing its certificate to the SDK user store and its private key to the
// SDK keystore, where the msp client looks the registrar up by enrollment ID.
type registrarLoader struct {
	ski   certSKI
	keys  keyWriter
	users userStore
}

func (r *registrarLoader) load(registrar *identity.Identity) error {
	if err := registrar.Validate(); err != nil {
		return errors.WithMessage(err, "invalid registrar identity")
	}

	if block, _ := pem.Decode([]byte(registrar.PrivateKey)); block == nil {
		return errors.Errorf("private key of registrar [%s] is not PEM encoded", registrar.Label)
	}

	ski, err := r.ski([]byte(registrar.Certificate))
	if err != nil {
		return errors.WithMessagef(err, "invalid certificate of registrar [%s]", registrar.Label)
	}
	if err := r.keys.Write(ski, []byte(registrar.PrivateKey)); err != nil {
		return errors.WithMessagef(err, "failed to store private key of registrar [%s]", registrar.Label)
	}

	userData := &mspctx.UserData{
		ID:                    registrar.Label,
		MSPID:                 registrar.MSPID,
		EnrollmentCertificate: []byte(registrar.Certificate),
	}
	if err := r.users.Store(userData); err != nil {
		return errors.Wrapf(err, "failed to store certificate of registrar [%s]", registrar.Label)
	}

	logger.Debugf("loaded registrar [%s] into the SDK credential store", registrar.Label)
	return nil
}
