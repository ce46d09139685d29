/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ca enrolls and registers identities with a Fabric Certificate
// Authority.
//
// The CertificateAuthority interface is what the enrollment flow depends on.
// FabricCA implements it on top of the fabric-sdk-go msp client, which owns
// the CA wire protocol, CSR generation and key storage.
package ca

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"

	"github.com/sdnml/fabwallet/pkg/identity"
)

var logger = logging.NewLogger("fabwallet/ca")

// ClientRole is the identity type given to users registered by the enrollment flow
const ClientRole = "client"

// Enrollment is the credential pair issued by the CA
type Enrollment struct {
	// Certificate is the PEM encoded enrollment certificate
	Certificate string
	// PrivateKey is the PEM encoded private key the certificate was issued for
	PrivateKey string
}

// RegistrationRequest defines the attributes of a new identity
type RegistrationRequest struct {
	Affiliation  string
	EnrollmentID string
	Role         string
}

// CertificateAuthority issues credentials
type CertificateAuthority interface {
	// Enroll exchanges an enrollment ID and secret for a certificate and key
	Enroll(enrollmentID, secret string) (*Enrollment, error)
	// Register creates a new enrollable identity on behalf of registrar and
	// returns its one-time enrollment secret
	Register(req *RegistrationRequest, registrar *identity.Identity) (string, error)
}
