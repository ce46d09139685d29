/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package enroll makes sure an admin identity and a user identity exist in a
// wallet, enrolling the admin and registering the user with the CA when they
// are missing.
//
//  Basic Flow:
//  1) Enroll the admin unless the wallet already holds it
//  2) Stop if the wallet already holds the user
//  3) Register the user with the admin as registrar, enroll it and store it
package enroll

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/ca"
	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
	"github.com/sdnml/fabwallet/pkg/wallet"
)

var logger = logging.NewLogger("fabwallet/enroll")

// Request holds the inputs of one enrollment run
type Request struct {
	AdminName   string
	AdminSecret string
	UserLabel   string
	MSPID       string
	Affiliation string
}

func (r *Request) validate() error {
	switch {
	case r.AdminName == "":
		return errors.New("admin name is required")
	case r.AdminSecret == "":
		return errors.New("admin password is required")
	case r.UserLabel == "":
		return errors.New("user label is required")
	case r.MSPID == "":
		return errors.New("MSP ID is required")
	}
	return nil
}

// Result reports which identities a run created
type Result struct {
	AdminEnrolled  bool
	UserRegistered bool
}

// Enroller runs the enrollment flow against a wallet and a CA
type Enroller struct {
	store wallet.Store
	ca    ca.CertificateAuthority
}

// New returns an Enroller
func New(store wallet.Store, authority ca.CertificateAuthority) *Enroller {
	return &Enroller{store: store, ca: authority}
}

// Run enrolls the admin and registers the user as needed. Identities already
// in the wallet are never refreshed. An admin stored by this run stays in the
// wallet even if the user step fails.
func (e *Enroller) Run(req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, status.New(status.ConfigStatus, status.InvalidConfig, "invalid enrollment request", err)
	}

	result := &Result{}

	enrolled, err := e.ensureAdmin(req)
	if err != nil {
		return result, err
	}
	result.AdminEnrolled = enrolled

	exists, err := wallet.Exists(e.store, req.UserLabel)
	if err != nil {
		return result, errors.WithMessagef(err, "failed to look up user [%s]", req.UserLabel)
	}
	if exists {
		logger.Infof("%s already exists in the wallet", req.UserLabel)
		return result, nil
	}

	if err := e.registerUser(req); err != nil {
		return result, err
	}
	result.UserRegistered = true

	logger.Infof("Successfully registered and enrolled user %s and imported it into the wallet", req.UserLabel)
	return result, nil
}

func (e *Enroller) ensureAdmin(req Request) (bool, error) {
	exists, err := wallet.Exists(e.store, req.AdminName)
	if err != nil {
		return false, errors.WithMessagef(err, "failed to look up admin [%s]", req.AdminName)
	}
	if exists {
		logger.Infof("Admin identity already in wallet")
		return false, nil
	}

	logger.Infof("Enrolling admin...")
	enrollment, err := e.ca.Enroll(req.AdminName, req.AdminSecret)
	if err != nil {
		return false, errors.WithMessagef(err, "failed to enroll admin [%s]", req.AdminName)
	}

	admin := identity.New(req.AdminName, req.MSPID, enrollment.Certificate, enrollment.PrivateKey)
	if err := e.store.Put(admin); err != nil {
		return false, errors.WithMessagef(err, "failed to store admin [%s]", req.AdminName)
	}

	logger.Infof("Admin enrolled and imported to wallet")
	return true, nil
}

func (e *Enroller) registerUser(req Request) error {
	registrar, err := e.store.Get(req.AdminName)
	if err != nil {
		return errors.WithMessagef(err, "failed to load registrar [%s]", req.AdminName)
	}

	secret, err := e.ca.Register(&ca.RegistrationRequest{
		Affiliation:  req.Affiliation,
		EnrollmentID: req.UserLabel,
		Role:         ca.ClientRole,
	}, registrar)
	if err != nil {
		return errors.WithMessagef(err, "failed to register user [%s]", req.UserLabel)
	}

	enrollment, err := e.ca.Enroll(req.UserLabel, secret)
	if err != nil {
		return errors.WithMessagef(err, "failed to enroll user [%s]", req.UserLabel)
	}

	user := identity.New(req.UserLabel, req.MSPID, enrollment.Certificate, enrollment.PrivateKey)
	if err := e.store.Put(user); err != nil {
		return errors.WithMessagef(err, "failed to store user [%s]", req.UserLabel)
	}
	return nil
}
