/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	mspctx "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
	mspimpl "github.com/hyperledger/fabric-sdk-go/pkg/msp"
	"github.com/pkg/errors"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
)

// Config describes the CA and the local SDK state used to talk to it
type Config struct {
	// URL of the CA, e.g. https://localhost:7054
	URL string
	// CAName is the name of the CA instance on a multi-CA server
	CAName string
	// TLSCertPath is the CA TLS root certificate, required for CAs whose
	// certificate is not in the system pool
	TLSCertPath string
	// OrgName is the client organization in the connection profile
	OrgName string
	MSPID   string
	// StorePath holds the SDK user store and keystore
	StorePath string
	// Registrar is the enrollment ID allowed to register new identities
	Registrar       string
	RegistrarSecret string
	LogLevel        string
}

func (c Config) statePath() string {
	return filepath.Join(c.StorePath, "state")
}

func (c Config) cryptoPath() string {
	return filepath.Join(c.StorePath, "crypto")
}

func (c Config) keystorePath() string {
	return filepath.Join(c.cryptoPath(), "keystore")
}

func (c Config) validate() error {
	switch {
	case c.URL == "":
		return errors.New("CA URL is required")
	case c.OrgName == "":
		return errors.New("organization is required")
	case c.MSPID == "":
		return errors.New("MSP ID is required")
	case c.StorePath == "":
		return errors.New("CA store path is required")
	case c.Registrar == "":
		return errors.New("registrar enrollment ID is required")
	}
	return nil
}

type mspClient interface {
	Enroll(enrollmentID string, opts ...msp.EnrollmentOption) error
	Register(request *msp.RegistrationRequest) (string, error)
	GetSigningIdentity(id string) (mspctx.SigningIdentity, error)
}

// FabricCA is a CertificateAuthority backed by the fabric-sdk-go msp client
type FabricCA struct {
	sdk       *fabsdk.FabricSDK
	client    mspClient
	registrar *registrarLoader
	cfg       Config
}

// NewFabricCA creates an SDK instance for the CA described by cfg
func NewFabricCA(cfg Config) (*FabricCA, error) {
	if err := cfg.validate(); err != nil {
		return nil, status.New(status.ConfigStatus, status.InvalidConfig, "invalid CA configuration", err)
	}

	raw, err := NewProfile(cfg).Marshal()
	if err != nil {
		return nil, status.New(status.ConfigStatus, status.InvalidConfig, "invalid CA configuration", err)
	}

	sdk, err := fabsdk.New(config.FromRaw(raw, "yaml"))
	if err != nil {
		return nil, status.New(status.CAServerStatus, status.Unavailable, "failed to create SDK", err)
	}

	c, err := newFabricCA(sdk, cfg)
	if err != nil {
		sdk.Close()
		return nil, status.New(status.CAServerStatus, status.Unavailable, "failed to create CA client", err)
	}

	logger.Debugf("CA client created for %s (org %s)", cfg.URL, cfg.OrgName)
	return c, nil
}

func newFabricCA(sdk *fabsdk.FabricSDK, cfg Config) (*FabricCA, error) {
	client, err := msp.New(sdk.Context(), msp.WithOrg(cfg.OrgName))
	if err != nil {
		return nil, err
	}

	ctx, err := sdk.Context()()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create SDK context")
	}

	users, err := mspimpl.NewCertFileUserStore(cfg.statePath())
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open SDK user store")
	}

	registrar := &registrarLoader{
		ski:   sdkCertSKI(ctx.CryptoSuite()),
		keys:  &fileKeyWriter{path: cfg.keystorePath()},
		users: users,
	}

	return &FabricCA{
		sdk:       sdk,
		client:    client,
		registrar: registrar,
		cfg:       cfg,
	}, nil
}

// Enroll exchanges an enrollment ID and secret for a certificate and key
func (c *FabricCA) Enroll(enrollmentID, secret string) (*Enrollment, error) {
	msg := "failed to enroll [" + enrollmentID + "]"

	if err := c.client.Enroll(enrollmentID, msp.WithSecret(secret)); err != nil {
		return nil, status.New(status.CAServerStatus, status.EnrollFailed, msg, err)
	}

	si, err := c.client.GetSigningIdentity(enrollmentID)
	if err != nil {
		return nil, status.New(status.CAServerStatus, status.EnrollFailed, msg, errors.WithMessage(err, "enrolled identity not found"))
	}

	key, err := privateKeyPEM(c.cfg.keystorePath(), si.PrivateKey())
	if err != nil {
		return nil, status.New(status.CAServerStatus, status.EnrollFailed, msg, err)
	}

	return &Enrollment{
		Certificate: string(si.EnrollmentCertificate()),
		PrivateKey:  string(key),
	}, nil
}

// Register creates a new identity on behalf of registrar, which must be the
// registrar the CA client was configured with.
func (c *FabricCA) Register(req *RegistrationRequest, registrar *identity.Identity) (string, error) {
	if req == nil || req.EnrollmentID == "" {
		return "", status.Errorf(status.CAServerStatus, status.RegisterFailed, "registration request requires an enrollment ID")
	}
	msg := "failed to register [" + req.EnrollmentID + "]"

	if registrar == nil || registrar.Label != c.cfg.Registrar {
		return "", status.Errorf(status.CAServerStatus, status.RegisterFailed, "%s: registrar must be [%s]", msg, c.cfg.Registrar)
	}
	if err := c.registrar.load(registrar); err != nil {
		return "", status.New(status.CAServerStatus, status.RegisterFailed, msg, err)
	}

	secret, err := c.client.Register(&msp.RegistrationRequest{
		Name:        req.EnrollmentID,
		Type:        req.Role,
		Affiliation: req.Affiliation,
		CAName:      c.cfg.CAName,
	})
	if err != nil {
		return "", status.New(status.CAServerStatus, status.RegisterFailed, msg, err)
	}
	return secret, nil
}

// Close releases the SDK
func (c *FabricCA) Close() {
	if c.sdk != nil {
		c.sdk.Close()
	}
}
