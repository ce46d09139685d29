/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	profileVersion = "1.0.0"
	caInstance     = "ca"
)

// Profile is the subset of an SDK connection profile needed to talk to a CA
type Profile struct {
	Version                string                `yaml:"version"`
	Client                 clientSection         `yaml:"client"`
	Organizations          map[string]orgSection `yaml:"organizations"`
	CertificateAuthorities map[string]caSection  `yaml:"certificateAuthorities"`
}

type clientSection struct {
	Organization    string                 `yaml:"organization"`
	Logging         loggingSection         `yaml:"logging"`
	CredentialStore credentialStoreSection `yaml:"credentialStore"`
	BCCSP           bccspSection           `yaml:"BCCSP"`
	TLSCerts        tlsCertsSection        `yaml:"tlsCerts"`
}

type loggingSection struct {
	Level string `yaml:"level"`
}

type credentialStoreSection struct {
	Path        string      `yaml:"path"`
	CryptoStore pathSection `yaml:"cryptoStore"`
}

type pathSection struct {
	Path string `yaml:"path"`
}

type bccspSection struct {
	Security securitySection `yaml:"security"`
}

type securitySection struct {
	Enabled       bool            `yaml:"enabled"`
	Default       providerSection `yaml:"default"`
	HashAlgorithm string          `yaml:"hashAlgorithm"`
	SoftVerify    bool            `yaml:"softVerify"`
	Level         int             `yaml:"level"`
}

type providerSection struct {
	Provider string `yaml:"provider"`
}

type tlsCertsSection struct {
	SystemCertPool bool `yaml:"systemCertPool"`
}

type orgSection struct {
	MSPID                  string   `yaml:"mspid"`
	CryptoPath             string   `yaml:"cryptoPath"`
	CertificateAuthorities []string `yaml:"certificateAuthorities"`
}

type caSection struct {
	URL        string           `yaml:"url"`
	CAName     string           `yaml:"caName,omitempty"`
	TLSCACerts *pathSection     `yaml:"tlsCACerts,omitempty"`
	Registrar  registrarSection `yaml:"registrar"`
}

type registrarSection struct {
	EnrollID     string `yaml:"enrollId"`
	EnrollSecret string `yaml:"enrollSecret,omitempty"`
}

// NewProfile builds the connection profile for cfg
func NewProfile(cfg Config) *Profile {
	ca := caSection{
		URL:    cfg.URL,
		CAName: cfg.CAName,
		Registrar: registrarSection{
			EnrollID:     cfg.Registrar,
			EnrollSecret: cfg.RegistrarSecret,
		},
	}
	if cfg.TLSCertPath != "" {
		ca.TLSCACerts = &pathSection{Path: cfg.TLSCertPath}
	}

	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	return &Profile{
		Version: profileVersion,
		Client: clientSection{
			Organization: cfg.OrgName,
			Logging:      loggingSection{Level: logLevel},
			CredentialStore: credentialStoreSection{
				Path:        cfg.statePath(),
				CryptoStore: pathSection{Path: cfg.cryptoPath()},
			},
			BCCSP: bccspSection{
				Security: securitySection{
					Enabled:       true,
					Default:       providerSection{Provider: "SW"},
					HashAlgorithm: "SHA2",
					SoftVerify:    true,
					Level:         256,
				},
			},
			TLSCerts: tlsCertsSection{SystemCertPool: true},
		},
		Organizations: map[string]orgSection{
			cfg.OrgName: {
				MSPID:                  cfg.MSPID,
				CryptoPath:             filepath.Join(cfg.cryptoPath(), "msp"),
				CertificateAuthorities: []string{caInstance},
			},
		},
		CertificateAuthorities: map[string]caSection{
			caInstance: ca,
		},
	}
}

// Marshal encodes the profile as YAML
func (p *Profile) Marshal() ([]byte, error) {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal connection profile")
	}
	return raw, nil
}
