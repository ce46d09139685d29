/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) Config {
	return Config{
		URL:             "https://localhost:7054",
		CAName:          "ca-org1",
		OrgName:         "org1",
		MSPID:           "Org1MSP",
		StorePath:       dir,
		Registrar:       "admin",
		RegistrarSecret: "adminpw",
	}
}

// The SDK reads profiles through viper, so the generated profile is checked
// the same way.
func readProfile(t *testing.T, cfg Config) *viper.Viper {
	raw, err := NewProfile(cfg).Marshal()
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(raw)))
	return v
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()
	v := readProfile(t, testConfig(dir))

	assert.Equal(t, "org1", v.GetString("client.organization"))
	assert.Equal(t, "info", v.GetString("client.logging.level"))
	assert.Equal(t, filepath.Join(dir, "state"), v.GetString("client.credentialStore.path"))
	assert.Equal(t, filepath.Join(dir, "crypto"), v.GetString("client.credentialStore.cryptoStore.path"))
	assert.Equal(t, "SW", v.GetString("client.BCCSP.security.default.provider"))
	assert.Equal(t, 256, v.GetInt("client.BCCSP.security.level"))
	assert.True(t, v.GetBool("client.tlsCerts.systemCertPool"))

	assert.Equal(t, "Org1MSP", v.GetString("organizations.org1.mspid"))
	assert.Equal(t, []string{caInstance}, v.GetStringSlice("organizations.org1.certificateAuthorities"))

	assert.Equal(t, "https://localhost:7054", v.GetString("certificateAuthorities.ca.url"))
	assert.Equal(t, "ca-org1", v.GetString("certificateAuthorities.ca.caName"))
	assert.Equal(t, "admin", v.GetString("certificateAuthorities.ca.registrar.enrollId"))
	assert.Equal(t, "adminpw", v.GetString("certificateAuthorities.ca.registrar.enrollSecret"))
	assert.False(t, v.IsSet("certificateAuthorities.ca.tlsCACerts"))
}

func TestProfileTLS(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.TLSCertPath = "/etc/hyperledger/ca-cert.pem"
	cfg.LogLevel = "debug"

	v := readProfile(t, cfg)
	assert.Equal(t, "/etc/hyperledger/ca-cert.pem", v.GetString("certificateAuthorities.ca.tlsCACerts.path"))
	assert.Equal(t, "debug", v.GetString("client.logging.level"))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, testConfig("store").validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no url", func(c *Config) { c.URL = "" }},
		{"no org", func(c *Config) { c.OrgName = "" }},
		{"no msp", func(c *Config) { c.MSPID = "" }},
		{"no store", func(c *Config) { c.StorePath = "" }},
		{"no registrar", func(c *Config) { c.Registrar = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig("store")
			tc.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
