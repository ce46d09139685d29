/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config reads the settings of the wallet helpers once at startup.
//
// Values come from, in order of precedence: command line flags, the process
// environment, an optional dotenv file, and built-in defaults. The result is
// an explicit structure handed to each flow.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sdnml/fabwallet/pkg/ca"
	"github.com/sdnml/fabwallet/pkg/enroll"
	"github.com/sdnml/fabwallet/pkg/mspimport"
	"github.com/sdnml/fabwallet/pkg/status"
	"github.com/sdnml/fabwallet/pkg/wallet"
)

// Keys, matching the environment variable names
const (
	CAURL         = "ca_url"
	CAName        = "ca_name"
	CATLSCert     = "ca_tls_cert"
	CAOrg         = "ca_org"
	CAStorePath   = "ca_store_path"
	WalletPath    = "wallet_path"
	WalletType    = "wallet_type"
	VaultAddr     = "vault_addr"
	VaultToken    = "vault_token"
	VaultMount    = "vault_mount"
	VaultPath     = "vault_path"
	MSPID         = "msp_id"
	Affiliation   = "affiliation"
	IdentityLabel = "identity_label"
	MSPPath       = "msp_path"
	LogLevel      = "log_level"
)

// Defaults for admin credentials when no positional arguments are given
const (
	DefaultAdminName   = "admin"
	DefaultAdminSecret = "adminpw"
)

var defaults = map[string]interface{}{
	CAURL:         "https://localhost:7054",
	CAName:        "",
	CATLSCert:     "",
	CAOrg:         "org1",
	CAStorePath:   "ca-store",
	WalletPath:    "wallet",
	WalletType:    wallet.FileSystemType,
	VaultAddr:     "http://localhost:8200",
	VaultToken:    "",
	VaultMount:    "secret",
	VaultPath:     "fabric/wallet",
	MSPID:         "Org1MSP",
	Affiliation:   "org1.department1",
	IdentityLabel: "User1@org1.example.com",
	MSPPath: filepath.Join("..", "fabric-samples", "test-network", "organizations",
		"peerOrganizations", "org1.example.com", "users", "User1@org1.example.com", "msp"),
	LogLevel: "info",
}

// New returns a viper instance with defaults and environment binding.
// envFile is read when it exists; a missing file is not an error.
func New(envFile string) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if envFile == "" {
		return v, nil
	}
	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, status.New(status.ConfigStatus, status.ReadFailed, "failed to read "+envFile, err)
	}

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, status.New(status.ConfigStatus, status.ReadFailed, "failed to read "+envFile, err)
	}
	return v, nil
}

// BindFlags binds command line flags to keys so that a flag overrides the
// environment. Flags are looked up by the key name with "-" for "_".
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		name := flagName(key)
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Errorf("flag [%s] is not defined", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag [%s]", name)
		}
	}
	return nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Enroll is the configuration of the enrollment flow
type Enroll struct {
	CA       ca.Config
	Wallet   wallet.Config
	Request  enroll.Request
	LogLevel string
}

// Import is the configuration of the import flow
type Import struct {
	Wallet   wallet.Config
	Request  mspimport.Request
	LogLevel string
}

// LoadEnroll builds the enrollment configuration. args are the optional
// positional arguments [adminName] [adminPassword] [targetUserLabel].
func LoadEnroll(v *viper.Viper, args []string) (*Enroll, error) {
	if len(args) > 3 {
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "expected at most 3 arguments, got %d", len(args))
	}

	caURL := v.GetString(CAURL)
	tlsCertPath := substPathVars(v.GetString(CATLSCert))
	if err := checkCAURL(caURL, tlsCertPath); err != nil {
		return nil, err
	}

	adminName := argOrDefault(args, 0, DefaultAdminName)
	adminSecret := argOrDefault(args, 1, DefaultAdminSecret)
	userLabel := argOrDefault(args, 2, v.GetString(IdentityLabel))
	mspID := v.GetString(MSPID)
	logLevel := v.GetString(LogLevel)

	return &Enroll{
		CA: ca.Config{
			URL:             caURL,
			CAName:          v.GetString(CAName),
			TLSCertPath:     tlsCertPath,
			OrgName:         v.GetString(CAOrg),
			MSPID:           mspID,
			StorePath:       substPathVars(v.GetString(CAStorePath)),
			Registrar:       adminName,
			RegistrarSecret: adminSecret,
			LogLevel:        logLevel,
		},
		Wallet: walletConfig(v),
		Request: enroll.Request{
			AdminName:   adminName,
			AdminSecret: adminSecret,
			UserLabel:   userLabel,
			MSPID:       mspID,
			Affiliation: v.GetString(Affiliation),
		},
		LogLevel: logLevel,
	}, nil
}

// LoadImport builds the import configuration
func LoadImport(v *viper.Viper) (*Import, error) {
	return &Import{
		Wallet: walletConfig(v),
		Request: mspimport.Request{
			MSPPath: substPathVars(v.GetString(MSPPath)),
			Label:   v.GetString(IdentityLabel),
			MSPID:   v.GetString(MSPID),
		},
		LogLevel: v.GetString(LogLevel),
	}, nil
}

func walletConfig(v *viper.Viper) wallet.Config {
	return wallet.Config{
		Type: v.GetString(WalletType),
		Path: substPathVars(v.GetString(WalletPath)),
		Vault: wallet.VaultConfig{
			Address: v.GetString(VaultAddr),
			Token:   v.GetString(VaultToken),
			Mount:   v.GetString(VaultMount),
			Path:    v.GetString(VaultPath),
		},
	}
}

func argOrDefault(args []string, i int, def string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return def
}
