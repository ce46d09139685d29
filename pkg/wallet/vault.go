/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"path"

	"github.com/hashicorp/vault/api"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
)

const (
	defaultVaultAddress = "http://localhost:8200"
	defaultVaultMount   = "secret"
	recordVersion       = 1
)

// VaultConfig locates the KV v2 secrets engine holding the wallet
type VaultConfig struct {
	Address string
	Token   string
	// Mount is the KV v2 mount point, "secret" by default
	Mount string
	// Path is the prefix under which each label is a secret
	Path string
}

type logical interface {
	Read(path string) (*api.Secret, error)
	Write(path string, data map[string]interface{}) (*api.Secret, error)
}

// VaultStore keeps identity records in Vault, one secret per label
type VaultStore struct {
	client logical
	mount  string
	prefix string
}

type vaultRecord struct {
	Version     int    `mapstructure:"version"`
	MSPID       string `mapstructure:"mspId"`
	Type        string `mapstructure:"type"`
	Credentials struct {
		Certificate string `mapstructure:"certificate"`
		PrivateKey  string `mapstructure:"privateKey"`
	} `mapstructure:"credentials"`
}

// NewVaultStore connects to Vault using cfg
func NewVaultStore(cfg VaultConfig) (*VaultStore, error) {
	if cfg.Path == "" {
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "vault wallet path is required")
	}
	if cfg.Token == "" {
		return nil, status.Errorf(status.ConfigStatus, status.InvalidConfig, "vault token is required")
	}

	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = defaultVaultAddress
	if cfg.Address != "" {
		vaultConfig.Address = cfg.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, status.New(status.WalletStatus, status.ReadFailed, "can't create Vault client", err)
	}
	client.SetToken(cfg.Token)

	logger.Debugf("opened vault wallet at %s/%s", vaultConfig.Address, cfg.Path)
	return newVaultStore(client.Logical(), cfg.Mount, cfg.Path), nil
}

func newVaultStore(client logical, mount, prefix string) *VaultStore {
	if mount == "" {
		mount = defaultVaultMount
	}
	return &VaultStore{client: client, mount: mount, prefix: prefix}
}

func (s *VaultStore) dataPath(label string) string {
	return path.Join(s.mount, "data", s.prefix, label)
}

// Get returns the record stored under label
func (s *VaultStore) Get(label string) (*identity.Identity, error) {
	secret, err := s.client.Read(s.dataPath(label))
	if err != nil {
		return nil, readFailed(label, err)
	}
	if secret == nil || secret.Data["data"] == nil {
		return nil, errors.Wrapf(ErrNotFound, "label [%s]", label)
	}

	data, err := cast.ToStringMapE(secret.Data["data"])
	if err != nil {
		return nil, readFailed(label, err)
	}

	var rec vaultRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rec,
	})
	if err != nil {
		return nil, readFailed(label, err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, readFailed(label, errors.Wrap(err, "invalid identity format"))
	}

	id := &identity.Identity{
		Label:       label,
		MSPID:       rec.MSPID,
		Type:        rec.Type,
		Certificate: rec.Credentials.Certificate,
		PrivateKey:  rec.Credentials.PrivateKey,
	}
	if err := id.Validate(); err != nil {
		return nil, readFailed(label, err)
	}
	return id, nil
}

// Put writes the record under its label as a new secret version
func (s *VaultStore) Put(id *identity.Identity) error {
	if err := id.Validate(); err != nil {
		return status.New(status.WalletStatus, status.WriteFailed, "invalid identity", err)
	}
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"version": recordVersion,
			"mspId":   id.MSPID,
			"type":    id.Type,
			"credentials": map[string]interface{}{
				"certificate": id.Certificate,
				"privateKey":  id.PrivateKey,
			},
		},
	}
	if _, err := s.client.Write(s.dataPath(id.Label), payload); err != nil {
		return writeFailed(id.Label, err)
	}
	return nil
}
