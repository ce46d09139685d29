/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdnml/fabwallet/pkg/config"
	"github.com/sdnml/fabwallet/pkg/mspimport"
)

// NewImportCmd returns the importidentity command
func NewImportCmd(p Providers) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importidentity",
		Short: "Import an MSP certificate and private key into the wallet",
		Long: `Reads signcerts/cert.pem and the keystore/*_sk key under MSP_PATH and stores
them under IDENTITY_LABEL, replacing any identity with the same label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, p)
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, p Providers) error {
	v, err := loadViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadImport(v)
	if err != nil {
		return err
	}
	if err := initLogging(cfg.LogLevel); err != nil {
		return err
	}

	store, err := p.OpenStore(cfg.Wallet)
	if err != nil {
		return err
	}

	id, err := mspimport.New(store).Run(cfg.Request)
	if err != nil {
		return err
	}

	printf(cmd.OutOrStdout(), "imported %s (%s) from %s\n", id.Label, id.MSPID, cfg.Request.MSPPath)
	return nil
}
