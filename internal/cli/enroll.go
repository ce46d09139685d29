/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdnml/fabwallet/pkg/config"
	"github.com/sdnml/fabwallet/pkg/enroll"
)

// NewEnrollCmd returns the enrolluser command
func NewEnrollCmd(p Providers) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrolluser [adminName] [adminPassword] [targetUserLabel]",
		Short: "Enroll the CA admin and register a user into the wallet",
		Long: `Enrolls the CA admin when it is not in the wallet yet, then registers and
enrolls the target user with the admin as registrar. Identities already in the
wallet are left untouched.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnroll(cmd, p, args)
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func runEnroll(cmd *cobra.Command, p Providers, args []string) error {
	v, err := loadViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadEnroll(v, args)
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

	authority, err := p.NewCA(cfg.CA)
	if err != nil {
		return err
	}
	defer authority.Close()

	result, err := enroll.New(store, authority).Run(cfg.Request)
	if result != nil && result.AdminEnrolled {
		printf(cmd.OutOrStdout(), "enrolled admin %s\n", cfg.Request.AdminName)
	}
	if err != nil {
		return err
	}

	if result.UserRegistered {
		printf(cmd.OutOrStdout(), "registered and enrolled user %s\n", cfg.Request.UserLabel)
	} else {
		printf(cmd.OutOrStdout(), "user %s already in wallet\n", cfg.Request.UserLabel)
	}
	return nil
}
