/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cli holds the cobra commands shared by the wallet helpers.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdnml/fabwallet/pkg/ca"
	"github.com/sdnml/fabwallet/pkg/config"
	"github.com/sdnml/fabwallet/pkg/wallet"
)

var logger = logging.NewLogger("fabwallet/cli")

const (
	envFileFlag  = "env-file"
	logLevelFlag = "log-level"

	defaultEnvFile = ".env"
)

// Authority is a certificate authority that holds resources until closed
type Authority interface {
	ca.CertificateAuthority
	Close()
}

// Providers create the wallet and the CA for a command
type Providers struct {
	OpenStore func(cfg wallet.Config) (wallet.Store, error)
	NewCA     func(cfg ca.Config) (Authority, error)
}

// DefaultProviders returns the providers backed by the configured wallet
// and fabric-sdk-go
func DefaultProviders() Providers {
	return Providers{
		OpenStore: wallet.Open,
		NewCA: func(cfg ca.Config) (Authority, error) {
			authority, err := ca.NewFabricCA(cfg)
			if err != nil {
				return nil, err
			}
			return authority, nil
		},
	}
}

// Execute runs cmd with args and returns the process exit code. Failures
// are reported on the command's error stream as a single line.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", oneLine(err.Error()))
		return 1
	}
	return 0
}

// oneLine joins the lines of msg; CA errors echo multi-line HTTP bodies
func oneLine(msg string) string {
	var parts []string
	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String(envFileFlag, defaultEnvFile, "dotenv file read before the environment, skipped when absent")
	cmd.Flags().String(logLevelFlag, "info", "log level (debug, info, warning, error)")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// loadViper reads the env file named by the flags and binds the log level
func loadViper(cmd *cobra.Command) (*viper.Viper, error) {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return nil, err
	}

	v, err := config.New(envFile)
	if err != nil {
		return nil, err
	}

	if err := config.BindFlags(v, cmd.Flags(), config.LogLevel); err != nil {
		return nil, err
	}
	return v, nil
}

// initLogging applies level to every module, the SDK's included
func initLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level [%s]", level)
	}
	logging.SetLevel("", lvl)
	logger.Debugf("log level set to %s", level)
	return nil
}

func printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		logger.Warnf("failed to write output: %s", err)
	}
}
