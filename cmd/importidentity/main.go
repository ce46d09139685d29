/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/sdnml/fabwallet/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewImportCmd(cli.DefaultProviders()), os.Args[1:]))
}
