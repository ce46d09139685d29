/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabwallet provides command line helpers that populate a Hyperledger
// Fabric wallet.
//
// Commands
//
// cmd/enrolluser: Enrolls the CA admin when missing, then registers and enrolls
// a client user with the admin as registrar.
//
// cmd/importidentity: Imports signcerts/cert.pem and keystore/*_sk of an MSP
// directory into the wallet under a label.
//
// Packages
//
// pkg/wallet: Wallet stores. The filesystem and in-memory stores are the
// fabric-sdk-go gateway wallets; the vault store keeps the same record in a
// Vault KV v2 engine.
//
// pkg/ca: Fabric CA access through the fabric-sdk-go msp client.
//
// pkg/enroll and pkg/mspimport: The two flows, written against the narrow
// wallet.Store and ca.CertificateAuthority interfaces.
//
// pkg/config: Settings from flags, the environment and an optional dotenv file.
//
// Basic workflow
//
//      1) Start a Fabric CA (for example the fabric-samples test network).
//      2) Run enrolluser [adminName] [adminPassword] [targetUserLabel].
//      3) Point MSP_PATH at an MSP directory and run importidentity.
//      4) Use the wallet with pkg/gateway of fabric-sdk-go.
//
package fabwallet
