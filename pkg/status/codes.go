/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

// Code identifies the failed step within a Group
type Code int32

const (
	// Unknown is an unclassified failure
	Unknown Code = 0

	// InvalidConfig a required configuration value is missing or malformed
	InvalidConfig Code = 1

	// MissingCertificate the signing certificate file does not exist
	MissingCertificate Code = 2

	// MissingPrivateKey the keystore directory is missing or holds no key
	MissingPrivateKey Code = 3

	// ReadFailed a local file or a wallet record could not be read
	ReadFailed Code = 4

	// WriteFailed a wallet record could not be written
	WriteFailed Code = 5

	// EnrollFailed the CA rejected or failed an enrollment
	EnrollFailed Code = 6

	// RegisterFailed the CA rejected or failed a registration
	RegisterFailed Code = 7

	// Unavailable the CA client could not be initialized
	Unavailable Code = 8
)

// CodeName maps the codes in this package to human-readable strings
var CodeName = map[int32]string{
	0: "UNKNOWN",
	1: "INVALID_CONFIG",
	2: "MISSING_CERTIFICATE",
	3: "MISSING_PRIVATE_KEY",
	4: "READ_FAILED",
	5: "WRITE_FAILED",
	6: "ENROLL_FAILED",
	7: "REGISTER_FAILED",
	8: "UNAVAILABLE",
}

func (c Code) String() string {
	if s, ok := CodeName[int32(c)]; ok {
		return s
	}
	return Unknown.String()
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}
