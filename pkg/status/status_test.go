/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusConstructors(t *testing.T) {
	cause := errors.New("connection refused")
	s := New(CAServerStatus, EnrollFailed, "enroll admin", cause)
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.Equal(t, CAServerStatus, s.Group)
	assert.Equal(t, EnrollFailed, s.Code)
	assert.Equal(t, "enroll admin", s.Message)
	assert.Equal(t, cause, s.Unwrap())

	s = Errorf(ConfigStatus, MissingCertificate, "certificate not found at %s", "/tmp/x")
	assert.Equal(t, "certificate not found at /tmp/x", s.Message)
	assert.Nil(t, s.Err)
}

func TestFromError(t *testing.T) {
	s := New(WalletStatus, WriteFailed, "put alice", nil)
	derived, ok := FromError(s)
	assert.True(t, ok)
	assert.Equal(t, s, derived)

	derived, ok = FromError(errors.Wrap(s, "enrollment"))
	assert.True(t, ok)
	assert.Equal(t, s, derived)

	derived, ok = FromError(errors.WithMessage(s, "enrollment"))
	assert.True(t, ok)
	assert.Equal(t, s, derived)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestIsGroup(t *testing.T) {
	err := errors.Wrap(New(ConfigStatus, MissingPrivateKey, "no key", nil), "import")
	assert.True(t, IsGroup(err, ConfigStatus))
	assert.False(t, IsGroup(err, WalletStatus))
	assert.False(t, IsGroup(errors.New("plain"), ConfigStatus))
}

func TestStatusToString(t *testing.T) {
	assert.Equal(t, "Fabric CA Server Status", CAServerStatus.String())
	assert.Equal(t, "Unknown", Group(42).String())
	assert.Equal(t, "MISSING_CERTIFICATE", MissingCertificate.String())
	assert.Equal(t, "UNKNOWN", Code(99).String())

	s := New(WalletStatus, ReadFailed, "get admin", errors.New("permission denied"))
	assert.Equal(t, "Wallet Status Code: (4) READ_FAILED. Description: get admin: permission denied", s.Error())

	s = New(ConfigStatus, MissingCertificate, "certificate not found", nil)
	assert.Equal(t, "Config Status Code: (2) MISSING_CERTIFICATE. Description: certificate not found", s.Error())
}
