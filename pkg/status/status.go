/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines metadata for errors returned by the wallet helpers.
// Every failure that terminates a flow carries a Status whose Group tells the
// caller which kind of collaborator failed: local configuration and files,
// the Certificate Authority, or the wallet itself.
package status

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status provides additional information about an unsuccessful step of a flow.
type Status struct {
	// Group status group
	Group Group
	// Code status code
	Code Code
	// Message names the step that failed
	Message string
	// Err is the underlying cause, if any
	Err error
}

// Group of status to help callers tell failure kinds apart
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// ConfigStatus is returned for configuration and lookup failures, such as
	// a missing certificate file or an empty keystore directory
	ConfigStatus

	// CAServerStatus is returned when the Certificate Authority rejects a
	// request or cannot be reached
	CAServerStatus

	// WalletStatus is returned when the wallet cannot be opened, read or written
	WalletStatus
)

// GroupName maps the groups in this package to human-readable strings
var GroupName = map[int32]string{
	0: "Unknown",
	1: "Config Status",
	2: "Fabric CA Server Status",
	3: "Wallet Status",
}

func (g Group) String() string {
	if s, ok := GroupName[int32(g)]; ok {
		return s
	}
	return UnknownStatus.String()
}

// New returns a Status with the given parameters
func New(group Group, code Code, msg string, err error) *Status {
	return &Status{Group: group, Code: code, Message: msg, Err: err}
}

// Errorf returns a Status without an underlying cause
func Errorf(group Group, code Code, format string, args ...interface{}) *Status {
	return New(group, code, fmt.Sprintf(format, args...), nil)
}

// FromError returns a Status representing err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return nil, false
	}
	if s, ok := err.(*Status); ok {
		return s, true
	}
	if s, ok := errors.Cause(err).(*Status); ok {
		return s, true
	}
	var target *Status
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsGroup reports whether err carries a Status of the given group
func IsGroup(err error, group Group) bool {
	s, ok := FromError(err)
	return ok && s.Group == group
}

func (s *Status) Error() string {
	if s.Err == nil {
		return fmt.Sprintf("%s Code: (%d) %s. Description: %s", s.Group, s.Code, s.Code, s.Message)
	}
	return fmt.Sprintf("%s Code: (%d) %s. Description: %s: %s", s.Group, s.Code, s.Code, s.Message, s.Err)
}

// Unwrap returns the underlying cause
func (s *Status) Unwrap() error {
	return s.Err
}
