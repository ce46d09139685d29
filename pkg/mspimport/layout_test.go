/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mspimport

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdnml/fabwallet/pkg/status"
)

// newMSPDir creates <root>/signcerts/cert.pem and the given keystore files
func newMSPDir(t *testing.T, cert string, keys map[string]string) string {
	root := filepath.Join(t.TempDir(), "msp")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "signcerts"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "keystore"), 0755))
	if cert != "" {
		require.NoError(t, ioutil.WriteFile(filepath.Join(root, "signcerts", "cert.pem"), []byte(cert), 0644))
	}
	for name, content := range keys {
		require.NoError(t, ioutil.WriteFile(filepath.Join(root, "keystore", name), []byte(content), 0600))
	}
	return root
}

func TestResolve(t *testing.T) {
	root := newMSPDir(t, "CERT", map[string]string{"abc123_sk": "KEY"})

	certPath, keyPath, err := Layout{Root: root}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "signcerts", "cert.pem"), certPath)
	assert.Equal(t, filepath.Join(root, "keystore", "abc123_sk"), keyPath)
}

func TestResolveIgnoresOtherFiles(t *testing.T) {
	root := newMSPDir(t, "CERT", map[string]string{"abc123_sk": "KEY", "priv_key": "OTHER", "README": "x"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "keystore", "old_sk"), 0755))

	_, keyPath, err := Layout{Root: root}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "keystore", "abc123_sk"), keyPath)
}

func TestResolvePicksFirstSortedKey(t *testing.T) {
	root := newMSPDir(t, "CERT", map[string]string{"ff00_sk": "KEY2", "0a1b_sk": "KEY1", "9c_sk": "KEY3"})

	_, keyPath, err := Layout{Root: root}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "keystore", "0a1b_sk"), keyPath)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		root func(t *testing.T) string
		code status.Code
	}{
		{
			name: "missing certificate",
			root: func(t *testing.T) string { return newMSPDir(t, "", map[string]string{"abc_sk": "KEY"}) },
			code: status.MissingCertificate,
		},
		{
			name: "empty keystore",
			root: func(t *testing.T) string { return newMSPDir(t, "CERT", nil) },
			code: status.MissingPrivateKey,
		},
		{
			name: "no matching key",
			root: func(t *testing.T) string { return newMSPDir(t, "CERT", map[string]string{"priv_key": "KEY"}) },
			code: status.MissingPrivateKey,
		},
		{
			name: "missing keystore",
			root: func(t *testing.T) string {
				root := newMSPDir(t, "CERT", nil)
				require.NoError(t, os.RemoveAll(filepath.Join(root, "keystore")))
				return root
			},
			code: status.MissingPrivateKey,
		},
		{
			name: "missing root",
			root: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
			code: status.MissingCertificate,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Layout{Root: tc.root(t)}.Resolve()
			require.Error(t, err)
			s, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, status.ConfigStatus, s.Group)
			assert.Equal(t, tc.code, s.Code)
		})
	}
}
