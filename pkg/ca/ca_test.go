/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ca

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	mspctx "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/msp"
	"github.com/stretchr/testify/require"
)

// mockKey only answers SKI; other core.Key methods are not used here
type mockKey struct {
	core.Key
	ski []byte
}

func (k *mockKey) SKI() []byte {
	return k.ski
}

type mockSigningIdentity struct {
	mspctx.SigningIdentity
	cert []byte
	key  core.Key
}

func (m *mockSigningIdentity) EnrollmentCertificate() []byte {
	return m.cert
}

func (m *mockSigningIdentity) PrivateKey() core.Key {
	return m.key
}

type mockKeyWriter struct {
	skis [][]byte
	keys [][]byte
	err  error
}

func (m *mockKeyWriter) Write(ski []byte, keyPEM []byte) error {
	if m.err != nil {
		return m.err
	}
	m.skis = append(m.skis, ski)
	m.keys = append(m.keys, keyPEM)
	return nil
}

func fixedSKI(ski []byte, err error) certSKI {
	return func([]byte) ([]byte, error) {
		return ski, err
	}
}

type mockUserStore struct {
	users []*mspctx.UserData
	err   error
}

func (m *mockUserStore) Store(user *mspctx.UserData) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, user)
	return nil
}

func newPrivateKeyPEM(t *testing.T) (string, []byte) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), der
}

// publicKeySKI is the SKI the SDK software provider derives for an ECDSA key
func publicKeySKI(pub *ecdsa.PublicKey) []byte {
	raw := elliptic.Marshal(pub.Curve, pub.X, pub.Y)
	hash := sha256.Sum256(raw)
	return hash[:]
}

func parseCertificate(t *testing.T, certPEM string) *x509.Certificate {
	block, _ := pem.Decode([]byte(certPEM))
	require.NotNil(t, block, "certificate is not PEM encoded")
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	return cert
}
