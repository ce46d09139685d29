/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdnml/fabwallet/pkg/identity"
	"github.com/sdnml/fabwallet/pkg/status"
)

type storeGenerator = func(t *testing.T) Store

func testStoreSuite(t *testing.T, gen storeGenerator) {
	tests := []struct {
		title string
		run   func(t *testing.T, store Store)
	}{
		{"testLookupNonExist", testLookupNonExist},
		{"testInsertionAndLookup", testInsertionAndLookup},
		{"testOverwrite", testOverwrite},
		{"testPutInvalidID", testPutInvalidID},
		{"testExists", testExists},
	}
	for _, test := range tests {
		t.Run(test.title, func(t *testing.T) {
			test.run(t, gen(t))
		})
	}
}

func testLookupNonExist(t *testing.T, store Store) {
	_, err := store.Get("label1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "expected not found, got %s", err)
}

func testInsertionAndLookup(t *testing.T, store Store) {
	require.NoError(t, store.Put(identity.New("label1", "msp", "testCert", "testPrivKey")))

	id, err := store.Get("label1")
	require.NoError(t, err)
	assert.Equal(t, identity.New("label1", "msp", "testCert", "testPrivKey"), id)
}

func testOverwrite(t *testing.T, store Store) {
	require.NoError(t, store.Put(identity.New("label1", "msp", "a much longer certificate body", "a much longer private key body")))
	require.NoError(t, store.Put(identity.New("label1", "msp2", "c", "k")))

	id, err := store.Get("label1")
	require.NoError(t, err)
	assert.Equal(t, "msp2", id.MSPID)
	assert.Equal(t, "c", id.Certificate)
	assert.Equal(t, "k", id.PrivateKey)
}

func testPutInvalidID(t *testing.T, store Store) {
	err := store.Put(identity.New("label1", "msp", "", "key"))
	require.Error(t, err)
	assert.True(t, status.IsGroup(err, status.WalletStatus))
	testLookupNonExist(t, store)
}

func testExists(t *testing.T, store Store) {
	ok, err := Exists(store, "label1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(identity.New("label1", "msp", "testCert", "testPrivKey")))

	ok, err = Exists(store, "label1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileSystemStoreSuite(t *testing.T) {
	testStoreSuite(t, func(t *testing.T) Store {
		store, err := NewFileSystemStore(filepath.Join(t.TempDir(), "wallet"))
		require.NoError(t, err)
		return store
	})
}

func TestInMemoryStoreSuite(t *testing.T) {
	testStoreSuite(t, func(t *testing.T) Store {
		return NewInMemoryStore()
	})
}

func TestFileSystemStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wallet")
	store, err := NewFileSystemStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(identity.New("User1@org1.example.com", "Org1MSP", "CERT", "KEY")))

	_, err = os.Stat(filepath.Join(dir, "User1@org1.example.com.id"))
	assert.NoError(t, err, "expected the SDK wallet file to be written")
}

func TestFileSystemStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.id"), []byte("not json"), 0600))

	store, err := NewFileSystemStore(dir)
	require.NoError(t, err)

	_, err = store.Get("broken")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.True(t, status.IsGroup(err, status.WalletStatus))

	_, err = Exists(store, "broken")
	assert.Error(t, err)
}

func TestFileSystemStoreEmptyPath(t *testing.T) {
	_, err := NewFileSystemStore("")
	require.Error(t, err)
	assert.True(t, status.IsGroup(err, status.ConfigStatus))
}
