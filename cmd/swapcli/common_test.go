package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/swapchain/crypto"
)

// tempKey writes a new private key to a temporary directory. Call cleanup
// when done.
func tempKey(t testing.TB) (key *crypto.PrivateKey, path string, cleanup func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "swapcli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	key = crypto.GenPrivKeyEd25519()
	path = filepath.Join(dir, "priv.key")
	if err := savePrivateKey(key, path); err != nil {
		t.Fatalf("cannot save key: %s", err)
	}
	return key, path, func() { os.RemoveAll(dir) }
}
