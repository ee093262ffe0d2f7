package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/swapchain/crypto"
	"golang.org/x/crypto/ed25519"
)

// keyPerm is the file permissions for saved private keys
const keyPerm = 0600

// decodePrivateKey reads a hex string created by encodePrivateKey and
// returns the original key.
func decodePrivateKey(hexKey string) (*crypto.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("cannot decode hex: %s", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d", len(raw))
	}
	return &crypto.PrivateKey{Ed25519: raw}, nil
}

func encodePrivateKey(key *crypto.PrivateKey) string {
	return hex.EncodeToString(key.Ed25519)
}

// loadPrivateKey loads a private key from a file, which was previously
// written by savePrivateKey.
func loadPrivateKey(filename string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	return decodePrivateKey(string(raw))
}

// savePrivateKey writes the hex encoded key to the named file. It refuses
// to overwrite an existing file.
func savePrivateKey(key *crypto.PrivateKey, filename string) error {
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		// User must delete the file manually. Losing a key by an
		// accident is not recoverable.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", filename)
	}
	return ioutil.WriteFile(filename, []byte(encodePrivateKey(key)), keyPerm)
}
