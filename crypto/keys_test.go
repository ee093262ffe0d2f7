package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()
	require.NoError(t, pub.Validate())

	msg := []byte("fulfill offer 7")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("cancel offer 7"), sig))

	other := GenPrivKeyEd25519().PublicKey()
	assert.False(t, other.Verify(msg, sig))
	assert.False(t, pub.Verify(msg, nil))
	assert.False(t, (&PublicKey{Ed25519: []byte("short")}).Verify(msg, sig))
}

func TestDeterministicKeys(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.PublicKey(), b.PublicKey())

	cond := a.PublicKey().Condition()
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, a.PublicKey().Ed25519, data)
	assert.Equal(t, cond.Address(), a.PublicKey().Address())
}

func TestInvalidKeys(t *testing.T) {
	var nilKey *PublicKey
	assert.Error(t, nilKey.Validate())
	assert.Error(t, (&PublicKey{Ed25519: []byte{1, 2}}).Validate())

	_, err := (&PrivateKey{Ed25519: []byte{1}}).Sign([]byte("x"))
	assert.Error(t, err)
}
