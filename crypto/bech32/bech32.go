// Package bech32 converts addresses to and from their bech32 text form.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/swapchain/errors"
)

// Encode returns the bech32 string of the payload under the human readable
// part hrp.
func Encode(hrp string, payload []byte) (string, error) {
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "convert bits: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "bech32 encode: %s", err)
	}
	return s, nil
}

// Decode returns the human readable part and the payload of a bech32
// string.
func Decode(s string) (hrp string, payload []byte, err error) {
	hrp, groups, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if payload, err = bech32.ConvertBits(groups, 5, 8, false); err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// DecodeHRP is Decode that also requires the human readable part to be
// want.
func DecodeHRP(want, s string) ([]byte, error) {
	hrp, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if hrp != want {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "human readable part %q, want %q", hrp, want)
	}
	return payload, nil
}
