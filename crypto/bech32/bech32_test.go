package bech32

import (
	"bytes"
	"testing"

	"github.com/iov-one/swapchain/errors"
)

func TestEncodeDecode(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0xfe, 0xff}
	raw, err := Encode("swap", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, got, err := Decode(raw)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "swap" {
		t.Fatalf("unexpected hrp: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Fatalf("want %X, got %X", payload, got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	raw, err := Encode("swap", []byte("payload"))
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	// Break the checksum.
	broken := raw[:len(raw)-1] + "q"
	if broken == raw {
		broken = raw[:len(raw)-1] + "p"
	}
	if _, _, err := Decode(broken); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %v", err)
	}
}

func TestDecodeHRP(t *testing.T) {
	raw, err := Encode("swap", []byte("payload"))
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	got, err := DecodeHRP("swap", raw)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if string(got) != "payload" {
		t.Fatalf("unexpected payload: %q", got)
	}
	if _, err := DecodeHRP("other", raw); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %v", err)
	}
}
