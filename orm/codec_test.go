package orm

import (
	"testing"

	"github.com/iov-one/swapchain/weavetest/assert"
)

func TestCodecZeroValue(t *testing.T) {
	raw, err := Marshal(&counter{})
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("zero value must not serialize to nil")
	}

	c := counter{Count: 5, Label: "old"}
	assert.Nil(t, Unmarshal(raw, &c))
	assert.Equal(t, counter{}, c)
}

func TestCodecRoundTrip(t *testing.T) {
	want := counter{Count: 42, Owner: []byte("alice"), Label: "x"}
	raw, err := Marshal(&want)
	assert.Nil(t, err)

	var got counter
	assert.Nil(t, Unmarshal(raw, &got))
	assert.Equal(t, want, got)
}
