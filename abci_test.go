package swapchain

import (
	"testing"

	"github.com/iov-one/swapchain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverOrError(t *testing.T) {
	res := &DeliverResult{
		Data: []byte("key"),
		Log:  "ok",
		Tags: []common.KVPair{{Key: []byte("action"), Value: []byte("offer/create")}},
	}
	abciRes := DeliverOrError(res, nil, false)
	assert.Equal(t, uint32(0), abciRes.Code)
	assert.Equal(t, []byte("key"), abciRes.Data)

	parsed, err := ParseDeliverOrError(abciRes)
	assert.NoError(t, err)
	assert.Equal(t, res.Tags, parsed.Tags)

	abciRes = DeliverOrError(nil, errors.ErrNotFound.New("offer"), false)
	assert.Equal(t, uint32(3), abciRes.Code)
	assert.Equal(t, "cannot deliver tx: offer: not found", abciRes.Log)

	_, err = ParseDeliverOrError(abciRes)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestCheckOrError(t *testing.T) {
	abciRes := CheckOrError(NewCheck(100, "fine"), nil, false)
	assert.Equal(t, uint32(0), abciRes.Code)
	assert.Equal(t, int64(100), abciRes.GasWanted)

	abciRes = CheckOrError(nil, errors.ErrUnauthorized, false)
	assert.Equal(t, uint32(2), abciRes.Code)
	assert.Equal(t, "cannot check tx: unauthorized", abciRes.Log)
}
