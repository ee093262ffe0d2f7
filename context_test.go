package swapchain

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	logger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	withInfo := WithLogInfo(ctx, "path", "offer/create")
	assert.NotEqual(t, logger, GetLogger(withInfo))
	assert.Equal(t, logger, GetLogger(ctx))
}

func TestContextHeight(t *testing.T) {
	ctx := context.Background()
	_, ok := GetHeight(ctx)
	assert.False(t, ok)

	ctx = WithHeight(ctx, 42)
	h, ok := GetHeight(WithLogInfo(ctx, "k", "v"))
	assert.True(t, ok)
	assert.Equal(t, int64(42), h)

	assert.Panics(t, func() { WithHeight(ctx, 43) })
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "no") })

	ctx = WithChainID(ctx, "swap-test-1")
	assert.Equal(t, "swap-test-1", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "swap-test-2") })
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := BlockTime(ctx)
	assert.False(t, ok)

	now := time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)
	got, ok := BlockTime(WithBlockTime(ctx, now))
	assert.True(t, ok)
	assert.Equal(t, now, got)
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                                false,
		"abc":                             false,
		"swapnet":                         true,
		"swap-test_1":                     true,
		"white space":                     false,
		"swap:1":                          false,
		"a-chain-id-longer-than-allowed": false,
	}
	for chainID, want := range cases {
		assert.Equal(t, want, IsValidChainID(chainID), chainID)
	}
}
