package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/swapchain/app"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/weavetest"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestInitCmd(t *testing.T) {
	home, err := ioutil.TempDir("", "swapd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	args := []string{
		"-chain-id", "swap-test-1",
		"-coin", "10 IOV",
		"-coin", "2.5 ETH",
		alice.String(), bob.String(),
	}
	require.NoError(t, InitCmd(log.NewNopLogger(), home, args))

	gen, err := app.LoadGenesis(filepath.Join(home, genesisFile))
	require.NoError(t, err)
	assert.Equal(t, "swap-test-1", gen.ChainID)

	var accounts []cash.GenesisAccount
	require.NoError(t, gen.AppState.ReadOptions(cash.GenesisKey, &accounts))
	require.Len(t, accounts, 2)
	assert.Equal(t, alice, accounts[0].Address)
	assert.Equal(t, bob, accounts[1].Address)
	want := []coin.Coin{coin.NewCoin(2, 500000000, "ETH"), coin.NewCoin(10, 0, "IOV")}
	assert.Equal(t, want, []coin.Coin(accounts[1].Coins))

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "swap-test-1", cfg.ChainID)

	// Existing genesis is never overwritten by accident.
	err = InitCmd(log.NewNopLogger(), home, args)
	assert.Error(t, err)
	require.NoError(t, InitCmd(log.NewNopLogger(), home, append([]string{"-force"}, args...)))
}

func TestInitCmdErrors(t *testing.T) {
	home, err := ioutil.TempDir("", "swapd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	addr := weavetest.NewCondition().Address().String()
	cases := map[string][]string{
		"missing chain id": {"-coin", "1 IOV", addr},
		"invalid chain id": {"-chain-id", "x", "-coin", "1 IOV", addr},
		"no coins":         {"-chain-id", "swap-test-1", addr},
		"invalid address":  {"-chain-id", "swap-test-1", "-coin", "1 IOV", "zz"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, InitCmd(log.NewNopLogger(), home, args))
		})
	}
}
