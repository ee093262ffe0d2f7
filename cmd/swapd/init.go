package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/app"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/tendermint/tendermint/libs/log"
)

const genesisFile = "genesis.json"

// coinsFlag collects coins given as repeated flags.
type coinsFlag []coin.Coin

func (c *coinsFlag) String() string {
	names := make([]string, len(*c))
	for i, v := range *c {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

func (c *coinsFlag) Set(raw string) error {
	var v coin.Coin
	if err := v.Set(raw); err != nil {
		return err
	}
	*c = append(*c, v)
	return nil
}

// InitCmd writes the configuration and the genesis file to the home
// directory. Every address given as an argument gets a wallet with the
// coins declared with -coin.
func InitCmd(logger log.Logger, home string, args []string) error {
	var coins coinsFlag
	fl := flag.NewFlagSet("init", flag.ExitOnError)
	chainID := fl.String("chain-id", "", "chain identifier, required")
	force := fl.Bool("force", false, "overwrite existing files")
	fl.Var(&coins, "coin", `coins funded to each address, for example "100 IOV", can be repeated`)
	if err := fl.Parse(args); err != nil {
		return err
	}

	if !swapchain.IsValidChainID(*chainID) {
		return fmt.Errorf("invalid chain id %q", *chainID)
	}
	if fl.NArg() > 0 && len(coins) == 0 {
		return fmt.Errorf("at least one -coin is required to fund accounts")
	}

	funds, err := coin.CombineCoins(coins...)
	if err != nil {
		return fmt.Errorf("invalid coins: %s", err)
	}
	accounts := make([]cash.GenesisAccount, 0, fl.NArg())
	for _, raw := range fl.Args() {
		addr, err := swapchain.ParseAddress(raw)
		if err != nil {
			return fmt.Errorf("invalid address %q: %s", raw, err)
		}
		accounts = append(accounts, cash.GenesisAccount{
			Address: addr,
			Coins:   funds.Clone(),
		})
	}
	state, err := app.GenesisState(accounts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("cannot create home directory: %s", err)
	}
	genPath := filepath.Join(home, genesisFile)
	if !*force && fileExists(genPath) {
		return fmt.Errorf("refusing to overwrite %s", genPath)
	}
	raw, err := json.MarshalIndent(app.Genesis{ChainID: *chainID, AppState: state}, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize genesis: %s", err)
	}
	if err := ioutil.WriteFile(genPath, raw, 0644); err != nil {
		return fmt.Errorf("cannot write genesis file: %s", err)
	}
	logger.Info("Generated genesis file", "path", genPath, "accounts", len(accounts))

	cfgPath, err := WriteConfig(home, *chainID)
	if err != nil {
		return err
	}
	logger.Info("Generated config file", "path", cfgPath)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
