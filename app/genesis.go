package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/x/cash"
)

// Genesis is the part of the tendermint genesis file that the application
// reads.
type Genesis struct {
	ChainID  string            `json:"chain_id"`
	AppState swapchain.Options `json:"app_state"`
}

// LoadGenesis reads the genesis file at given path.
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInvalidInput, "cannot parse genesis: %s", err)
	}
	return gen, nil
}

// GenesisState returns the app state funding given wallets.
func GenesisState(accounts []cash.GenesisAccount) (swapchain.Options, error) {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return swapchain.Options{cash.GenesisKey: raw}, nil
}
