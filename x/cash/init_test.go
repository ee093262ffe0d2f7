package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/store"
	"github.com/iov-one/swapchain/weavetest"
	"github.com/iov-one/swapchain/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	other := weavetest.NewCondition().Address()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    map[string]coin.Coins
	}{
		"no cash section": {
			genesis: `{}`,
		},
		"two accounts with mixed coin formats": {
			genesis: fmt.Sprintf(`{"cash": [
				{"address": "%s", "coins": ["1.5 IOV", {"whole": 3, "ticker": "ETH"}]},
				{"address": "bech32:%s", "coins": ["7 IOV"]}
			]}`, addr, mustBech32(other)),
			want: map[string]coin.Coins{
				addr.String():  {coin.NewCoin(3, 0, "ETH"), coin.NewCoin(1, 500000000, "IOV")},
				other.String(): {coin.NewCoin(7, 0, "IOV")},
			},
		},
		"duplicated account": {
			genesis: fmt.Sprintf(`{"cash": [
				{"address": "%s", "coins": ["1 IOV"]},
				{"address": "%s", "coins": ["1 IOV"]}
			]}`, addr, addr),
			wantErr: errors.ErrDuplicate,
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "", "coins": ["1 IOV"]}]}`,
			wantErr: errors.ErrInvalidInput,
		},
		"invalid coin": {
			genesis: fmt.Sprintf(`{"cash": [{"address": "%s", "coins": ["one IOV"]}]}`, addr),
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts swapchain.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			ctrl := NewController(NewBucket())
			for _, a := range []swapchain.Address{addr, other} {
				got, err := ctrl.Balance(db, a)
				want, ok := tc.want[a.String()]
				if !ok {
					assert.IsErr(t, errors.ErrNotFound, err)
					continue
				}
				assert.Nil(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func mustBech32(a swapchain.Address) string {
	s, err := a.Bech32()
	if err != nil {
		panic(err)
	}
	return s
}
