package cash

import (
	"context"
	"testing"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/store"
	"github.com/iov-one/swapchain/weavetest"
	"github.com/iov-one/swapchain/weavetest/assert"
)

func TestMoveCoins(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	cases := map[string]struct {
		issue    []coin.Coin
		move     coin.Coin
		src      swapchain.Address
		wantErr  *errors.Error
		wantSrc  coin.Coins
		wantDest coin.Coins
	}{
		"partial move": {
			issue:    []coin.Coin{coin.NewCoin(10, 0, "IOV"), coin.NewCoin(1, 0, "ETH")},
			move:     coin.NewCoin(4, 500, "IOV"),
			src:      alice,
			wantSrc:  coin.Coins{coin.NewCoin(1, 0, "ETH"), coin.NewCoin(5, 999999500, "IOV")},
			wantDest: coin.Coins{coin.NewCoin(4, 500, "IOV")},
		},
		"move everything": {
			issue:    []coin.Coin{coin.NewCoin(10, 0, "IOV")},
			move:     coin.NewCoin(10, 0, "IOV"),
			src:      alice,
			wantSrc:  nil,
			wantDest: coin.Coins{coin.NewCoin(10, 0, "IOV")},
		},
		"not enough funds": {
			issue:   []coin.Coin{coin.NewCoin(10, 0, "IOV")},
			move:    coin.NewCoin(10, 1, "IOV"),
			src:     alice,
			wantErr: errors.ErrInsufficientAmount,
		},
		"currency not held": {
			issue:   []coin.Coin{coin.NewCoin(10, 0, "IOV")},
			move:    coin.NewCoin(1, 0, "ETH"),
			src:     alice,
			wantErr: errors.ErrInsufficientAmount,
		},
		"missing wallet": {
			move:    coin.NewCoin(1, 0, "IOV"),
			src:     alice,
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			issue:   []coin.Coin{coin.NewCoin(10, 0, "IOV")},
			move:    coin.NewCoin(0, 0, "IOV"),
			src:     alice,
			wantErr: errors.ErrInvalidAmount,
		},
		"negative amount": {
			issue:   []coin.Coin{coin.NewCoin(10, 0, "IOV")},
			move:    coin.NewCoin(-1, 0, "IOV"),
			src:     alice,
			wantErr: errors.ErrInvalidAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			for _, c := range tc.issue {
				assert.Nil(t, ctrl.IssueCoins(db, alice, c))
			}

			err := ctrl.MoveCoins(db, tc.src, bob, tc.move)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			src, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, true, tc.wantSrc.Equals(src))

			dest, err := ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, true, tc.wantDest.Equals(dest))
		})
	}
}

func TestMoveCoinsToSelf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	alice := weavetest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(3, 0, "IOV")))
	assert.Nil(t, ctrl.MoveCoins(db, alice, alice, coin.NewCoin(2, 0, "IOV")))

	got, err := ctrl.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoin(3, 0, "IOV")}, got)
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	alice := weavetest.NewCondition().Address()

	_, err := ctrl.Balance(db, alice)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(3, 0, "IOV")))
	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(-1, 0, "IOV")))

	err = ctrl.IssueCoins(db, alice, coin.NewCoin(-5, 0, "IOV"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)

	err = ctrl.IssueCoins(db, alice, coin.NewCoin(coin.MaxInt, 0, "IOV"))
	assert.IsErr(t, errors.ErrOverflow, err)

	got, err := ctrl.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoin(2, 0, "IOV")}, got)
}

func TestCloseWallet(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	assert.IsErr(t, errors.ErrNotFound, ctrl.CloseWallet(db, alice))

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(3, 0, "IOV")))
	assert.IsErr(t, errors.ErrInvalidState, ctrl.CloseWallet(db, alice))

	assert.Nil(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(3, 0, "IOV")))
	assert.Nil(t, ctrl.CloseWallet(db, alice))

	_, err := ctrl.Balance(db, alice)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestTransfer(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	held := swapchain.NewCondition("test", "holding", []byte{1})

	cases := map[string]struct {
		auth    *weavetest.Auth
		src     swapchain.Address
		amount  coin.Coins
		wantErr *errors.Error
	}{
		"signer moves own funds": {
			auth:   &weavetest.Auth{Signer: alice},
			src:    alice.Address(),
			amount: coin.Coins{coin.NewCoin(1, 0, "ETH"), coin.NewCoin(2, 0, "IOV")},
		},
		"granted condition moves derived funds": {
			auth:   &weavetest.Auth{Signer: held},
			src:    held.Address(),
			amount: coin.Coins{coin.NewCoin(2, 0, "IOV")},
		},
		"other signer is rejected": {
			auth:    &weavetest.Auth{Signer: bob},
			src:     alice.Address(),
			amount:  coin.Coins{coin.NewCoin(2, 0, "IOV")},
			wantErr: errors.ErrUnauthorized,
		},
		"no signer is rejected": {
			auth:    &weavetest.Auth{},
			src:     held.Address(),
			amount:  coin.Coins{coin.NewCoin(2, 0, "IOV")},
			wantErr: errors.ErrUnauthorized,
		},
		"shortfall in second coin": {
			auth:    &weavetest.Auth{Signer: alice},
			src:     alice.Address(),
			amount:  coin.Coins{coin.NewCoin(1, 0, "ETH"), coin.NewCoin(20, 0, "IOV")},
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			assert.Nil(t, ctrl.IssueCoins(db, alice.Address(), coin.NewCoin(5, 0, "IOV")))
			assert.Nil(t, ctrl.IssueCoins(db, alice.Address(), coin.NewCoin(5, 0, "ETH")))
			assert.Nil(t, ctrl.IssueCoins(db, held.Address(), coin.NewCoin(2, 0, "IOV")))

			err := Transfer(context.Background(), tc.auth, db, ctrl, tc.src, bob.Address(), tc.amount)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			got, err := ctrl.Balance(db, bob.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.amount, got)
		})
	}
}
