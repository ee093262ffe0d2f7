package coin

import (
	"sort"

	"github.com/iov-one/swapchain/errors"
)

// Coins is a set of coins of distinct currencies. Methods expect the set
// to be normalized: sorted by ticker, one entry per ticker, no zero
// entries. Use CombineCoins or NormalizeCoins to build one.
type Coins []Coin

// CombineCoins returns the normalized set holding the sum of all coins,
// or an error if the result is not valid.
func CombineCoins(cs ...Coin) (Coins, error) {
	coins, err := NormalizeCoins(cs)
	if err != nil {
		return nil, err
	}
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}

// NormalizeCoins sums coins of the same currency, drops zero sums and sorts
// the result by ticker.
func NormalizeCoins(cs []Coin) (Coins, error) {
	sums := make(map[string]Coin, len(cs))
	for _, c := range cs {
		prev, ok := sums[c.Ticker]
		if !ok {
			sums[c.Ticker] = c
			continue
		}
		sum, err := prev.Add(c)
		if err != nil {
			return nil, errors.Wrap(err, "cannot sum coins")
		}
		sums[c.Ticker] = sum
	}

	var coins Coins
	for _, c := range sums {
		if !c.IsZero() {
			coins = append(coins, c)
		}
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].Ticker < coins[j].Ticker })
	return coins, nil
}

func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	return append(make(Coins, 0, len(cs)), cs...)
}

// index returns the position of the ticker in the set, or the position it
// would be inserted at, and whether it is present.
func (cs Coins) index(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= ticker })
	return i, i < len(cs) && cs[i].Ticker == ticker
}

// Add returns a copy of the set with c added. A currency whose amount
// drops to zero is removed.
func (cs Coins) Add(c Coin) (Coins, error) {
	res := cs.Clone()
	if c.IsZero() {
		return res, nil
	}

	i, found := res.index(c.Ticker)
	if !found {
		res = append(res, Coin{})
		copy(res[i+1:], res[i:])
		res[i] = c
		return res, nil
	}

	sum, err := res[i].Add(c)
	if err != nil {
		return nil, err
	}
	if sum.IsZero() {
		return append(res[:i], res[i+1:]...), nil
	}
	res[i] = sum
	return res, nil
}

// Subtract returns a copy of the set with c taken away. The result can
// hold a negative amount.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine returns the sum of both sets.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains reports whether the set holds at least c, so that subtracting
// c leaves no negative amount.
func (cs Coins) Contains(c Coin) bool {
	i, found := cs.index(c.Ticker)
	return found && cs[i].IsGTE(c)
}

// Get returns the amount held of the currency, a zero coin if none.
func (cs Coins) Get(ticker string) Coin {
	if i, found := cs.index(ticker); found {
		return cs[i]
	}
	return Coin{Ticker: ticker}
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive reports whether the set is not empty and every amount is
// positive.
func (cs Coins) IsPositive() bool {
	return len(cs) != 0 && cs.IsNonNegative()
}

// IsNonNegative reports whether every amount is positive. An empty set
// passes.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i, c := range cs {
		if c != o[i] {
			return false
		}
	}
	return true
}

// Validate checks every coin and that the set is normalized.
func (cs Coins) Validate() error {
	var err error
	for i, c := range cs {
		err = errors.Append(err, c.Validate())
		if c.IsZero() {
			err = errors.Append(err, errors.Wrap(errors.ErrInvalidState, "zero coins"))
		}
		if i > 0 && c.Ticker <= cs[i-1].Ticker {
			err = errors.Append(err, errors.Wrap(errors.ErrInvalidState, "not sorted or duplicated"))
		}
	}
	return err
}
