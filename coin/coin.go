/*
Package coin defines the fungible amounts moved by the ledger.

A Coin is a ticker plus a fixed point value: Whole units and Fractional
units of 10^-9. Coins is a normalized set of coins, sorted by ticker with
at most one positive entry per ticker.
*/
package coin

import (
	"regexp"

	"github.com/iov-one/swapchain/errors"
)

// IsCC reports whether the ticker is a valid currency code.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Value bounds. Both parts of a coin carry the same sign.
const (
	MaxInt int64 = 1e15 - 1
	MinInt       = -MaxInt

	// FracUnit is the number of fractional units in one whole unit.
	FracUnit int64 = 1e9
	MaxFrac        = FracUnit - 1
	MinFrac        = -MaxFrac
)

// Coin is an amount of a single currency.
type Coin struct {
	Whole      int64  `json:"whole,omitempty"`
	Fractional int64  `json:"fractional,omitempty"`
	Ticker     string `json:"ticker"`
}

func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

// Add returns the sum of both coins. A zero coin without a ticker can be
// added to anything. Otherwise the tickers must match, and the sum must
// stay within the value bounds.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case c.Ticker == "" && c.IsZero():
		return o, nil
	case o.Ticker == "" && o.IsZero():
		return c, nil
	case !c.SameType(o):
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}
	sum := Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole + o.Whole,
		Fractional: c.Fractional + o.Fractional,
	}
	return sum.normalize()
}

// Negative returns the coin with both parts negated.
func (c Coin) Negative() Coin {
	return Coin{Ticker: c.Ticker, Whole: -c.Whole, Fractional: -c.Fractional}
}

func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare returns 1, 0 or -1 when c is greater, equal or lower than o.
// Tickers are ignored and both coins must be normalized.
func (c Coin) Compare(o Coin) int {
	if d := sign(c.Whole - o.Whole); d != 0 {
		return d
	}
	return sign(c.Fractional - o.Fractional)
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func (c Coin) Equals(o Coin) bool {
	return c == o
}

func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

func (c Coin) IsPositive() bool {
	return c.Whole > 0 || (c.Whole == 0 && c.Fractional > 0)
}

func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE reports whether c is of the same currency and at least as large
// as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Compare(o) >= 0
}

func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Validate checks the ticker, the value bounds and that both parts have
// the same sign. Negative values are valid.
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.Append(err, errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", c.Ticker))
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		err = errors.Append(err, errors.Wrap(errors.ErrOverflow, "whole"))
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		err = errors.Append(err, errors.Wrap(errors.ErrOverflow, "fractional"))
	}
	if c.Whole != 0 && c.Fractional != 0 && (c.Whole > 0) != (c.Fractional > 0) {
		err = errors.Append(err, errors.Wrap(errors.ErrInvalidState, "mismatched sign"))
	}
	return err
}

// normalize moves whole units in or out of the fractional part until it is
// within bounds and has the sign of the whole part.
func (c Coin) normalize() (Coin, error) {
	c.Whole += c.Fractional / FracUnit
	c.Fractional %= FracUnit

	switch {
	case c.Whole > 0 && c.Fractional < 0:
		c.Whole--
		c.Fractional += FracUnit
	case c.Whole < 0 && c.Fractional > 0:
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%d whole units", c.Whole)
	}
	return c, nil
}
