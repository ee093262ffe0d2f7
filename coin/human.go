package coin

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/swapchain/errors"
)

// fracDigits is the number of decimal digits of FracUnit.
const fracDigits = 9

// humanRx matches "<whole>[.<fractional>] <ticker>" with an optional
// leading minus.
var humanRx = regexp.MustCompile(`^(-?)\s*(\d+)(?:\.(\d+))?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parses a coin written as "<whole>[.<fractional>] <ticker>",
// for example "2.5 ETH". At most nine fractional digits are accepted.
func ParseHumanFormat(h string) (Coin, error) {
	m := humanRx.FindStringSubmatch(strings.TrimSpace(h))
	if m == nil {
		return Coin{}, errors.ErrInvalidInput.Newf("invalid coin format %q", h)
	}
	negative, wholeDigits, fracPart, ticker := m[1] == "-", m[2], m[3], m[4]

	whole, err := strconv.ParseInt(wholeDigits, 10, 64)
	if err != nil {
		return Coin{}, errors.ErrInvalidInput.Newf("invalid whole value: %s", err)
	}
	if len(fracPart) > fracDigits {
		return Coin{}, errors.ErrInvalidInput.New("fractional value too precise")
	}
	var frac int64
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart+strings.Repeat("0", fracDigits-len(fracPart)), 10, 64)
		if err != nil {
			return Coin{}, errors.ErrInvalidInput.Newf("invalid fractional value: %s", err)
		}
	}
	if negative {
		whole, frac = -whole, -frac
	}
	return NewCoin(whole, frac, ticker), nil
}

// String returns the human format of the coin, which ParseHumanFormat
// reads back for any valid coin. Trailing fractional zeros are dropped.
func (c Coin) String() string {
	if n, err := c.normalize(); err == nil {
		c = n
	}

	var b strings.Builder
	if c.Whole == 0 && c.Fractional < 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(c.Whole, 10))
	if c.Fractional != 0 {
		frac := c.Fractional
		if frac < 0 {
			frac = -frac
		}
		digits := strconv.FormatInt(frac, 10)
		digits = strings.Repeat("0", fracDigits-len(digits)) + digits
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(digits, "0"))
	}
	if c.Ticker != "" {
		b.WriteByte(' ')
		b.WriteString(c.Ticker)
	}
	return b.String()
}

// UnmarshalJSON reads either the human format string or the object with
// whole, fractional and ticker fields.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if json.Unmarshal(raw, &human) == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// A local type without the UnmarshalJSON method.
	type plain Coin
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	*c = Coin(p)
	return nil
}

// Set implements flag.Value. The value is left unchanged on failure.
func (c *Coin) Set(raw string) error {
	parsed, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
