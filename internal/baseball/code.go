// internal/baseball/code.go
//
// Digit codes and the strikes/balls oracle.
// Defines:
//   - Code: 3–5 distinct decimal digits, first digit non-zero.
//   - Outcome: (strikes, balls) pair reported for a guess.
//   - Score: the oracle used for both real outcomes and self-simulation.
//
// Notes:
//   - A Code carries a 10-bit presence mask so Score is O(n) with one popcount.
//   - Because digits inside a Code are distinct, "present elsewhere" is a plain set
//     intersection and Score is symmetric.

package baseball

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

const (
	MinDigits = 3
	MaxDigits = 5
)

var (
	ErrCodeLength    = errors.New("baseball: code must have 3 to 5 digits")
	ErrCodeDigit     = errors.New("baseball: code must contain only digits 0-9")
	ErrLeadingZero   = errors.New("baseball: code must not start with 0")
	ErrRepeatedDigit = errors.New("baseball: code digits must be distinct")
)

// Code is an ordered sequence of distinct digits. The zero value is not a valid code.
type Code struct {
	digits [MaxDigits]uint8
	n      uint8
	mask   uint16
}

// ParseCode validates s and converts it into a Code.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinDigits || len(s) > MaxDigits {
		return Code{}, fmt.Errorf("%w: %q", ErrCodeLength, s)
	}
	var c Code
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return Code{}, fmt.Errorf("%w: %q", ErrCodeDigit, s)
		}
		d := ch - '0'
		if c.mask&(1<<d) != 0 {
			return Code{}, fmt.Errorf("%w: %q", ErrRepeatedDigit, s)
		}
		c.digits[i] = d
		c.mask |= 1 << d
	}
	if c.digits[0] == 0 {
		return Code{}, fmt.Errorf("%w: %q", ErrLeadingZero, s)
	}
	c.n = uint8(len(s))
	return c, nil
}

// MustParseCode is ParseCode for literals known to be valid.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// codeOf builds a Code from digits that are already known to be valid.
func codeOf(ds []uint8) Code {
	var c Code
	for i, d := range ds {
		c.digits[i] = d
		c.mask |= 1 << d
	}
	c.n = uint8(len(ds))
	return c
}

// Len returns the number of digits.
func (c Code) Len() int { return int(c.n) }

// Digit returns the digit at position i.
func (c Code) Digit(i int) int { return int(c.digits[i]) }

// IsZero reports whether c is the zero value.
func (c Code) IsZero() bool { return c.n == 0 }

func (c Code) String() string {
	var b [MaxDigits]byte
	for i := 0; i < int(c.n); i++ {
		b[i] = '0' + c.digits[i]
	}
	return string(b[:c.n])
}

// MarshalText renders the code as its digit string.
func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText parses a digit string.
func (c *Code) UnmarshalText(b []byte) error {
	parsed, err := ParseCode(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Outcome is the reply to a guess.
type Outcome struct {
	Strikes int `json:"strikes"`
	Balls   int `json:"balls"`
}

// Solved reports whether the outcome is the exact-match outcome for n digits.
func (o Outcome) Solved(n int) bool { return o.Strikes == n }

func (o Outcome) String() string { return fmt.Sprintf("%dS%dB", o.Strikes, o.Balls) }

// outcomeSlots bounds slot(): strikes and balls are each in 0..MaxDigits.
const outcomeSlots = (MaxDigits + 1) * (MaxDigits + 1)

func (o Outcome) slot() int { return o.Strikes*(MaxDigits+1) + o.Balls }

// Score counts strikes (same digit, same position) and balls (shared digit,
// different position) between two codes of equal length.
func Score(a, b Code) Outcome {
	strikes := 0
	for i := 0; i < int(a.n); i++ {
		if a.digits[i] == b.digits[i] {
			strikes++
		}
	}
	shared := bits.OnesCount16(a.mask & b.mask)
	return Outcome{Strikes: strikes, Balls: shared - strikes}
}
