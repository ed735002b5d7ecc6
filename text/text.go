// Package text parses and formats signed arbitrary-precision integers.
//
// The accepted grammar is:
//
//	["-"] ( "0x" hexdigits+ | decdigits+ )
//
// A leading "+" is invalid. No whitespace, grouping separators, or
// underscores are permitted. Hex digits may be either case; the "0x" prefix
// itself must be lowercase. Values are arbitrary precision, so no input can
// overflow.
package text

import (
	"math/big"
	"strings"

	"github.com/calebcase/oops"
)

// ErrFormat indicates input that does not match the grammar.
var ErrFormat = Error.New("invalid format")

// Base selects the textual form of the magnitude.
type Base int

// Supported bases.
const (
	Decimal Base = 10
	Hex     Base = 16
)

// Parse converts s to an integer. It fails with ErrFormat on any deviation
// from the grammar.
func Parse(s string) (i *big.Int, err error) {
	digits := s

	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	base := Decimal
	if strings.HasPrefix(digits, "0x") {
		base = Hex
		digits = digits[2:]
	}

	if len(digits) == 0 {
		return nil, oops.Trace(ErrFormat)
	}

	for n := 0; n < len(digits); n++ {
		if !digit(digits[n], base) {
			return nil, oops.Trace(ErrFormat)
		}
	}

	i, ok := new(big.Int).SetString(digits, int(base))
	if !ok {
		return nil, oops.Trace(ErrFormat)
	}

	if negative {
		i.Neg(i)
	}

	return i, nil
}

// Format renders i in the given base: an optional "-" (never "+"; zero is
// unsigned), then the magnitude with no redundant leading zeros but at
// least one digit. Hex output is lowercase and prefixed with "0x".
func Format(i *big.Int, base Base) (s string, err error) {
	sb := &strings.Builder{}

	if i.Sign() < 0 {
		sb.WriteString("-")
	}

	magnitude := new(big.Int).Abs(i)

	switch base {
	case Decimal:
		sb.WriteString(magnitude.Text(10))
	case Hex:
		sb.WriteString("0x")
		sb.WriteString(magnitude.Text(16))
	default:
		return "", Error.New("invalid base: %d", base)
	}

	return sb.String(), nil
}

func digit(b byte, base Base) bool {
	switch base {
	case Decimal:
		return b >= '0' && b <= '9'
	case Hex:
		return b >= '0' && b <= '9' ||
			b >= 'a' && b <= 'f' ||
			b >= 'A' && b <= 'F'
	}

	return false
}
