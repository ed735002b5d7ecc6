package text_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/bigsum/bigsum/text"
)

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		type TC struct {
			Input string
			Value string
			Mark  error
		}

		tcs := []TC{
			{
				Input: "0",
				Value: "0",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "42",
				Value: "42",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-42",
				Value: "-42",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x2a",
				Value: "42",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-0x2a",
				Value: "-42",
				Mark:  oops.New("unexpected"),
			},
			// Hex digits are case-insensitive.
			{
				Input: "0x2A",
				Value: "42",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0xFF",
				Value: "255",
				Mark:  oops.New("unexpected"),
			},
			// Leading zeros are non-canonical but legal.
			{
				Input: "007",
				Value: "7",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x0000ff",
				Value: "255",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-0",
				Value: "0",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "1234567890123456789012345678901234567890",
				Value: "1234567890123456789012345678901234567890",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0xd3c21bcecceda1000000",
				Value: "1000000000000000000000000",
				Mark:  oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
				value, err := text.Parse(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Value, value.String(), tc.Mark)
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		type TC struct {
			Input string
			Mark  error
		}

		tcs := []TC{
			{
				Input: "",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-0x",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "+5",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "+0x2a",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "--5",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: " 42",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "42 ",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "4 2",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "4_2",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x2g",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x2a.0",
				Mark:  oops.New("unexpected"),
			},
			// The prefix itself must be lowercase.
			{
				Input: "0X2A",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "42-",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "0x-2a",
				Mark:  oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
				_, err := text.Parse(tc.Input)
				require.ErrorIs(t, err, text.ErrFormat, tc.Mark)
			})
		}
	})
}

func TestFormat(t *testing.T) {
	type TC struct {
		Value   string
		Decimal string
		Hex     string
		Mark    error
	}

	tcs := []TC{
		{
			Value:   "0",
			Decimal: "0",
			Hex:     "0x0",
			Mark:    oops.New("unexpected"),
		},
		{
			Value:   "42",
			Decimal: "42",
			Hex:     "0x2a",
			Mark:    oops.New("unexpected"),
		},
		{
			Value:   "-42",
			Decimal: "-42",
			Hex:     "-0x2a",
			Mark:    oops.New("unexpected"),
		},
		{
			Value:   "255",
			Decimal: "255",
			Hex:     "0xff",
			Mark:    oops.New("unexpected"),
		},
		{
			Value:   "1000000000000000000000000",
			Decimal: "1000000000000000000000000",
			Hex:     "0xd3c21bcecceda1000000",
			Mark:    oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Value), func(t *testing.T) {
			value, ok := new(big.Int).SetString(tc.Value, 10)
			require.True(t, ok, tc.Mark)

			s, err := text.Format(value, text.Decimal)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Decimal, s, tc.Mark)

			s, err = text.Format(value, text.Hex)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Hex, s, tc.Mark)
		})
	}
}

func TestFormatInvalidBase(t *testing.T) {
	_, err := text.Format(big.NewInt(1), text.Base(7))
	require.Error(t, err)
}

func TestRoundtrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"-1",
		"42",
		"-42",
		"65521",
		"18446744073709551616",
		"-18446744073709551616",
		"1234567890123456789012345678901234567890",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			value, ok := new(big.Int).SetString(v, 10)
			require.True(t, ok)

			for _, base := range []text.Base{text.Decimal, text.Hex} {
				s, err := text.Format(value, base)
				require.NoError(t, err)

				parsed, err := text.Parse(s)
				require.NoError(t, err)
				require.Zero(t, value.Cmp(parsed))
			}
		})
	}
}
