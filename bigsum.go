package bigsum

import (
	"math/big"

	"github.com/bigsum/bigsum/checksum"
	"github.com/bigsum/bigsum/sealed"
	"github.com/bigsum/bigsum/text"

	// Register the reference checksum algorithm.
	_ "github.com/bigsum/bigsum/adler32"
)

// Parse reads a compound value from s, splits it, and verifies the embedded
// digest using the named checksum algorithm. It returns the verified
// payload.
func Parse(s string, algorithm string) (payload *big.Int, err error) {
	defer Error.WrapP(&err)

	compound, err := text.Parse(s)
	if err != nil {
		return nil, err
	}

	h, err := checksum.New(algorithm)
	if err != nil {
		return nil, err
	}

	i, err := sealed.Unseal(compound, h)
	if err != nil {
		return nil, err
	}

	return i.Value(), nil
}

// Format seals payload with the named checksum algorithm and renders the
// compound value in the given base.
func Format(payload *big.Int, algorithm string, base text.Base) (s string, err error) {
	defer Error.WrapP(&err)

	h, err := checksum.New(algorithm)
	if err != nil {
		return "", err
	}

	compound, err := sealed.Seal(payload, h)
	if err != nil {
		return "", err
	}

	return text.Format(compound, base)
}
