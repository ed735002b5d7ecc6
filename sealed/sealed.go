package sealed

import (
	"hash"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/bigsum/bigsum/integer"
)

// ErrDigestMismatch indicates a well-formed compound value whose embedded
// digest does not match the digest recomputed from its payload. This is the
// corruption signal, distinct from any parse failure.
var ErrDigestMismatch = Error.New("digest mismatch")

// Seal combines payload with the digest of its magnitude into a compound
// integer. The accumulator h is reset before use.
func Seal(payload *big.Int, h hash.Hash) (compound *big.Int, err error) {
	defer Error.WrapP(&err)

	bits, err := digestBits(h)
	if err != nil {
		return nil, err
	}

	magnitude := new(big.Int).Abs(payload)

	digest, err := digestOf(magnitude, h)
	if err != nil {
		return nil, err
	}

	compound = new(big.Int).Lsh(magnitude, bits)
	compound.Or(compound, digest)

	if payload.Sign() < 0 {
		compound.Neg(compound)
	}

	return compound, nil
}

// Unseal splits compound into payload and digest, recomputes the digest of
// the payload's magnitude, and fails with ErrDigestMismatch unless they
// agree. The accumulator h is reset before use.
func Unseal(compound *big.Int, h hash.Hash) (_ Int, err error) {
	defer Error.WrapP(&err)

	bits, err := digestBits(h)
	if err != nil {
		return Int{}, err
	}

	c := new(big.Int).Abs(compound)

	mask := new(big.Int).Lsh(big.NewInt(1), bits)
	mask.Sub(mask, big.NewInt(1))

	digest := new(big.Int).And(c, mask)
	magnitude := new(big.Int).Rsh(c, bits)

	expected, err := digestOf(magnitude, h)
	if err != nil {
		return Int{}, err
	}

	if digest.Cmp(expected) != 0 {
		return Int{}, oops.Trace(ErrDigestMismatch)
	}

	if compound.Sign() < 0 {
		magnitude.Neg(magnitude)
	}

	return Int{value: magnitude}, nil
}

// digestOf returns the digest of a non-negative magnitude as an unsigned
// integer: reset, absorb the magnitude's byte form, finalize.
func digestOf(magnitude *big.Int, h hash.Hash) (digest *big.Int, err error) {
	data, err := integer.Encode(magnitude)
	if err != nil {
		return nil, err
	}

	h.Reset()

	_, err = h.Write(data)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// digestBits returns the digest width of h in bits. A non-positive digest
// size cannot carry integrity information and is rejected before any
// arithmetic.
func digestBits(h hash.Hash) (bits uint, err error) {
	size := h.Size()
	if size <= 0 {
		return 0, Error.New("invalid digest size: %d", size)
	}

	return uint(size) * 8, nil
}
