package sealed

import (
	"hash"
	"math/big"
)

// Int is a verified signed integer. It holds only the payload; the digest is
// derived on demand and never stored, so it always reflects the current
// payload. The zero value behaves as payload 0.
type Int struct {
	value *big.Int
}

// New returns an Int holding a copy of value.
func New(value *big.Int) Int {
	return Int{value: new(big.Int).Set(value)}
}

// Value returns a copy of the payload.
func (i Int) Value() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(i.value)
}

// Digest returns the digest of the payload's magnitude (sign stripped
// before digesting) as an unsigned integer.
func (i Int) Digest(h hash.Hash) (digest *big.Int, err error) {
	defer Error.WrapP(&err)

	if _, err := digestBits(h); err != nil {
		return nil, err
	}

	return digestOf(new(big.Int).Abs(i.Value()), h)
}

// Seal returns the compound form of the payload.
func (i Int) Seal(h hash.Hash) (compound *big.Int, err error) {
	return Seal(i.Value(), h)
}
