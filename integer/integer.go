// Package integer converts non-negative arbitrary-precision integers to and
// from their minimal little-endian byte form.
//
// The form carries no sign and no trailing zero bytes. Zero encodes as a
// zero-length slice: the magnitude needs no bytes at all, and digests of a
// zero magnitude are therefore digests of empty input.
package integer

import "math/big"

// Encode returns the minimal little-endian bytes of a non-negative i.
func Encode(i *big.Int) (data []byte, err error) {
	if i.Sign() < 0 {
		return nil, Error.New("negative magnitude: %s", i)
	}

	// Note: big.Int.Bytes is big-endian and already minimal (zero is an
	// empty slice).
	data = i.Bytes()
	reverse(data)

	return data, nil
}

// Decode interprets data as an unsigned little-endian magnitude. The empty
// slice decodes to zero.
func Decode(data []byte) *big.Int {
	buf := make([]byte, len(data))
	copy(buf, data)
	reverse(buf)

	return new(big.Int).SetBytes(buf)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
