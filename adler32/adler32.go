// Package adler32 implements the Adler-32 checksum from RFC 1950 section 9.
//
// Adler-32 is composed of two sums accumulated per byte: s1 is the sum of
// all input bytes, s2 is the sum of all s1 values. Both sums are done modulo
// 65521. s1 is initialized to 1, s2 to zero. The checksum is s2*65536 + s1.
//
// The package registers itself with checksum under the name "Adler-32".
package adler32

import (
	"hash"

	"github.com/bigsum/bigsum/checksum"
)

// Name is the identifier this algorithm registers under.
const Name = "Adler-32"

// Size of the digest in bytes.
const Size = 4

// modulus is the largest prime less than 65536.
const modulus = 65521

// nmax is the largest n such that
// 255 * n * (n+1) / 2 + (n+1) * (modulus-1) <= 2^32-1.
const nmax = 5552

func init() {
	checksum.Register(Name, func() hash.Hash {
		return New()
	})
}

// update folds p into the running sum. Modulo reduction is deferred until
// the accumulators could overflow (every nmax bytes).
func update(sum uint32, p []byte) uint32 {
	s1, s2 := sum&0xffff, sum>>16

	for len(p) > 0 {
		var q []byte
		if len(p) > nmax {
			p, q = p[:nmax], p[nmax:]
		}

		for len(p) >= 4 {
			s1 += uint32(p[0])
			s2 += s1
			s1 += uint32(p[1])
			s2 += s1
			s1 += uint32(p[2])
			s2 += s1
			s1 += uint32(p[3])
			s2 += s1
			p = p[4:]
		}
		for _, b := range p {
			s1 += uint32(b)
			s2 += s1
		}

		s1 %= modulus
		s2 %= modulus

		p = q
	}

	return s2<<16 | s1
}

// Hash is a running Adler-32 checksum implementing hash.Hash32.
type Hash struct {
	sum uint32
}

var _ hash.Hash32 = (*Hash)(nil)

// New returns a reset Hash.
func New() *Hash {
	return &Hash{sum: 1}
}

// Reset restores the initial state (s1=1, s2=0).
func (h *Hash) Reset() {
	h.sum = 1
}

// Size returns the digest length in bytes.
func (h *Hash) Size() int {
	return Size
}

// BlockSize returns the checksum's block size.
func (h *Hash) BlockSize() int {
	return 4
}

// Write folds p into the checksum. It never fails.
func (h *Hash) Write(p []byte) (n int, err error) {
	h.sum = update(h.sum, p)

	return len(p), nil
}

// Sum32 returns the current checksum value.
func (h *Hash) Sum32() uint32 {
	return h.sum
}

// Sum appends the digest to b most significant byte first (network order,
// per RFC 1950) and does not change the running state.
func (h *Hash) Sum(b []byte) []byte {
	s := h.sum

	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the Adler-32 checksum of p.
func Checksum(p []byte) uint32 {
	return update(1, p)
}
