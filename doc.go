// Package bigsum is a self-verifying codec for signed arbitrary-precision
// integers.
//
// A payload integer is combined with a checksum ("digest") of its absolute
// value into a single compound integer:
//
//	compound = sign(payload) * (|payload| * 2^n + digest)
//
// where n is the digest width in bits. The compound value round-trips
// through anything that can carry one signed integer and, on the way back
// out, the digest is recomputed and compared so corruption is detected
// rather than silently accepted.
//
// The subpackages are layered leaves first: checksum resolves streaming
// checksum algorithms by name (adler32 registers the reference algorithm),
// integer converts magnitudes to their minimal little-endian byte form,
// sealed embeds and verifies digests, and text parses and formats the
// signed decimal and hex representations. This package ties them together
// into a string-to-string surface:
//
//	s, err := bigsum.Format(big.NewInt(42), adler32.Name, text.Hex)
//	...
//	v, err := bigsum.Parse(s, adler32.Name)
//
// Verification failures surface as sealed.ErrDigestMismatch, malformed text
// as text.ErrFormat, and unknown algorithm names as checksum.ErrUnsupported.
package bigsum
