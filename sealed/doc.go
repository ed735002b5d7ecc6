// Package sealed combines a signed arbitrary-precision payload with a digest
// of its magnitude into a single signed compound integer, and verifies the
// digest when splitting the compound back apart.
//
// Compound Layout
//
// The digest occupies the low-order bits of the compound magnitude and the
// payload magnitude occupies the rest. With a digest of n bits:
//
//	| payload magnitude | digest (n bits) |
//
//	compound = sign(payload) * (|payload| * 2^n + digest)
//
// The digest is computed over the payload magnitude's minimal little-endian
// byte form (see the integer package). Because zero encodes as no bytes, the
// digest of payload zero is the checksum of empty input: under Adler-32 the
// compound value of payload 0 is 1.
//
// Keeping the digest inside the integer means a sealed value survives any
// medium that can carry a signed integer (one text field, one numeric
// column). The digest can be stripped by anyone who knows its width; this is
// an integrity check, not a secret.
package sealed
