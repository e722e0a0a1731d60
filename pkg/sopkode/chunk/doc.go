// Package chunk adapts text messages to the fixed-width integer domain
// that raw RSA operates on.
//
// A message is rendered as its UTF-8 bytes, zero-padded at the end to a
// multiple of the chunk size, and split into fixed groups. Each group read
// as a big-endian unsigned integer is strictly less than the modulus: Size
// picks the largest whole-byte width strictly below the modulus byte
// length, so the invariant holds by construction for any modulus,
// including byte-aligned ones.
//
// The zero padding is lossy by design: trailing NUL bytes appended during
// chunking cannot be told apart from genuine NULs in the plaintext, and
// Assemble strips all of them. Messages with meaningful trailing NULs do
// not round-trip; this mirrors the upstream behavior and is deliberately
// left visible rather than patched over.
package chunk
