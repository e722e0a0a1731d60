package chunk

import (
	"bytes"
	"errors"
	"math/big"
	"unicode/utf8"
)

var (
	// ErrModulusTooSmall indicates a modulus below 2^9, too narrow to
	// carry even a single plaintext byte per chunk.
	ErrModulusTooSmall = errors.New("chunk: modulus too small to carry one byte per chunk")

	// ErrValueTooWide indicates a decrypted value that does not fit the
	// chunk width, which happens when ciphertexts are decrypted with the
	// wrong key.
	ErrValueTooWide = errors.New("chunk: value wider than chunk size")

	// ErrNonUTF8 indicates decrypted bytes that do not form valid UTF-8
	// text, again a symptom of mismatched key material.
	ErrNonUTF8 = errors.New("chunk: decoded bytes are not valid UTF-8")
)

// Size returns the chunk width in bytes for the given modulus: the largest
// whole-byte width strictly below the modulus byte length. Every Size(n)
// bytes read big-endian are then strictly less than n. Moduli below 2^9
// yield ErrModulusTooSmall.
func Size(n *big.Int) (int, error) {
	if n == nil || n.BitLen() < 9 {
		return 0, ErrModulusTooSmall
	}
	return (n.BitLen() - 1) / 8, nil
}

// Split renders the message as UTF-8 bytes, pads the tail with zero bytes
// to a multiple of size, and cuts the result into size-byte groups. An
// empty message yields no chunks.
func Split(message string, size int) [][]byte {
	if size < 1 {
		return nil
	}
	raw := []byte(message)
	if rem := len(raw) % size; rem != 0 {
		raw = append(raw, make([]byte, size-rem)...)
	}

	chunks := make([][]byte, 0, len(raw)/size)
	for i := 0; i < len(raw); i += size {
		chunks = append(chunks, raw[i:i+size])
	}
	return chunks
}

// FixedBytes renders v as exactly size big-endian bytes, left-padded with
// zeros. Values needing more than size bytes yield ErrValueTooWide.
func FixedBytes(v *big.Int, size int) ([]byte, error) {
	if v.BitLen() > size*8 {
		return nil, ErrValueTooWide
	}
	buf := make([]byte, size)
	v.FillBytes(buf)
	return buf, nil
}

// Assemble concatenates decrypted chunks back into text, stripping all
// trailing NUL bytes (both padding and any genuine trailing NULs, see the
// package comment) and rejecting non-UTF-8 results with ErrNonUTF8.
func Assemble(chunks [][]byte) (string, error) {
	joined := bytes.Join(chunks, nil)
	joined = bytes.TrimRight(joined, "\x00")
	if !utf8.Valid(joined) {
		return "", ErrNonUTF8
	}
	return string(joined), nil
}
