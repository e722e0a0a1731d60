package sopkode

import (
	"math/big"

	"github.com/sopkode/sop-kode-go/pkg/sopkode/chunk"
)

// Encrypt computes m^e mod n, the raw RSA primitive. The caller is
// responsible for m < n; the result is reduced either way. Deterministic:
// equal inputs always produce equal ciphertexts.
func (k *PublicKey) Encrypt(m *big.Int) *big.Int {
	return new(big.Int).Exp(m, k.E, k.N)
}

// Decrypt computes c^d mod n, the raw RSA primitive.
func (k *PrivateKey) Decrypt(c *big.Int) *big.Int {
	return new(big.Int).Exp(c, k.d, k.n)
}

// ChunkSize returns the plaintext chunk width in bytes this key's modulus
// supports.
func (k *PublicKey) ChunkSize() (int, error) {
	return chunk.Size(k.N)
}

// EncryptMessage encrypts a text message of arbitrary length. The message
// is split into chunks sized to the modulus (see the chunk package), each
// chunk is read as a big-endian integer and encrypted on its own. The
// resulting sequence is ordered; order matters for decryption.
func (k *PublicKey) EncryptMessage(message string) ([]*big.Int, error) {
	size, err := chunk.Size(k.N)
	if err != nil {
		return nil, opErr("EncryptMessage", err)
	}

	pieces := chunk.Split(message, size)
	cts := make([]*big.Int, len(pieces))
	for i, piece := range pieces {
		cts[i] = k.Encrypt(new(big.Int).SetBytes(piece))
	}
	return cts, nil
}

// DecryptMessage reverses EncryptMessage. Each ciphertext is decrypted and
// rendered back at the full chunk width so that chunks with leading zero
// bytes survive the round trip; the chunks are then concatenated, trailing
// NUL padding is stripped, and the result must be valid UTF-8.
//
// Ciphertexts produced under a different key typically fail with
// chunk.ErrValueTooWide or chunk.ErrNonUTF8.
func (k *PrivateKey) DecryptMessage(ciphertexts []*big.Int) (string, error) {
	size, err := chunk.Size(k.n)
	if err != nil {
		return "", opErr("DecryptMessage", err)
	}

	pieces := make([][]byte, len(ciphertexts))
	for i, ct := range ciphertexts {
		piece, err := chunk.FixedBytes(k.Decrypt(ct), size)
		if err != nil {
			return "", opErr("DecryptMessage", err)
		}
		pieces[i] = piece
	}

	message, err := chunk.Assemble(pieces)
	for _, piece := range pieces {
		ZeroizeBytes(piece)
	}
	if err != nil {
		return "", opErr("DecryptMessage", err)
	}
	return message, nil
}
