package sopkode_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sopkode/sop-kode-go/pkg/sopkode"
)

// constReader always returns the same byte, which makes the two parallel
// prime generations walk identical candidate sequences and collide.
type constReader struct {
	b byte
}

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

func TestGenerateKeys(t *testing.T) {
	pair, err := sopkode.GenerateKeys(nil, 128)
	require.NoError(t, err)

	require.Equal(t, int64(sopkode.PublicExponent), pair.Public.E.Int64())
	require.Equal(t, 0, pair.Public.N.Cmp(pair.Private.N()), "public and private modulus differ")
	require.Greater(t, pair.Public.N.BitLen(), 32)
	require.LessOrEqual(t, pair.Public.N.BitLen(), 128)
}

func TestGenerateKeysRawCycle(t *testing.T) {
	pair, err := sopkode.GenerateKeys(nil, 128)
	require.NoError(t, err)

	// Decrypt inverts Encrypt for any m < n; that only holds when
	// e*d = 1 (mod totient).
	for _, m := range []int64{0, 1, 2, 7, 12345, 982451653} {
		msg := big.NewInt(m)
		got := pair.Private.Decrypt(pair.Public.Encrypt(msg))
		require.Equalf(t, 0, got.Cmp(msg), "cycle for m=%d: got %s", m, got)
	}
}

func TestGenerateKeysRejectsTinySizes(t *testing.T) {
	for _, bits := range []int{0, 8, 31} {
		_, err := sopkode.GenerateKeys(nil, bits)
		require.ErrorIsf(t, err, sopkode.ErrInvalidBits, "bits=%d", bits)
	}
}

func TestGenerateKeysDuplicatePrimes(t *testing.T) {
	// A constant randomness source makes p == q deterministically. The
	// error is surfaced, not retried internally.
	_, err := sopkode.GenerateKeys(constReader{b: 0x20}, 32)
	require.ErrorIs(t, err, sopkode.ErrDuplicatePrimes)
}

func TestNewKeysCopyInputs(t *testing.T) {
	n := big.NewInt(3233)
	e := big.NewInt(17)

	pub := sopkode.NewPublicKey(n, e)
	n.SetInt64(1) // mutating the caller's value must not touch the key
	require.Equal(t, int64(3233), pub.N.Int64())
	require.Equal(t, int64(17), pub.E.Int64())

	d := big.NewInt(2753)
	m := big.NewInt(3233)
	priv := sopkode.NewPrivateKey(m, d)
	m.SetInt64(1)
	require.Equal(t, int64(3233), priv.N().Int64())
}
