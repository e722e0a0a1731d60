package sopkode

import (
	"io"
	"math/big"

	"github.com/sopkode/sop-kode-go/pkg/sopkode/modmath"
	"github.com/sopkode/sop-kode-go/pkg/sopkode/primality"
)

// PublicExponent is the fixed public exponent e used by GenerateKeys.
const PublicExponent = 65537

// minKeyBits keeps e = 65537 below the totient and leaves the chunk codec
// at least one byte of room.
const minKeyBits = 32

// PublicKey is the public half of an RSA key pair.
//
// N and E are exported for read-only access. Do not mutate them: a
// PublicKey is immutable after construction, which is what makes it safe
// to share across any number of concurrent encryptors.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the private half of an RSA key pair. The private exponent
// is unexported and never serialized; it leaves the process only as the
// effect of Decrypt.
type PrivateKey struct {
	n *big.Int
	d *big.Int
}

// KeyPair owns one public and one private view over the same modulus.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// NewPublicKey builds a public key from copies of n and e.
func NewPublicKey(n, e *big.Int) *PublicKey {
	return &PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)}
}

// NewPrivateKey builds a private key from copies of n and d.
func NewPrivateKey(n, d *big.Int) *PrivateKey {
	return &PrivateKey{n: new(big.Int).Set(n), d: new(big.Int).Set(d)}
}

// N returns a copy of the modulus.
func (k *PrivateKey) N() *big.Int {
	return new(big.Int).Set(k.n)
}

// GenerateKeys derives a fresh RSA key pair with a modulus of roughly the
// given bit length. Randomness is drawn from random; nil selects
// crypto/rand.Reader, and any other reader must be safe for concurrent use
// because the two primes are generated in parallel.
//
// The two bits/2-bit primes are sampled independently. If they collide the
// call fails with ErrDuplicatePrimes and is not retried here - reinvoke to
// try again. On success e*d = 1 (mod (p-1)(q-1)) holds with e = 65537;
// the astronomically unlikely case of e sharing a factor with the totient
// surfaces as ErrNoModularInverse.
func GenerateKeys(random io.Reader, bits int) (*KeyPair, error) {
	if bits < minKeyBits {
		return nil, opErr("GenerateKeys", ErrInvalidBits)
	}

	// Fork-join: the two generations share no state, the parent blocks
	// for both.
	type result struct {
		prime *big.Int
		err   error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			p, err := primality.GeneratePrime(random, bits/2)
			results <- result{prime: p, err: err}
		}()
	}
	first := <-results
	second := <-results
	if first.err != nil {
		return nil, opErr("GenerateKeys", first.err)
	}
	if second.err != nil {
		return nil, opErr("GenerateKeys", second.err)
	}
	p, q := first.prime, second.prime

	if p.Cmp(q) == 0 {
		return nil, opErr("GenerateKeys", ErrDuplicatePrimes)
	}

	n := new(big.Int).Mul(p, q)
	phi := modmath.Totient(p, q)
	e := big.NewInt(PublicExponent)

	d, err := modmath.ModInverse(e, phi)
	if err != nil {
		return nil, opErr("GenerateKeys", ErrNoModularInverse)
	}

	// Both views alias the same modulus value; neither ever writes to it.
	return &KeyPair{
		Public:  &PublicKey{N: n, E: e},
		Private: &PrivateKey{n: n, d: d},
	}, nil
}
