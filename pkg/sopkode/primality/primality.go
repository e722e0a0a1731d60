package primality

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the witness count GeneratePrime uses. At 20 rounds the
// probability of accepting a composite is below 4^-20.
const DefaultRounds = 20

// ErrInvalidBitSize indicates a requested prime width that cannot hold a
// prime (fewer than 2 bits).
var ErrInvalidBitSize = errors.New("primality: bit size must be at least 2")

// ErrInvalidRounds indicates a non-positive Miller-Rabin round count.
var ErrInvalidRounds = errors.New("primality: rounds must be positive")

// smallPrimes are the first 25 primes, used as an exact pre-filter: a
// match is prime, a nonzero multiple is composite. Every composite up to
// 97*97 has a factor in this table.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97,
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// MillerRabin reports whether n is probably prime after the given number
// of witness rounds. Witnesses are drawn uniformly from [2, n-2] using
// random (nil means crypto/rand.Reader), so a composite passes with
// probability at most 4^-rounds. A false result is definitive.
//
// Values below 2 are composite by convention. The small-prime sieve makes
// the answer exact for any n with a factor of at most 97.
func MillerRabin(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, ErrInvalidRounds
	}
	if random == nil {
		random = crand.Reader
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		sp := big.NewInt(p)
		if n.Cmp(sp) == 0 {
			return true, nil
		}
		if rem.Mod(n, sp).Sign() == 0 {
			return false, nil
		}
	}

	// n-1 = 2^r * d with d odd.
	nm1 := new(big.Int).Sub(n, one)
	r := nm1.TrailingZeroBits()
	d := new(big.Int).Rsh(nm1, r)

	// Witness range [2, n-2]: sample [0, n-3) and shift by 2.
	span := new(big.Int).Sub(n, big.NewInt(3))

	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a, err := crand.Int(random, span)
		if err != nil {
			return false, fmt.Errorf("primality: sampling witness: %w", err)
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}

		witnessed := false
		for j := uint(0); j+1 < r; j++ {
			x.Exp(x, two, n)
			if x.Cmp(one) == 0 {
				return false, nil
			}
			if x.Cmp(nm1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false, nil
		}
	}
	return true, nil
}

// GeneratePrime returns a probable prime of at most the given bit length.
// It samples one uniform integer below 2^bits from random (nil means
// crypto/rand.Reader), forces it odd, and then advances by 2 until a
// candidate passes MillerRabin with DefaultRounds.
//
// Termination is probabilistic: the expected number of candidates is about
// bits*ln(2)/2 and there is no internal deadline. A caller that needs
// bounded latency must abandon the call from outside.
func GeneratePrime(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBitSize
	}
	if random == nil {
		random = crand.Reader
	}

	limit := new(big.Int).Lsh(one, uint(bits))
	n, err := crand.Int(random, limit)
	if err != nil {
		return nil, fmt.Errorf("primality: sampling candidate: %w", err)
	}
	if n.Bit(0) == 0 {
		n.Add(n, one)
	}

	for {
		ok, err := MillerRabin(random, n, DefaultRounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return n, nil
		}
		n.Add(n, two)
	}
}
