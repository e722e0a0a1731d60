package modmath

import (
	"errors"
	"math/big"
)

// ErrNoInverse indicates that no modular inverse exists because the value
// and the modulus share a common factor, or the modulus is at most 1.
var ErrNoInverse = errors.New("modmath: no modular inverse exists")

var one = big.NewInt(1)

// BinaryExtendedGCD computes g = gcd(a, b) together with Bezout
// coefficients x, y such that a*x + b*y = g. Inputs may be negative or
// zero and are never modified.
//
// The implementation is the binary (Stein) form of the extended Euclidean
// algorithm: common powers of two are stripped up front and re-applied to
// the result, and the main loop only shifts and subtracts. The cofactor
// pairs are halved alongside the working values, with an odd-parity
// adjustment that keeps the Bezout identity intact at every step. Runtime
// is O(log min(|a|, |b|)) shift/subtract steps.
func BinaryExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	signA := int64(1)
	if a.Sign() < 0 {
		signA = -1
	}
	signB := int64(1)
	if b.Sign() < 0 {
		signB = -1
	}

	// Work on positive copies; signs are re-applied to the coefficients
	// at the end.
	aa := new(big.Int).Abs(a)
	bb := new(big.Int).Abs(b)

	// gcd(a, 0) = |a|, gcd(0, b) = |b|.
	if aa.Sign() == 0 {
		return bb, big.NewInt(0), big.NewInt(signB)
	}
	if bb.Sign() == 0 {
		return aa, big.NewInt(signA), big.NewInt(0)
	}

	// Strip the common power of two; it multiplies back into the gcd but
	// leaves the coefficients untouched.
	shift := 0
	for aa.Bit(0) == 0 && bb.Bit(0) == 0 {
		aa.Rsh(aa, 1)
		bb.Rsh(bb, 1)
		shift++
	}

	u := new(big.Int).Set(aa)
	v := new(big.Int).Set(bb)
	a1 := big.NewInt(1)
	b1 := big.NewInt(0)
	a2 := big.NewInt(0)
	b2 := big.NewInt(1)

	// halve divides w by two and adjusts its cofactor pair so that
	// aa*c1 + bb*c2 = w keeps holding. When a cofactor is odd the pair is
	// shifted by (+bb, -aa) first, which is even by the parity argument
	// (at least one of aa, bb is odd here).
	halve := func(w, c1, c2 *big.Int) {
		w.Rsh(w, 1)
		if c1.Bit(0) == 0 && c2.Bit(0) == 0 {
			c1.Rsh(c1, 1)
			c2.Rsh(c2, 1)
			return
		}
		c1.Add(c1, bb)
		c1.Rsh(c1, 1)
		c2.Sub(c2, aa)
		c2.Rsh(c2, 1)
	}

	for u.Sign() != 0 {
		for u.Bit(0) == 0 {
			halve(u, a1, b1)
		}
		for v.Bit(0) == 0 {
			halve(v, a2, b2)
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			a1.Sub(a1, a2)
			b1.Sub(b1, b2)
		} else {
			v.Sub(v, u)
			a2.Sub(a2, a1)
			b2.Sub(b2, b1)
		}
	}

	g = new(big.Int).Lsh(v, uint(shift))
	x = a2.Mul(a2, big.NewInt(signA))
	y = b2.Mul(b2, big.NewInt(signB))
	return g, x, y
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m). It reports
// ErrNoInverse when gcd(a, m) != 1 or when m <= 1, the cases where no such
// x exists. The inverse is derived from BinaryExtendedGCD, so a may be
// negative.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, ErrNoInverse
	}
	g, x, _ := BinaryExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	// big.Int.Mod is Euclidean for positive m, so the result lands in
	// [0, m) even for negative x.
	return x.Mod(x, m), nil
}

// Totient returns Euler's totient of p*q for distinct primes p and q,
// which is (p-1)(q-1).
func Totient(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return pm1.Mul(pm1, qm1)
}

// FromDigits converts a most-significant-first digit sequence in the given
// base to its base-10 value. A digit of -1 counts as zero.
func FromDigits(digits []int64, base int64) int64 {
	var value int64
	for _, d := range digits {
		value *= base
		if d != -1 {
			value += d
		}
	}
	return value
}
