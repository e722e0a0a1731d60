package modmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopkode/sop-kode-go/pkg/sopkode/modmath"
)

func TestBinaryExtendedGCDBezoutIdentity(t *testing.T) {
	pairs := [][2]int64{
		{7, 26},
		{26, 7},
		{240, 46},
		{46, 240},
		{-7, 26},
		{7, -26},
		{-240, -46},
		{2, 4},
		{1024, 768},
		{65537, 3120},
		{0, 5},
		{5, 0},
		{1, 1},
		{17, 17},
	}

	for _, pair := range pairs {
		a := big.NewInt(pair[0])
		b := big.NewInt(pair[1])

		g, x, y := modmath.BinaryExtendedGCD(a, b)

		want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
		assert.Equalf(t, 0, g.Cmp(want), "gcd(%d, %d): got %s, want %s", pair[0], pair[1], g, want)

		// a*x + b*y must equal g.
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Equalf(t, 0, lhs.Cmp(g), "bezout identity for (%d, %d): %s != %s", pair[0], pair[1], lhs, g)
	}
}

func TestBinaryExtendedGCDDoesNotMutateInputs(t *testing.T) {
	a := big.NewInt(240)
	b := big.NewInt(-46)

	modmath.BinaryExtendedGCD(a, b)

	require.Equal(t, int64(240), a.Int64())
	require.Equal(t, int64(-46), b.Int64())
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		name string
		a, m int64
		want int64
	}{
		{name: "seven mod twentysix", a: 7, m: 26, want: 15},
		{name: "negative input", a: -7, m: 26, want: 11},
		{name: "identity", a: 1, m: 29, want: 1},
		{name: "public exponent", a: 65537, m: 3120, want: 2753},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := modmath.ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestModInverseProperty(t *testing.T) {
	// For coprime pairs the inverse must land in [0, m) and multiply back
	// to 1 mod m.
	pairs := [][2]int64{{3, 7}, {10, 17}, {65537, 3120}, {122, 4567}, {-5, 9}}

	for _, pair := range pairs {
		a := big.NewInt(pair[0])
		m := big.NewInt(pair[1])

		x, err := modmath.ModInverse(a, m)
		require.NoErrorf(t, err, "ModInverse(%d, %d)", pair[0], pair[1])
		require.True(t, x.Sign() >= 0 && x.Cmp(m) < 0, "inverse out of range")

		prod := new(big.Int).Mul(a, x)
		prod.Mod(prod, m)
		require.Equalf(t, int64(1), prod.Int64(), "a*x mod m for (%d, %d)", pair[0], pair[1])
	}
}

func TestModInverseNotCoprime(t *testing.T) {
	_, err := modmath.ModInverse(big.NewInt(6), big.NewInt(26))
	require.ErrorIs(t, err, modmath.ErrNoInverse)

	_, err = modmath.ModInverse(big.NewInt(4), big.NewInt(8))
	require.ErrorIs(t, err, modmath.ErrNoInverse)
}

func TestModInverseDegenerateModulus(t *testing.T) {
	for _, m := range []int64{1, 0, -5} {
		_, err := modmath.ModInverse(big.NewInt(3), big.NewInt(m))
		require.ErrorIsf(t, err, modmath.ErrNoInverse, "m=%d", m)
	}
}

func TestTotient(t *testing.T) {
	tests := []struct {
		p, q, want int64
	}{
		{3, 11, 20},
		{61, 53, 3120},
		{2, 3, 2},
	}

	for _, tt := range tests {
		got := modmath.Totient(big.NewInt(tt.p), big.NewInt(tt.q))
		assert.Equal(t, tt.want, got.Int64())
	}
}

func TestFromDigits(t *testing.T) {
	tests := []struct {
		digits []int64
		base   int64
		want   int64
	}{
		{[]int64{1, 0, 1}, 2, 5},
		{[]int64{1, 2, 3}, 10, 123},
		{[]int64{1, 2, 3}, 16, 291},
		{[]int64{1, 0}, 28, 28},
		{[]int64{1, 1, 2}, 3, 14},
		{[]int64{-1, 1}, 10, 1},
		{nil, 10, 0},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, modmath.FromDigits(tt.digits, tt.base), "digits %v base %d", tt.digits, tt.base)
	}
}
