// Package modmath implements the number-theoretic primitives the RSA key
// derivation is built on: a binary (Stein) extended Euclidean algorithm,
// modular inverses, and Euler's totient for a two-prime modulus.
//
// All operations treat *big.Int inputs as immutable values: arguments are
// never written to and every result is freshly allocated. The extended GCD
// works on signed integers of any sign; the Bezout coefficients it returns
// can be negative.
//
// # Key Operations
//
//   - BinaryExtendedGCD: gcd plus Bezout coefficients, shift-and-subtract
//     only, no division
//   - ModInverse: multiplicative inverse modulo m, or ErrNoInverse when
//     gcd(a, m) != 1
//   - Totient: (p-1)(q-1) for two primes
//
// The package is pure computation with no randomness and no global state.
package modmath
