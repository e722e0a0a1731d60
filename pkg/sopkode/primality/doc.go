// Package primality provides a Miller-Rabin probabilistic primality test
// and a probable-prime generator on top of it.
//
// # Randomness
//
// Neither function touches a global random source. Both take an io.Reader
// that supplies randomness; passing nil selects crypto/rand.Reader. Tests
// inject a deterministic reader to make runs reproducible.
//
// # Soundness
//
// MillerRabin uses uniformly random witnesses in [2, n-2], so a composite
// survives k rounds with probability at most 4^-k. DefaultRounds (20)
// pushes that below 2^-40, the bound GeneratePrime relies on. A fixed
// sieve of the first 25 primes answers small inputs exactly and rejects
// the bulk of composites before any witness work.
//
// # Termination
//
// GeneratePrime walks odd candidates until one passes the test. By the
// prime number theorem the expected number of candidates is about
// bits*ln(2)/2, but there is no contractual upper bound: the loop is
// practically bounded, not provably so, and offers no cancellation hook.
package primality
