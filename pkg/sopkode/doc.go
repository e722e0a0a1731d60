// Package sopkode is a from-scratch RSA primitive library: probable-prime
// generation, key-pair derivation, and chunked encryption/decryption of
// arbitrary-length text via raw modular exponentiation.
//
// The number-theoretic engine lives in the subpackages modmath (binary
// extended GCD, modular inverse) and primality (Miller-Rabin, prime
// generation); the chunk subpackage maps text onto fixed-width integers
// below the modulus. This package ties them together as key types and the
// encrypt/decrypt engine.
//
// # Key Types
//
//   - PublicKey: modulus N and exponent E, immutable once constructed and
//     safe to share across any number of concurrent encryptors
//   - PrivateKey: modulus and private exponent, the exponent is never
//     exposed or serialized
//   - KeyPair: one public and one private view over the same modulus
//
// # Security Model
//
// This is textbook RSA. Encryption is raw modular exponentiation with no
// padding scheme and no randomization: encrypting the same chunk under the
// same key always yields the same ciphertext, so the scheme is not
// semantically secure against chosen-plaintext distinguishing. That is an
// explicit non-goal, as are side-channel resistance (math/big is not
// constant-time), key persistence, and networking. Key material lives only
// in process memory.
//
// # Usage
//
//	pair, err := sopkode.GenerateKeys(nil, 2048)
//	if err != nil {
//	    // sopkode.ErrDuplicatePrimes means retry the whole call
//	    return err
//	}
//	cts, err := pair.Public.EncryptMessage("attack at dawn")
//	...
//	msg, err := pair.Private.DecryptMessage(cts)
//
// Passing nil randomness selects crypto/rand.Reader; tests substitute a
// deterministic reader.
package sopkode
