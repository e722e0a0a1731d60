// Command sop-kode-go demonstrates the library end to end: key
// generation, chunked encryption and decryption, a brute-force estimate
// for the generated modulus, and the Caesar cipher.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sopkode/sop-kode-go/pkg/sopkode"
	"github.com/sopkode/sop-kode-go/pkg/sopkode/bruteforce"
	"github.com/sopkode/sop-kode-go/pkg/sopkode/caesar"
	"github.com/sopkode/sop-kode-go/pkg/sopkode/logging"
)

const demoBits = 128

func main() {
	ctx := context.Background()
	logger := logging.New(nil)
	log.Printf("sop-kode-go version: %s", sopkode.LibraryVersion())

	pair, err := generateWithRetry(ctx, logger)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}
	logger.Info(ctx, "key pair ready",
		"modulus_bits", pair.Public.N.BitLen(),
		"public_exponent", sopkode.PublicExponent,
		logging.Redacted("private_exponent"),
	)

	plaintext := "Hey bro, this is a test message. I hope you like it!"
	ciphertexts, err := pair.Public.EncryptMessage(plaintext)
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	fmt.Printf("Encrypted into %d chunks: %v\n", len(ciphertexts), ciphertexts)

	fmt.Printf("Estimated time to brute force: %s\n", bruteforce.EstimateTime(pair.Public.N))

	decrypted, err := pair.Private.DecryptMessage(ciphertexts)
	if err != nil {
		log.Fatalf("decrypt failed: %v", err)
	}
	fmt.Printf("Decrypted: %s\n", decrypted)

	alphabet := []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	}
	shifted, err := caesar.Shift("HELLO WORLD", 3, alphabet)
	if err != nil {
		log.Fatalf("caesar failed: %v", err)
	}
	fmt.Printf("Caesar shift of HELLO WORLD by 3: %s\n", shifted)
}

// generateWithRetry reinvokes GenerateKeys when the sampled primes
// collide; the library itself never retries.
func generateWithRetry(ctx context.Context, logger logging.Logger) (*sopkode.KeyPair, error) {
	for attempt := 1; ; attempt++ {
		pair, err := sopkode.GenerateKeys(nil, demoBits)
		if err == nil {
			return pair, nil
		}
		if !errors.Is(err, sopkode.ErrDuplicatePrimes) || attempt >= 3 {
			return nil, err
		}
		logger.Warn(ctx, "prime collision, regenerating", "attempt", attempt)
	}
}
