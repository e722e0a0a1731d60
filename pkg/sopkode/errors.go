package sopkode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBits indicates a key size below the supported minimum.
	ErrInvalidBits = errors.New("sopkode: key size must be at least 32 bits")

	// ErrDuplicatePrimes indicates the two independently sampled primes
	// collided. The key generation is not retried internally; the caller
	// must reinvoke GenerateKeys.
	ErrDuplicatePrimes = errors.New("sopkode: generated primes are equal")

	// ErrNoModularInverse indicates the public exponent shares a factor
	// with the totient, so no private exponent exists for this prime pair.
	ErrNoModularInverse = errors.New("sopkode: public exponent has no inverse modulo the totient")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sopkode.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opErr wraps err with the failing operation, preserving errors.Is/As.
func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}
