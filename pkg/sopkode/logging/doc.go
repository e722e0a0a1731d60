// Package logging provides a minimal logging facade for sop-kode-go.
//
// The core packages are log-free libraries; this facade exists for the
// binaries and for applications embedding the library. It wraps a small
// subset of log/slog behind an interface so callers can substitute their
// own implementation for testing or redaction policies.
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "key pair ready",
//	    "modulus_bits", pair.Public.N.BitLen(),
//	    logging.Redacted("private_exponent"),
//	)
//
// Never log private exponents, primes, or the totient. Use Redacted to
// keep the attribute visible in the log while dropping its value.
package logging
