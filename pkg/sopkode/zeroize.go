package sopkode

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// This follows the pattern discussed in golang/go#33325. It cannot
// guarantee complete sanitization - the garbage collector may have moved
// or copied the data, and big.Int values holding key material cannot be
// scrubbed at all - but it is the accepted practice for transient
// plaintext buffers in Go, and DecryptMessage applies it to its chunk
// buffers before returning.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
