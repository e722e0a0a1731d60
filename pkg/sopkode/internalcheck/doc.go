// Package internalcheck holds repository policy tests for sop-kode-go.
//
// The tests load the library packages with golang.org/x/tools and walk
// their syntax to enforce two rules: core packages must not import
// math/rand (all sampling goes through an injected io.Reader so runs are
// seedable), and no format string may hex-dump values (key material must
// never be rendered with %x).
//
// This package is internal tooling; do not import it from applications.
package internalcheck
