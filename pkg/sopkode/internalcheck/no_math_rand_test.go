package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// corePattern covers the library packages; cmd and examples are demo code
// and out of scope for the randomness policy.
const corePattern = "github.com/sopkode/sop-kode-go/pkg/sopkode/..."

// TestNoMathRand enforces that all randomness in the library flows through
// the injected io.Reader: math/rand has a process-wide default source and
// would reintroduce the hidden global state the API was designed to avoid.
func TestNoMathRand(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedImports | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, corePattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for path := range pkg.Imports {
			if path == "math/rand" || path == "math/rand/v2" {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, path))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("randomness policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
