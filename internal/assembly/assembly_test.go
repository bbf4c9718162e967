package assembly

import (
	"errors"
	"testing"
	"time"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name string
	out  string
	err  error
}

func (s stubBackend) Name() string { return s.name }
func (s stubBackend) Generate(pkg *ir.Package) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestAssembleWrapsBackendOutputInHeaderBanner(t *testing.T) {
	t.Parallel()

	b := stubBackend{name: "wasm-module", out: "pub mod owned { }"}
	builtAt := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

	res, err := Assemble(b, &ir.Package{}, "run-1", builtAt)
	require.NoError(t, err)
	require.Equal(t, "wasm-module", res.Target)
	require.Equal(t, "run-1", res.RunID)
	require.Contains(t, res.Source, "// target: wasm-module")
	require.Contains(t, res.Source, "// run:    run-1")
	require.Contains(t, res.Source, "// built:  2026-07-30T12:00:00Z")
	require.Contains(t, res.Source, "pub mod owned { }")
}

func TestAssemblePropagatesBackendError(t *testing.T) {
	t.Parallel()

	b := stubBackend{name: "wasm-module", err: errors.New("linearization failed")}
	_, err := Assemble(b, &ir.Package{}, "run-1", time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "linearization failed")
}
