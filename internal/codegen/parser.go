// Package codegen holds the language-neutral half of the generator: the
// Backend contract both concrete targets implement, and the recursive
// expression/statement emitters shared by every backend. Grounded on
// nysa/src/parser/mod.rs's `Parser` trait ("parse(package) -> TokenStream")
// and on the neo-go smart-contract binding generator's split between
// text/template boilerplate and hand-written recursive emission for
// anything with real control flow.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/odradev/nysa-go/internal/parsercontext"
)

// Backend converts a fully-built IR package into target source text. Each
// concrete target (wasmmodule, envthreaded) implements exactly this much;
// everything expression/statement shaped is shared.
type Backend interface {
	// Name identifies the backend for diagnostics and output file naming.
	Name() string
	// Generate lowers pkg into complete target source text, or the first
	// error encountered.
	Generate(pkg *ir.Package) (string, error)
}

// Emitter carries the shared state every backend's expression/statement
// walk needs: the current parser-context stack and an indentation-aware
// string builder. It is not itself a Backend — backends embed one and
// supply their own template-driven scaffolding around it.
type Emitter struct {
	Global *parsercontext.GlobalContext

	// ContextValueIdent is the identifier the target language uses for the
	// threaded runtime/environment handle, when the backend needs one
	// (envthreaded: "env"; wasmmodule: "").
	ContextValueIdent string

	indent int
	buf    strings.Builder
}

// NewEmitter opens a fresh Emitter over a built package.
func NewEmitter(pkg *ir.Package) *Emitter {
	return &Emitter{Global: parsercontext.NewGlobalContext(pkg)}
}

func (e *Emitter) WriteIndent() { e.buf.WriteString(strings.Repeat("    ", e.indent)) }
func (e *Emitter) Indent()      { e.indent++ }
func (e *Emitter) Dedent() {
	if e.indent > 0 {
		e.indent--
	}
}

// Line writes one indented, newline-terminated line.
func (e *Emitter) Line(format string, args ...any) {
	e.WriteIndent()
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

// Raw writes text with no indentation or trailing newline management; used
// for inline expression fragments assembled by the caller.
func (e *Emitter) Raw(s string) { e.buf.WriteString(s) }

// String returns everything written so far.
func (e *Emitter) String() string { return e.buf.String() }

// SortedContracts returns a package's contracts in a stable order
// (declaration order is already stable, but tests and backends that merge
// contract output with other namespaced sections want an explicit,
// re-derivable order rather than relying on slice identity).
func SortedContracts(pkg *ir.Package) []*ir.ContractData {
	out := append([]*ir.ContractData{}, pkg.Contracts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
