// Package wasmmodule implements the storage-variable-oriented backend
// target: state lives in named Wasm-module storage cells reached with a
// get/set accessor pair, and authorization is the caller-address comparison
// form (`msg.sender == stored_owner`). Grounded on the original nysa odra
// backend (original_source/nysa/src/parser/odra), which is organized the
// same way: one parser/generator pair per concern (var, func, stmt, expr),
// feeding a single contract-module template.
package wasmmodule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/odradev/nysa-go/internal/codegen"
	"github.com/odradev/nysa-go/internal/codegen/pathstack"
	"github.com/odradev/nysa-go/internal/ir"
)

// Backend is the wasm-module Parser-trait implementation.
type Backend struct {
	Config pathstack.Config
}

// New returns a Backend configured with the Parser trait's default options
// unless overridden.
func New() *Backend { return &Backend{Config: pathstack.DefaultConfig()} }

func (b *Backend) Name() string { return "wasm-module" }

// Generate lowers pkg into wasm-module source text.
func (b *Backend) Generate(pkg *ir.Package) (string, error) {
	e := codegen.NewEmitter(pkg)
	d := dialect{}

	e.Line("// Code generated by nysa-go (wasm-module target). DO NOT EDIT.")
	e.Line("")

	e.EmitErrorsModule(pkg)
	e.EmitEventsModule(pkg, d)
	e.EmitEnumsModule(pkg)
	e.EmitStructsModule(pkg, d)
	e.EmitExternalContractModules(pkg, d)

	for _, c := range sortedModules(pkg) {
		if err := emitContract(e, c, b.Config, d); err != nil {
			return "", fmt.Errorf("contract %q: %w", c.Name, err)
		}
	}
	return e.String(), nil
}

func sortedModules(pkg *ir.Package) []*ir.ContractData {
	out := append(append([]*ir.ContractData{}, pkg.Contracts...), pkg.Libraries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func emitContract(e *codegen.Emitter, c *ir.ContractData, cfg pathstack.Config, d dialect) error {
	e.Line("pub mod %s {", strings.ToLower(c.ClassIdent))
	e.Indent()
	e.EmitUseHeader()
	e.Line("")

	if pathstack.NeedsShim(c) && cfg.Emit {
		pathstack.EmitShim(e, c, cfg)
	}

	e.Line("struct %s {", c.Name)
	e.Indent()
	for _, v := range c.Vars {
		e.Line("%s: Storage<%s>,", v.Name, d.LowerType(v.Type))
	}
	e.Dedent()
	e.Line("}")
	e.Line("")

	e.Line("impl %s {", c.Name)
	e.Indent()

	codegen.EmitConstructorChain(e, c, d, "")

	for _, name := range pathstack.SortedDispatchNames(c) {
		fn := c.Functions[name]
		if pathstack.NeedsShim(c) {
			pathstack.EmitDispatch(e, c, fn, d)
		} else {
			emitSingleFunction(e, fn.Impls[0].Func, d)
		}
	}

	e.Dedent()
	e.Line("}")
	e.Dedent()
	e.Line("}")
	e.Line("")
	return nil
}

func emitSingleFunction(e *codegen.Emitter, f *ir.Func, d dialect) {
	params := ""
	for i, p := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += p.Name + ": " + d.LowerType(p.Type)
	}
	ret := ""
	if len(f.Returns) == 1 {
		ret = " -> " + d.LowerType(f.Returns[0].Type)
	}
	e.Line("pub fn %s(%s)%s {", f.Name, params, ret)
	e.Indent()
	e.Stmts(f.Stmts, d)
	e.Dedent()
	e.Line("}")
	e.Line("")
}
