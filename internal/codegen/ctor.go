package codegen

import (
	"strings"

	"github.com/odradev/nysa-go/internal/ir"
)

// EmitConstructorChain emits one primary `init` plus one `_<class>_init`
// helper per ancestor that has its own constructor. The primary calls the
// ancestor helpers in root-to-leaf order (mirroring the MRO the path-stack
// shim consumes the other direction), applies default-value initialization
// for storage fields with initializers, then runs the leaf's own
// constructor body. envParam is threaded in front of every parameter list
// as-is, so the env-threaded backend can pass "env: Env, caller: Address" and the
// wasm-module backend can pass "".
//
// c.Constructors may be nil (no class in the MRO declares one); init still
// emits to apply storage initializers, with an empty body otherwise.
func EmitConstructorChain(e *Emitter, c *ir.ContractData, d Dialect, envParam string) {
	byClass := map[string]*ir.Constructor{}
	if c.Constructors != nil {
		for _, impl := range c.Constructors.Impls {
			byClass[impl.Class] = impl.Constructor
		}
	}
	leaf := byClass[c.Name]

	var ancestors []string
	for i := len(c.Path) - 1; i >= 1; i-- {
		ancestors = append(ancestors, c.Path[i])
	}

	for _, cls := range ancestors {
		if ctor, ok := byClass[cls]; ok {
			emitInitHelper(e, cls, ctor, d, envParam)
		}
	}

	params := envParam
	if leaf != nil {
		for _, p := range leaf.Params {
			params = appendParam(params, p.Name+": "+d.LowerType(p.Type))
		}
	}

	e.Line("pub fn init(%s) {", params)
	e.Indent()
	for _, cls := range ancestors {
		if _, ok := byClass[cls]; !ok {
			continue
		}
		args := baseInitArgs(e, c.Path, byClass, cls, d)
		e.Line("self._%s_init(%s);", strings.ToLower(cls), args)
	}
	emitDefaultInitializers(e, c, d)
	if leaf != nil {
		e.Stmts(leaf.Stmts, d)
	}
	e.Dedent()
	e.Line("}")
	e.Line("")
}

func emitInitHelper(e *Emitter, cls string, ctor *ir.Constructor, d Dialect, envParam string) {
	params := envParam
	for _, p := range ctor.Params {
		params = appendParam(params, p.Name+": "+d.LowerType(p.Type))
	}
	e.Line("fn _%s_init(%s) {", strings.ToLower(cls), params)
	e.Indent()
	e.Stmts(ctor.Stmts, d)
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// baseInitArgs finds the explicit argument list a descendant passed to
// ancestor's constructor (e.g. `constructor(uint s) Token(s) { ... }`),
// searching leaf-to-root so the most specific override wins. No explicit
// call anywhere in the chain means the ancestor's helper takes no args.
func baseInitArgs(e *Emitter, path []string, byClass map[string]*ir.Constructor, ancestor string, d Dialect) string {
	for _, cls := range path {
		ctor, ok := byClass[cls]
		if !ok {
			continue
		}
		for _, bic := range ctor.BaseInitCalls {
			if bic.Class == ancestor {
				return joinStrings(e.exprsOf(bic.Args, d))
			}
		}
	}
	return ""
}

// emitDefaultInitializers applies storage vars' declared initializers
// before the leaf constructor's own body runs (spec's point (b)).
func emitDefaultInitializers(e *Emitter, c *ir.ContractData, d Dialect) {
	for _, v := range c.Vars {
		if v.Init == nil {
			continue
		}
		e.Line("%s;", d.StorageAssign(v.Name, e.Expr(v.Init, d)))
	}
}

func appendParam(params, next string) string {
	if params == "" {
		return next
	}
	return params + ", " + next
}
