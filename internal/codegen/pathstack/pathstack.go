// Package pathstack generates a virtual-dispatch shim: a process-wide
// mutable PathStack that carries one contract's
// C3 method-resolution order as a root-to-leaf array read from the leaf end
// (leaf first), consumed linearly by
// every super_<name> continuation. This is the mechanism that lets a target
// with no native inheritance still observe Solidity's override/`super`
// semantics. Grounded on the shape of the original nysa codegen's
// `ExternalCallPath`/MRO-walk emission (original_source/nysa/src/parser/odra/func)
// and on the neo-go binding generator's template-plus-manual-assembly split
// for anything with real control flow.
package pathstack

import (
	"sort"

	"github.com/odradev/nysa-go/internal/codegen"
	"github.com/odradev/nysa-go/internal/ir"
)

// Config carries the two options that affect shim emission.
type Config struct {
	// MaxStackSize caps the depth of nested in-flight dispatches: a push at
	// the cap leaves the generated stack_pointer unchanged.
	MaxStackSize int
	// Emit disables the shim entirely when false: a contract with no
	// multiple inheritance along any path can skip it.
	Emit bool
}

// DefaultConfig matches the Parser trait's documented defaults.
func DefaultConfig() Config { return Config{MaxStackSize: 8, Emit: true} }

// NeedsShim reports whether a contract's MRO is long enough (more than
// itself) to need dispatch resolution at all — a contract with no bases has
// nothing to linearize through.
func NeedsShim(c *ir.ContractData) bool { return len(c.Path) > 1 }

// EmitShim writes the ClassName enum, the PathStack record, and its three
// stack operations for one contract's MRO.
//
// Both the ClassName enum's declaration order and the static path array's
// values follow the spec's root-to-leaf sequence [Pk, …, P1, C] — c.Path
// itself is leaf-to-root ([C, P1, …, Pk]), so both are built from its
// reverse. Storing the leaf class last means pop_from_top_path (which reads
// path[MAX_PATH_LENGTH - path_pointer - 1]) returns the leaf first, at
// path_pointer == 0, matching override resolution starting at the leaf.
func EmitShim(e *codegen.Emitter, c *ir.ContractData, cfg Config) {
	className := "ClassName" + c.ClassIdent
	rootToLeaf := reversePath(c.Path)

	e.Line("enum %s {", className)
	e.Indent()
	for _, cls := range rootToLeaf {
		e.Line("%s,", cls)
	}
	e.Dedent()
	e.Line("}")
	e.Line("")

	maxLen := len(c.Path)
	e.Line("struct PathStack%s {", c.ClassIdent)
	e.Indent()
	e.Line("path: [%s; %d],", className, maxLen)
	e.Line("stack_pointer: usize,")
	e.Line("path_pointer: usize,")
	e.Dedent()
	e.Line("}")
	e.Line("")

	e.Line("// single process-wide mutable instance (spec: unsafe mutable global,")
	e.Line("// sound under the serial single-threaded execution model of every")
	e.Line("// supported target).")
	e.Line("static mut STACK_%s: PathStack%s = PathStack%s {", c.ClassIdent, c.ClassIdent, c.ClassIdent)
	e.Indent()
	e.Line("path: [%s],", joinVariants(className, rootToLeaf))
	e.Line("stack_pointer: 0,")
	e.Line("path_pointer: 0,")
	e.Dedent()
	e.Line("};")
	e.Line("")

	e.Line("const MAX_STACK_SIZE_%s: usize = %d;", c.ClassIdent, cfg.MaxStackSize)
	e.Line("")

	e.Line("unsafe fn push_path_on_stack_%s() {", c.ClassIdent)
	e.Indent()
	e.Line("STACK_%s.path_pointer = 0;", c.ClassIdent)
	e.Line("if STACK_%s.stack_pointer < MAX_STACK_SIZE_%s {", c.ClassIdent, c.ClassIdent)
	e.Indent()
	e.Line("STACK_%s.stack_pointer += 1;", c.ClassIdent)
	e.Dedent()
	e.Line("}")
	e.Dedent()
	e.Line("}")
	e.Line("")

	e.Line("unsafe fn drop_one_from_stack_%s() {", c.ClassIdent)
	e.Indent()
	e.Line("STACK_%s.stack_pointer = STACK_%s.stack_pointer.saturating_sub(1);", c.ClassIdent, c.ClassIdent)
	e.Dedent()
	e.Line("}")
	e.Line("")

	e.Line("unsafe fn pop_from_top_path_%s() -> %s {", c.ClassIdent, className)
	e.Indent()
	e.Line("let idx = %d - STACK_%s.path_pointer - 1;", maxLen, c.ClassIdent)
	e.Line("STACK_%s.path_pointer += 1;", c.ClassIdent)
	e.Line("STACK_%s.path[idx]", c.ClassIdent)
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// EmitDispatch emits the public entry point and its super_<name>
// continuation for one logical function grouped across a contract's MRO
//. impls must be
// ordered leaf-to-root, matching the contract's Path.
func EmitDispatch(e *codegen.Emitter, c *ir.ContractData, fn *ir.FnImplementations, d codegen.Dialect) {
	if fn.Kind != ir.FnKindFunction || len(fn.Impls) == 0 {
		return
	}
	first := fn.Impls[0].Func
	params := renderParams(first.Params, d)
	ret := renderReturn(first.Returns, d)

	e.Line("pub fn %s(%s)%s {", fn.Name, params, ret)
	e.Indent()
	e.Line("unsafe { push_path_on_stack_%s(); }", c.ClassIdent)
	e.Line("let result = self.%s(%s);", superName(fn.Name), paramNames(first.Params))
	e.Line("unsafe { drop_one_from_stack_%s(); }", c.ClassIdent)
	e.Line("result")
	e.Dedent()
	e.Line("}")
	e.Line("")

	e.Line("fn %s(%s)%s {", superName(fn.Name), params, ret)
	e.Indent()
	e.Line("let class = unsafe { pop_from_top_path_%s() };", c.ClassIdent)
	e.Line("match class {")
	e.Indent()
	byClass := indexByClass(fn.Impls)
	for i, cls := range c.Path {
		impl, ok := byClass[cls]
		e.Line("ClassName%s::%s => {", c.ClassIdent, cls)
		e.Indent()
		if ok {
			e.Stmts(impl.Func.Stmts, d)
		} else if i+1 < len(c.Path) {
			// No implementation at this class: fall through to the next
			// class on the path without consuming an extra slot.
			e.Line("self.%s(%s)", superName(fn.Name), paramNames(first.Params))
		} else {
			e.Line("unreachable!()")
		}
		e.Dedent()
		e.Line("}")
	}
	e.Dedent()
	e.Line("}")
	e.Dedent()
	e.Line("}")
	e.Line("")
}

func reversePath(path []string) []string {
	out := make([]string, len(path))
	for i, cls := range path {
		out[len(path)-1-i] = cls
	}
	return out
}

func joinVariants(className string, classes []string) string {
	s := ""
	for i, cls := range classes {
		if i > 0 {
			s += ", "
		}
		s += className + "::" + cls
	}
	return s
}

func superName(name string) string { return "super_" + name }

func indexByClass(impls []ir.FnImplementation) map[string]ir.FnImplementation {
	out := map[string]ir.FnImplementation{}
	for _, impl := range impls {
		out[impl.Class] = impl
	}
	return out
}

func renderParams(ps []ir.Param, d codegen.Dialect) string {
	s := ""
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += p.Name + ": " + d.LowerType(p.Type)
	}
	return s
}

func paramNames(ps []ir.Param) string {
	s := ""
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += p.Name
	}
	return s
}

func renderReturn(ps []ir.Param, d codegen.Dialect) string {
	if len(ps) == 0 {
		return ""
	}
	if len(ps) == 1 {
		return " -> " + d.LowerType(ps[0].Type)
	}
	s := " -> ("
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += d.LowerType(p.Type)
	}
	return s + ")"
}

// SortedDispatchNames returns the logical function names a contract needs
// dispatch emitted for, deterministically ordered.
func SortedDispatchNames(c *ir.ContractData) []string {
	names := make([]string, 0, len(c.Functions))
	for name, fn := range c.Functions {
		if fn.Kind == ir.FnKindFunction {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
