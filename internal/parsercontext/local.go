package parsercontext

import "github.com/odradev/nysa-go/internal/ir"

// LocalContext narrows a ContractContext to one function/modifier/constructor
// body: it owns the parameter and local-variable bindings currently in
// scope, tracks which logical function is being generated, and carries the
// expression-hint stack that lets a numeric literal borrow its declared
// type from a sibling expression during recursive codegen. Grounded on nysa/src/parser/context.rs's
// `LocalContext<'a>` and its `FnContext` trait implementation.
type LocalContext struct {
	contract *ContractContext

	currentFn *ir.FnImplementations
	localVars []ir.Var

	exprStack []ir.Expression
}

// NewLocalContext opens a fresh local scope under the given contract.
func NewLocalContext(c *ContractContext) *LocalContext {
	return &LocalContext{contract: c}
}

// Contract returns the enclosing ContractContext.
func (l *LocalContext) Contract() *ContractContext { return l.contract }

// SetCurrentFn records which logical function this scope is generating code
// for; cleared with ClearCurrentFn once generation of that function's body
// finishes.
func (l *LocalContext) SetCurrentFn(fn *ir.FnImplementations) { l.currentFn = fn }

// ClearCurrentFn ends the current function scope.
func (l *LocalContext) ClearCurrentFn() { l.currentFn = nil }

// CurrentFn returns the function this scope is currently generating, if any.
func (l *LocalContext) CurrentFn() (*ir.FnImplementations, bool) {
	return l.currentFn, l.currentFn != nil
}

// RegisterLocalVar brings a parameter or `let`-style local into scope. A
// later registration of the same name shadows the earlier one, matching
// Solidity block-scoping rules close enough for straight-line codegen.
func (l *LocalContext) RegisterLocalVar(v ir.Var) { l.localVars = append(l.localVars, v) }

// GetLocalVarByName looks up a local by name, most-recently-registered wins.
func (l *LocalContext) GetLocalVarByName(name string) (ir.Var, bool) {
	for i := len(l.localVars) - 1; i >= 0; i-- {
		if l.localVars[i].Name == name {
			return l.localVars[i], true
		}
	}
	return ir.Var{}, false
}

// PushContextualExpr pushes a sibling expression onto the hint stack so a
// bare numeric literal evaluated underneath it can borrow its declared type.
func (l *LocalContext) PushContextualExpr(e ir.Expression) { l.exprStack = append(l.exprStack, e) }

// DropContextualExpr pops the most recently pushed hint expression.
func (l *LocalContext) DropContextualExpr() {
	if n := len(l.exprStack); n > 0 {
		l.exprStack = l.exprStack[:n-1]
	}
}

// ContextualExpr returns the top of the hint stack, if any.
func (l *LocalContext) ContextualExpr() (ir.Expression, bool) {
	if n := len(l.exprStack); n > 0 {
		return l.exprStack[n-1], true
	}
	return nil, false
}

// --- ir.TypeResolver ---

// LookupVar checks locals first, then falls through to contract storage.
func (l *LocalContext) LookupVar(name string) (ir.Var, bool) {
	if v, ok := l.GetLocalVarByName(name); ok {
		return v, true
	}
	return l.contract.LookupStorageVar(name)
}

// LookupStruct resolves a struct name against the package this contract
// belongs to.
func (l *LocalContext) LookupStruct(name string) (*ir.Struct, bool) {
	s := l.contract.Global().Package().FindStruct(name)
	return s, s != nil
}

// LookupEnum resolves an enum name against the package.
func (l *LocalContext) LookupEnum(name string) (*ir.Enum, bool) {
	e := l.contract.Global().Package().FindEnum(name)
	return e, e != nil
}

// LookupFuncReturn finds a function's declared return parameters, searching
// the current contract's own implementations first.
func (l *LocalContext) LookupFuncReturn(name string) ([]ir.Param, bool) {
	if impls, ok := l.contract.Data().Functions[name]; ok && len(impls.Impls) > 0 {
		if f := impls.Impls[0].Func; f != nil {
			return f.Returns, true
		}
	}
	if fn, ok := l.contract.FindFn(l.contract.Data().Name, name); ok {
		return fn.Returns, true
	}
	return nil, false
}

// LookupMember resolves `owner.member`'s type when owner isn't a struct or
// enum: array/mapping-of-struct element access, and well-known built-in
// members fall through here.
func (l *LocalContext) LookupMember(ownerType ir.Type, member string) (ir.Type, bool) {
	switch ownerType.Kind {
	case ir.TypeArray:
		if member == "length" {
			return ir.Uint(256), true
		}
		return *ownerType.Elem, true
	case ir.TypeMapping:
		return *ownerType.Value, true
	}
	return ir.Type{}, false
}
