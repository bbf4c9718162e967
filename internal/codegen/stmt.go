package codegen

import "github.com/odradev/nysa-go/internal/ir"

// Stmts renders a statement list at the Emitter's current indentation.
func (e *Emitter) Stmts(stmts []ir.Stmt, d Dialect) {
	for _, s := range stmts {
		e.Stmt(s, d)
	}
}

// Stmt renders one statement, recursing into nested blocks at one deeper
// indentation level.
func (e *Emitter) Stmt(s ir.Stmt, d Dialect) {
	switch v := s.(type) {
	case *ir.ExprStmt:
		if assign, ok := v.Expr.(*ir.AssignExpr); ok {
			if ident, idx, ok := arrayElementAssignTarget(assign); ok {
				e.emitArrayElementWrite(ident, idx, assign, d)
				return
			}
		}
		if call, ok := v.Expr.(*ir.FunctionCallExpr); ok {
			if ident, ok := arrayPushTarget(call); ok {
				e.emitArrayPush(ident, call, d)
				return
			}
		}
		e.Line("%s;", e.Expr(v.Expr, d))
	case *ir.VarDeclStmt:
		for _, vr := range v.Vars {
			e.Line("let mut %s: %s;", vr.Name, d.LowerType(vr.Type))
		}
	case *ir.VarDefStmt:
		names := make([]string, len(v.Vars))
		for i, vr := range v.Vars {
			names[i] = vr.Name
		}
		if len(names) == 1 {
			e.Line("let %s = %s;", names[0], e.Expr(v.Init, d))
		} else {
			e.Line("let (%s) = %s;", joinStrings(names), e.Expr(v.Init, d))
		}
	case *ir.ReturnStmt:
		if v.Value == nil {
			e.Line("return;")
		} else {
			e.Line("return %s;", e.Expr(v.Value, d))
		}
	case *ir.IfStmt:
		e.Line("if %s {", e.Expr(v.Cond, d))
		e.Indent()
		e.Stmt(v.Then, d)
		e.Dedent()
		e.Line("}")
	case *ir.IfElseStmt:
		e.Line("if %s {", e.Expr(v.Cond, d))
		e.Indent()
		e.Stmt(v.Then, d)
		e.Dedent()
		e.Line("} else {")
		e.Indent()
		e.Stmt(v.Else, d)
		e.Dedent()
		e.Line("}")
	case *ir.WhileStmt:
		e.Line("while %s {", e.Expr(v.Cond, d))
		e.Indent()
		e.Stmt(v.Body, d)
		e.Dedent()
		e.Line("}")
	case *ir.BlockStmt:
		e.Stmts(v.Stmts, d)
	case *ir.ReturningBlockStmt:
		e.Stmts(v.Stmts, d)
	case *ir.EmitStmt:
		e.Line("%s;", d.EmitEvent(v.Event, e.exprsOf(v.Args, d)))
	case *ir.RevertStmt:
		e.Line("%s;", d.RevertBare(v.ErrorCode))
	case *ir.RevertNamedStmt:
		e.Line("%s;", d.RevertNamed(v.ErrorName, e.exprsOf(v.Args, d)))
	case *ir.UncheckedStmt:
		e.Stmts(v.Stmts, uncheckedDialect{d})
	case *ir.PlaceholderStmt:
		// Consumed during IR construction;
		// a surviving one means a malformed modifier body reached codegen
		// without going through the builder.
		e.Line("/* unexpected placeholder */")
	}
}

// arrayElementAssignTarget reports whether assign writes into one element
// of a storage array (`arr[i] = v`), the one assignment shape that needs a
// read-modify-write through a local rather than a direct call, since
// storage array cells don't implement IndexMut (spec's §4.4 "Array
// access").
func arrayElementAssignTarget(assign *ir.AssignExpr) (*ir.Ident, *ir.CollectionIndex, bool) {
	idx, ok := assign.Target.(*ir.CollectionIndex)
	if !ok {
		return nil, nil, false
	}
	ident, ok := idx.Base.(*ir.Ident)
	if !ok || !ident.IsStorage || ident.StorageType.Kind != ir.TypeArray {
		return nil, nil, false
	}
	return ident, idx, true
}

// emitArrayElementWrite lowers `arr[i] = v` (or a compound form) as
// read-whole-array-into-a-local, mutate the local at the index, write the
// local back — the shape every storage array write needs since the
// backend's storage-array type exposes no direct element-assignment
// primitive.
func (e *Emitter) emitArrayElementWrite(ident *ir.Ident, idx *ir.CollectionIndex, assign *ir.AssignExpr, d Dialect) {
	w := exprWalker{d: d}
	rhs := w.assignRHS(assign)

	tmp := "__" + ident.Name + "_elem"
	e.Line("let mut %s = %s;", tmp, d.StorageRef(ident.Name, ident.StorageType))
	target := tmp
	for _, k := range idx.Keys {
		target += "[" + w.walk(k) + "]"
	}
	e.Line("%s = %s;", target, rhs)
	e.Line("%s;", d.StorageAssign(ident.Name, tmp))
}

// arrayPushTarget reports whether call is a `.push(x)` call on a storage
// array (spec §8 scenario 6), the other assignment shape besides `arr[i] =
// v` that needs a read-modify-write through a local rather than a direct
// call, since storage array cells don't implement a mutating Vec-like push.
func arrayPushTarget(call *ir.FunctionCallExpr) (*ir.Ident, bool) {
	member, ok := call.Callee.(*ir.MemberAccess)
	if !ok || member.Name != "push" {
		return nil, false
	}
	ident, ok := member.Expr.(*ir.Ident)
	if !ok || !ident.IsStorage || ident.StorageType.Kind != ir.TypeArray {
		return nil, false
	}
	return ident, true
}

// emitArrayPush lowers `arr.push(x)` as read-whole-array-into-a-local, call
// `.push(x)` on the local, write the local back — mirroring
// emitArrayElementWrite's treatment of indexed array writes.
func (e *Emitter) emitArrayPush(ident *ir.Ident, call *ir.FunctionCallExpr, d Dialect) {
	w := exprWalker{d: d}
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = w.walk(a)
	}

	tmp := "__" + ident.Name + "_elem"
	e.Line("let mut %s = %s;", tmp, d.StorageRef(ident.Name, ident.StorageType))
	e.Line("%s.push(%s);", tmp, joinStrings(args))
	e.Line("%s;", d.StorageAssign(ident.Name, tmp))
}

func (e *Emitter) exprsOf(es []ir.Expression, d Dialect) []string {
	out := make([]string, len(es))
	for i, a := range es {
		out[i] = e.Expr(a, d)
	}
	return out
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
