package codegen

import (
	"strings"
	"testing"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

func TestStmtExprStmtRendersWithTrailingSemicolon(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.ExprStmt{Expr: &ir.Ident{Name: "x"}}, fakeDialect{})
	require.Equal(t, "x;\n", e.String())
}

func TestStmtVarDefSingleUsesLetBinding(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.VarDefStmt{
		Vars: []ir.Var{{Name: "x", Type: ir.Uint(256)}},
		Init: &ir.NumberLit{Text: "1"},
	}, fakeDialect{})
	require.Equal(t, "let x = 1;\n", e.String())
}

func TestStmtVarDefTupleUsesDestructuringBinding(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.VarDefStmt{
		Vars: []ir.Var{{Name: "a", Type: ir.Uint(256)}, {Name: "b", Type: ir.Bool()}},
		Init: &ir.Ident{Name: "pair"},
	}, fakeDialect{})
	require.Equal(t, "let (a, b) = pair;\n", e.String())
}

func TestStmtIfElseRendersBothBranchesIndented(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.IfElseStmt{
		Cond: &ir.BoolLit{Value: true},
		Then: &ir.ExprStmt{Expr: &ir.Ident{Name: "a"}},
		Else: &ir.ExprStmt{Expr: &ir.Ident{Name: "b"}},
	}, fakeDialect{})

	out := e.String()
	require.True(t, strings.HasPrefix(out, "if true {\n"))
	require.Contains(t, out, "    a;\n")
	require.Contains(t, out, "} else {\n")
	require.Contains(t, out, "    b;\n")
}

func TestStmtWhileRendersBodyIndented(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.WhileStmt{
		Cond: &ir.BoolLit{Value: true},
		Body: &ir.ExprStmt{Expr: &ir.Ident{Name: "tick"}},
	}, fakeDialect{})

	out := e.String()
	require.Contains(t, out, "while true {\n")
	require.Contains(t, out, "    tick;\n")
}

func TestStmtRevertNamedDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.RevertNamedStmt{ErrorName: "InsufficientBalance", Args: nil}, fakeDialect{})
	require.Equal(t, "REVERT_NAMED(InsufficientBalance);\n", e.String())
}

func TestStmtEmitDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.EmitStmt{Event: "Transfer", Args: nil}, fakeDialect{})
	require.Equal(t, "EMIT(Transfer);\n", e.String())
}

func TestStmtArrayElementAssignReadsMutatesAndWritesBackThroughLocal(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	arrType := ir.Array(ir.Uint(256))
	e.Stmt(&ir.ExprStmt{Expr: &ir.AssignExpr{
		Op:     "=",
		Target: &ir.CollectionIndex{Base: &ir.Ident{Name: "scores", IsStorage: true, StorageType: arrType}, Keys: []ir.Expression{&ir.Ident{Name: "i"}}},
		Value:  &ir.NumberLit{Text: "9"},
	}}, fakeDialect{})

	out := e.String()
	require.Contains(t, out, "let mut __scores_elem = STORAGE[scores];")
	require.Contains(t, out, "__scores_elem[i] = 9;")
	require.Contains(t, out, "scores <- __scores_elem;")
}

func TestStmtArrayElementCompoundAssignExpandsBeforeWriteBack(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	arrType := ir.Array(ir.Uint(256))
	e.Stmt(&ir.ExprStmt{Expr: &ir.AssignExpr{
		Op:     "+=",
		Target: &ir.CollectionIndex{Base: &ir.Ident{Name: "scores", IsStorage: true, StorageType: arrType}, Keys: []ir.Expression{&ir.Ident{Name: "i"}}},
		Value:  &ir.NumberLit{Text: "1"},
	}}, fakeDialect{})

	out := e.String()
	require.Contains(t, out, "STORAGE[scores][i] + 1", "the compound rhs reads the pre-mutation value off the original storage array access")
	require.Contains(t, out, "scores <- __scores_elem;")
}

func TestStmtArrayPushReadsMutatesAndWritesBackThroughLocal(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	arrType := ir.Array(ir.Uint(256))
	e.Stmt(&ir.ExprStmt{Expr: &ir.FunctionCallExpr{
		Callee: &ir.MemberAccess{Expr: &ir.Ident{Name: "scores", IsStorage: true, StorageType: arrType}, Name: "push"},
		Args:   []ir.Expression{&ir.NumberLit{Text: "9"}},
	}}, fakeDialect{})

	out := e.String()
	require.Contains(t, out, "let mut __scores_elem = STORAGE[scores];")
	require.Contains(t, out, "__scores_elem.push(9);")
	require.Contains(t, out, "scores <- __scores_elem;")
}

func TestStmtPlainFunctionCallIsUnaffectedByArrayPushSpecialCase(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.ExprStmt{Expr: &ir.FunctionCallExpr{
		Callee: &ir.Ident{Name: "doSomething"},
		Args:   nil,
	}}, fakeDialect{})
	require.Equal(t, "doSomething();\n", e.String())
}

func TestStmtMemberCallNamedPushOnNonStorageIsUnaffectedByArrayPushSpecialCase(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.ExprStmt{Expr: &ir.FunctionCallExpr{
		Callee: &ir.MemberAccess{Expr: &ir.Ident{Name: "localVec"}, Name: "push"},
		Args:   []ir.Expression{&ir.NumberLit{Text: "1"}},
	}}, fakeDialect{})
	require.Equal(t, "localVec.push(1);\n", e.String())
}

func TestStmtPlainStorageVarAssignIsUnaffectedByArrayWriteSpecialCase(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmt(&ir.ExprStmt{Expr: &ir.AssignExpr{
		Op:     "=",
		Target: &ir.Ident{Name: "total", IsStorage: true},
		Value:  &ir.NumberLit{Text: "1"},
	}}, fakeDialect{})
	require.Equal(t, "total <- 1;\n", e.String())
}

func TestStmtUncheckedBlockRoutesWideArithmeticThroughUncheckedVariant(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	left := &ir.Ident{Name: "a"}
	left.SetHint(ir.Uint(256))
	e.Stmt(&ir.UncheckedStmt{Stmts: []ir.Stmt{
		&ir.ExprStmt{Expr: &ir.BinaryExpr{
			Op:    "+",
			Left:  left,
			Right: &ir.Ident{Name: "b"},
		}},
	}}, fakeDialect{})

	require.Equal(t, "WIDE_UNCHECKED(+,a,b);\n", e.String())
}

func TestStmtsRendersEachStatementInOrder(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	e.Stmts([]ir.Stmt{
		&ir.ExprStmt{Expr: &ir.Ident{Name: "a"}},
		&ir.ExprStmt{Expr: &ir.Ident{Name: "b"}},
	}, fakeDialect{})
	require.Equal(t, "a;\nb;\n", e.String())
}
