package codegen

import (
	"testing"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

// fakeDialect is a minimal Dialect used to pin down exactly what the shared
// expression walker delegates versus what it renders itself.
type fakeDialect struct{}

func (fakeDialect) StorageRef(name string, t ir.Type) string { return "STORAGE[" + name + "]" }
func (fakeDialect) StorageAssign(name, value string) string {
	return name + " <- " + value
}
func (fakeDialect) StorageMapRef(name, keyExpr string, valueType ir.Type) string {
	return "MAP_GET(" + name + "," + keyExpr + ")"
}
func (fakeDialect) StorageMapAssign(name, keyExpr, value string) string {
	return "MAP_SET(" + name + "," + keyExpr + "," + value + ")"
}
func (fakeDialect) MsgSender() string   { return "CALLER" }
func (fakeDialect) ZeroAddress() string            { return "ZERO" }
func (fakeDialect) AddressLiteral(hex string) string { return "ADDR(" + hex + ")" }
func (fakeDialect) WideOp(op, left, right string, bits int) string {
	return "WIDE(" + op + "," + left + "," + right + ")"
}
func (fakeDialect) Require(cond string, code int) string {
	return "REQUIRE(" + cond + ")"
}
func (fakeDialect) RevertBare(code int) string { return "REVERT" }
func (fakeDialect) RevertNamed(name string, args []string) string {
	return "REVERT_NAMED(" + name + ")"
}
func (fakeDialect) EmitEvent(name string, args []string) string { return "EMIT(" + name + ")" }
func (fakeDialect) ExternalCall(receiver, method string, args []string) string {
	return receiver + ".X(" + method + ")"
}
func (fakeDialect) Keccak256(args []string) string { return "KECCAK" }
func (fakeDialect) Cast(expr string, t ir.Type) string {
	return "CAST(" + expr + "," + t.String() + ")"
}
func (fakeDialect) LowerType(t ir.Type) string { return "TY(" + t.String() + ")" }
func (fakeDialect) AuthRequire() (string, bool) { return "", false }
func (fakeDialect) WideOpUnchecked(op, left, right string, bits int) string {
	return "WIDE_UNCHECKED(" + op + "," + left + "," + right + ")"
}

func newPkg() *ir.Package { return &ir.Package{Name: "t"} }

func TestExprLiteralsRenderVerbatim(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	d := fakeDialect{}

	require.Equal(t, "true", e.Expr(&ir.BoolLit{Value: true}, d))
	require.Equal(t, "false", e.Expr(&ir.BoolLit{Value: false}, d))
	require.Equal(t, "42", e.Expr(&ir.NumberLit{Text: "42"}, d))
	require.Equal(t, `"hi"`, e.Expr(&ir.StringLit{Value: "hi"}, d))
}

func TestExprStringLiteralEscapesQuotesAndBackslashes(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.StringLit{Value: `a"b\c`}, fakeDialect{})
	require.Equal(t, `"a\"b\\c"`, got)
}

func TestExprAddressLitDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.AddressLit{Value: "0xAbC123"}, fakeDialect{})
	require.Equal(t, "ADDR(0xAbC123)", got)
}

func TestExprMsgSenderDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.MsgExpr{Property: "sender"}, fakeDialect{})
	require.Equal(t, "CALLER", got)
}

func TestExprMsgValueIsNotDelegated(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.MsgExpr{Property: "value"}, fakeDialect{})
	require.Equal(t, "msg.value", got)
}

func TestExprBinaryOpNarrowIsInfix(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	bits8 := ir.Uint(8)
	left := &ir.Ident{Name: "a"}
	left.SetHint(bits8)
	right := &ir.Ident{Name: "b"}

	got := e.Expr(&ir.BinaryExpr{Op: "+", Left: left, Right: right}, fakeDialect{})
	require.Equal(t, "a + b", got)
}

func TestExprBinaryOpWideDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	bits256 := ir.Uint(256)
	left := &ir.Ident{Name: "a"}
	left.SetHint(bits256)
	right := &ir.Ident{Name: "b"}

	got := e.Expr(&ir.BinaryExpr{Op: "+", Left: left, Right: right}, fakeDialect{})
	require.Equal(t, "WIDE(+,a,b)", got)
}

func TestExprAssignPlainOpUsesStorageAssign(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.AssignExpr{Op: "=", Target: &ir.Ident{Name: "x", IsStorage: true}, Value: &ir.NumberLit{Text: "1"}}, fakeDialect{})
	require.Equal(t, "x <- 1", got)
}

func TestExprAssignCompoundOpExpandsToBinaryBeforeDelegating(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.AssignExpr{Op: "+=", Target: &ir.Ident{Name: "x", IsStorage: true}, Value: &ir.NumberLit{Text: "1"}}, fakeDialect{})
	require.Equal(t, "x <- STORAGE[x] + 1", got)
}

func TestExprAssignLocalTargetUsesPlainEquals(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.AssignExpr{Op: "=", Target: &ir.Ident{Name: "x"}, Value: &ir.NumberLit{Text: "1"}}, fakeDialect{})
	require.Equal(t, "x = 1", got)
}

func TestExprAssignLocalCompoundOpExpandsToBinary(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.AssignExpr{Op: "+=", Target: &ir.Ident{Name: "x"}, Value: &ir.NumberLit{Text: "1"}}, fakeDialect{})
	require.Equal(t, "x = x + 1", got)
}

func TestExprIdentReadDistinguishesStorageFromLocal(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	require.Equal(t, "STORAGE[balance]", e.Expr(&ir.Ident{Name: "balance", IsStorage: true}, fakeDialect{}))
	require.Equal(t, "amount", e.Expr(&ir.Ident{Name: "amount"}, fakeDialect{}))
}

func TestExprRequireDelegatesConditionAndCode(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.RequireExpr{Condition: &ir.BoolLit{Value: true}, ErrorCode: 3}, fakeDialect{})
	require.Equal(t, "REQUIRE(true)", got)
}

func TestExprSuperCallLowersToSuperPrefixedSelfCall(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.SuperCallExpr{Name: "transfer", Args: []ir.Expression{&ir.Ident{Name: "to"}}}, fakeDialect{})
	require.Equal(t, "self.super_transfer(to)", got)
}

func TestExprExternalCallDelegatesToDialect(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.ExternalCallExpr{
		Receiver: &ir.Ident{Name: "other"},
		Name:     "ping",
		Args:     nil,
	}, fakeDialect{})
	require.Equal(t, "other.X(ping)", got)
}

func TestExprCollectionIndexChainsKeys(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.CollectionIndex{
		Base: &ir.Ident{Name: "balances"},
		Keys: []ir.Expression{&ir.Ident{Name: "a"}, &ir.Ident{Name: "b"}},
	}, fakeDialect{})
	require.Equal(t, "balances[a][b]", got)
}

func TestExprCollectionIndexOnStorageMappingDelegatesToStorageMapRef(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	mapType := ir.Mapping(ir.Address(), ir.Uint(256))
	got := e.Expr(&ir.CollectionIndex{
		Base: &ir.Ident{Name: "balances", IsStorage: true, StorageType: mapType},
		Keys: []ir.Expression{&ir.Ident{Name: "addr"}},
	}, fakeDialect{})
	require.Equal(t, "MAP_GET(balances,addr)", got)
}

func TestExprCollectionIndexOnNestedStorageMappingComposesTupleKey(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	nested := ir.Mapping(ir.Address(), ir.Mapping(ir.Address(), ir.Uint(256)))
	got := e.Expr(&ir.CollectionIndex{
		Base: &ir.Ident{Name: "balances", IsStorage: true, StorageType: nested},
		Keys: []ir.Expression{&ir.Ident{Name: "a"}, &ir.Ident{Name: "b"}},
	}, fakeDialect{})
	require.Equal(t, "MAP_GET(balances,(a, b))", got)
}

func TestExprAssignOnStorageMappingDelegatesToStorageMapAssign(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	mapType := ir.Mapping(ir.Address(), ir.Uint(256))
	got := e.Expr(&ir.AssignExpr{
		Op: "=",
		Target: &ir.CollectionIndex{
			Base: &ir.Ident{Name: "balances", IsStorage: true, StorageType: mapType},
			Keys: []ir.Expression{&ir.Ident{Name: "addr"}},
		},
		Value: &ir.NumberLit{Text: "100"},
	}, fakeDialect{})
	require.Equal(t, "MAP_SET(balances,addr,100)", got)
}

func TestExprEnumMemberRendersDoubleColonVariant(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.EnumMemberExpr{Enum: "Status", Variant: "Active"}, fakeDialect{})
	require.Equal(t, "Status::Active", got)
}

func TestExprLibraryFuncRefRendersDoubleColonPath(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.LibraryFuncRef{Library: "SafeMath", Func: "add"}, fakeDialect{})
	require.Equal(t, "SafeMath::add", got)
}

func TestExprFunctionCallOnLibraryFuncRefRendersQualifiedCall(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.FunctionCallExpr{
		Callee: &ir.LibraryFuncRef{Library: "SafeMath", Func: "add"},
		Args:   []ir.Expression{&ir.Ident{Name: "a"}, &ir.Ident{Name: "b"}},
	}, fakeDialect{})
	require.Equal(t, "SafeMath::add(a, b)", got)
}

func TestExprMemberAccessLengthPropertyWidensToLenInto(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.MemberAccess{Expr: &ir.Ident{Name: "items"}, Name: "length"}, fakeDialect{})
	require.Equal(t, "items.len().into()", got)
}

func TestExprFunctionCallOnTypeExpressionRendersAsCast(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.FunctionCallExpr{
		Callee: &ir.TypeExpr{Type: ir.Uint(8)},
		Args:   []ir.Expression{&ir.Ident{Name: "x"}},
	}, fakeDialect{})
	require.Equal(t, "CAST(x,uint8)", got)
}

func TestExprMemberAccessPlainFieldIsDotAccess(t *testing.T) {
	t.Parallel()

	e := NewEmitter(newPkg())
	got := e.Expr(&ir.MemberAccess{Expr: &ir.Ident{Name: "token"}, Name: "owner"}, fakeDialect{})
	require.Equal(t, "token.owner", got)
}
