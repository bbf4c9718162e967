package wasmmodule

import (
	"testing"

	"github.com/odradev/nysa-go/internal/codegen"
	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

func TestStorageMapRefAppliesValueTypeDefaultOnMiss(t *testing.T) {
	t.Parallel()
	d := dialect{}
	got := d.StorageMapRef("balances", "addr", ir.Uint(256))
	require.Equal(t, "balances.get(&addr).unwrap_or_else(|| U256::ZERO)", got)
}

func TestStorageMapAssignSetsKeyedEntry(t *testing.T) {
	t.Parallel()
	d := dialect{}
	got := d.StorageMapAssign("balances", "addr", "amt")
	require.Equal(t, "balances.set(&addr, amt)", got)
}

func TestCastNarrowTargetUsesAsConversion(t *testing.T) {
	t.Parallel()
	d := dialect{}
	require.Equal(t, "x as u8", d.Cast("x", ir.Uint(8)))
}

func TestCastWideTargetUsesFromConstructor(t *testing.T) {
	t.Parallel()
	d := dialect{}
	require.Equal(t, "U256::from(x)", d.Cast("x", ir.Uint(256)))
}

func TestWideOpUncheckedUsesWrappingMethod(t *testing.T) {
	t.Parallel()
	d := dialect{}
	require.Equal(t, "a.wrapping_add(b)", d.WideOpUnchecked("+", "a", "b", 256))
}

func TestAuthRequireDeclinesInFavorOfAddressComparison(t *testing.T) {
	t.Parallel()
	d := dialect{}
	rendered, ok := d.AuthRequire()
	require.False(t, ok)
	require.Empty(t, rendered)
}

func TestMsgSenderOwnerCheckRendersAsPlainRequire(t *testing.T) {
	t.Parallel()

	e := codegen.NewEmitter(&ir.Package{})
	got := e.Expr(&ir.RequireExpr{
		Condition: &ir.BinaryExpr{Op: "==", Left: &ir.MsgExpr{Property: "sender"}, Right: &ir.Ident{Name: "owner", IsStorage: true, StorageType: ir.Address()}},
		ErrorCode: 1,
	}, dialect{})
	require.Equal(t, "if !(self.env().caller() == owner.get().unwrap_or(None)) { self.env().revert(Error::from(1)) }", got)
}

func TestNestedMappingWriteComposesTupleKey(t *testing.T) {
	t.Parallel()

	nested := ir.Mapping(ir.Address(), ir.Mapping(ir.Address(), ir.Uint(256)))
	e := codegen.NewEmitter(&ir.Package{})
	got := e.Expr(&ir.AssignExpr{
		Op: "=",
		Target: &ir.CollectionIndex{
			Base: &ir.Ident{Name: "balances", IsStorage: true, StorageType: nested},
			Keys: []ir.Expression{&ir.Ident{Name: "holder"}, &ir.Ident{Name: "token"}},
		},
		Value: &ir.Ident{Name: "amt"},
	}, dialect{})
	require.Equal(t, "balances.set(&(holder, token), amt)", got)
}
