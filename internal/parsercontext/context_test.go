package parsercontext

import (
	"testing"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

func testPackage() *ir.Package {
	owned := &ir.ContractData{
		Name: "Owned",
		Vars: []ir.Var{{Name: "owner", Type: ir.Address()}},
	}
	token := &ir.ContractData{
		Name: "Token",
		Vars: []ir.Var{
			{Name: "owner", Type: ir.Address()}, // inherited, shadows nothing new
			{Name: "totalSupply", Type: ir.Uint(256)},
			{Name: "decimals", Type: ir.Uint(8), IsImmutable: true},
		},
		Functions: map[string]*ir.FnImplementations{
			"balanceOf": {
				Name: "balanceOf",
				Impls: []ir.FnImplementation{{
					Class: "Token",
					Func:  &ir.Func{Owner: "Token", Name: "balanceOf", Returns: []ir.Param{{Name: "", Type: ir.Uint(256)}}},
				}},
			},
		},
	}
	return &ir.Package{
		Name:      "pkg",
		Contracts: []*ir.ContractData{owned, token},
		Errors:    []ir.Error{{Name: "InsufficientBalance", Message: "insufficient balance", Code: 1}},
	}
}

func TestGlobalContextTypeFromString(t *testing.T) {
	t.Parallel()

	g := NewGlobalContext(testPackage())

	res, ok := g.TypeFromString("Token")
	require.True(t, ok)
	require.Equal(t, ItemContract, res.Kind)

	_, ok = g.TypeFromString("NoSuchThing")
	require.False(t, ok)
}

func TestGlobalContextErrorInterning(t *testing.T) {
	t.Parallel()

	g := NewGlobalContext(testPackage())
	require.Equal(t, 1, g.ErrorCount())

	code, ok := g.GetError("insufficient balance")
	require.True(t, ok)
	require.Equal(t, 1, code)

	// Interning the same message twice must not allocate a new code.
	first := g.InsertError("not authorized")
	second := g.InsertError("not authorized")
	require.Equal(t, first, second)
	require.Equal(t, 2, g.ErrorCount())
}

func TestContractContextStorageExcludesImmutables(t *testing.T) {
	t.Parallel()

	pkg := testPackage()
	g := NewGlobalContext(pkg)
	c := NewContractContext(g, pkg.FindContract("Token"))

	_, ok := c.LookupStorageVar("decimals")
	require.False(t, ok, "immutable vars are not mutable storage")

	v, ok := c.LookupStorageVar("totalSupply")
	require.True(t, ok)
	require.True(t, v.Type.Equal(ir.Uint(256)))
}

func TestContractContextTypeFromStringChecksStorageFirst(t *testing.T) {
	t.Parallel()

	pkg := testPackage()
	g := NewGlobalContext(pkg)
	c := NewContractContext(g, pkg.FindContract("Token"))

	res, ok := c.TypeFromString("totalSupply")
	require.True(t, ok)
	require.Equal(t, ItemStorage, res.Kind)

	res, ok = c.TypeFromString("Owned")
	require.True(t, ok)
	require.Equal(t, ItemContract, res.Kind, "falls through to the global scope")
}

func TestContractContextRegistersExternalCallsAndEvents(t *testing.T) {
	t.Parallel()

	pkg := testPackage()
	c := NewContractContext(NewGlobalContext(pkg), pkg.FindContract("Token"))

	c.RegisterExternalCall("IERC20.transfer")
	c.RegisterEmittedEvent("Transfer")

	require.ElementsMatch(t, []string{"IERC20.transfer"}, c.ExternalCalls())
	require.ElementsMatch(t, []string{"Transfer"}, c.EmittedEvents())
}

func TestLocalContextLocalShadowsStorage(t *testing.T) {
	t.Parallel()

	pkg := testPackage()
	cc := NewContractContext(NewGlobalContext(pkg), pkg.FindContract("Token"))
	l := NewLocalContext(cc)

	l.RegisterLocalVar(ir.Var{Name: "totalSupply", Type: ir.Uint(8)})

	v, ok := l.LookupVar("totalSupply")
	require.True(t, ok)
	require.True(t, v.Type.Equal(ir.Uint(8)), "most recently registered local wins over storage")
}

func TestLocalContextContextualExprStack(t *testing.T) {
	t.Parallel()

	l := NewLocalContext(NewContractContext(NewGlobalContext(testPackage()), testPackage().FindContract("Token")))

	_, ok := l.ContextualExpr()
	require.False(t, ok)

	hint := &ir.Ident{Name: "x"}
	l.PushContextualExpr(hint)
	got, ok := l.ContextualExpr()
	require.True(t, ok)
	require.Same(t, hint, got)

	l.DropContextualExpr()
	_, ok = l.ContextualExpr()
	require.False(t, ok)
}

func TestLocalContextLookupFuncReturn(t *testing.T) {
	t.Parallel()

	pkg := testPackage()
	l := NewLocalContext(NewContractContext(NewGlobalContext(pkg), pkg.FindContract("Token")))

	rets, ok := l.LookupFuncReturn("balanceOf")
	require.True(t, ok)
	require.Len(t, rets, 1)
	require.True(t, rets[0].Type.Equal(ir.Uint(256)))
}
