package wasmmodule

import (
	"testing"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

func singleClassPackage() *ir.Package {
	owner := &ir.ContractData{
		Name:       "Owned",
		ClassIdent: "Owned",
		Path:       []string{"Owned"},
		Vars:       []ir.Var{{Name: "owner", Type: ir.Address()}},
		Functions: map[string]*ir.FnImplementations{
			"transferOwnership": {
				Name: "transferOwnership",
				Kind: ir.FnKindFunction,
				Impls: []ir.FnImplementation{{
					Class: "Owned",
					Func: &ir.Func{
						Owner:  "Owned",
						Name:   "transferOwnership",
						Params: []ir.Param{{Name: "newOwner", Type: ir.Address()}},
						Stmts: []ir.Stmt{
							&ir.ExprStmt{Expr: &ir.AssignExpr{
								Op:     "=",
								Target: &ir.Ident{Name: "owner", IsStorage: true, StorageType: ir.Address()},
								Value:  &ir.Ident{Name: "newOwner"},
							}},
						},
					},
				}},
			},
		},
	}
	return &ir.Package{
		Name:      "t",
		Contracts: []*ir.ContractData{owner},
		Errors:    []ir.Error{{Name: "NotAuthorized", Code: 1}},
	}
}

func TestGenerateEmitsSpecLayoutSections(t *testing.T) {
	t.Parallel()

	b := New()
	out, err := b.Generate(singleClassPackage())
	require.NoError(t, err)

	require.Contains(t, out, "pub mod errors {")
	require.Contains(t, out, "pub mod events {")
	require.Contains(t, out, "pub mod enums {")
	require.Contains(t, out, "pub mod structs {")
	require.Contains(t, out, "pub mod owned {")
	require.Contains(t, out, "use super::{errors::*, events::*, enums::*, structs::*};")
	require.Contains(t, out, "struct Owned {")
	require.Contains(t, out, "owner: Storage<Address>,")
	require.Contains(t, out, "impl Owned {")
}

func TestGenerateSingleClassSkipsPathStackShim(t *testing.T) {
	t.Parallel()

	b := New()
	out, err := b.Generate(singleClassPackage())
	require.NoError(t, err)

	require.NotContains(t, out, "enum ClassName")
	require.NotContains(t, out, "PathStack")
	require.Contains(t, out, "pub fn transferOwnership(newOwner: Address) {")
	require.Contains(t, out, "owner.set(newOwner)")
}

func TestGenerateMultiClassEmitsDispatchShim(t *testing.T) {
	t.Parallel()

	owned := &ir.ContractData{Name: "Owned", ClassIdent: "Owned", Path: []string{"Owned"}}
	token := &ir.ContractData{
		Name:       "Token",
		ClassIdent: "Token",
		Path:       []string{"Token", "Owned"},
		Functions: map[string]*ir.FnImplementations{
			"transferOwnership": {
				Name: "transferOwnership",
				Kind: ir.FnKindFunction,
				Impls: []ir.FnImplementation{{
					Class: "Owned",
					Func: &ir.Func{
						Owner: "Owned", Name: "transferOwnership",
						Params: []ir.Param{{Name: "newOwner", Type: ir.Address()}},
					},
				}},
			},
		},
	}
	pkg := &ir.Package{Contracts: []*ir.ContractData{owned, token}}

	b := New()
	out, err := b.Generate(pkg)
	require.NoError(t, err)
	require.Contains(t, out, "enum ClassNameToken {")
	require.Contains(t, out, "fn super_transferOwnership(newOwner: Address) {")
}

func TestGenerateOrdersContractsAlphabetically(t *testing.T) {
	t.Parallel()

	zeta := &ir.ContractData{Name: "Zeta", ClassIdent: "Zeta", Path: []string{"Zeta"}}
	alpha := &ir.ContractData{Name: "Alpha", ClassIdent: "Alpha", Path: []string{"Alpha"}}
	pkg := &ir.Package{Contracts: []*ir.ContractData{zeta, alpha}}

	b := New()
	out, err := b.Generate(pkg)
	require.NoError(t, err)

	require.True(t, indexOf(out, "pub mod alpha {") < indexOf(out, "pub mod zeta {"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
