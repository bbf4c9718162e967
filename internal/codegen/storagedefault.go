package codegen

import "github.com/odradev/nysa-go/internal/ir"

// WideZeroFn renders a backend's total-zero constructor for a wide integer
// type (the one case with no library-level Default impl), given the type's
// bit width.
type WideZeroFn func(bits int) string

// ApplyDefaultOnMiss wraps getExpr — a backend's raw "read this storage
// slot, which may be unset" expression — with the zero-value fallback
// Solidity's unset-storage-slot semantics require for t. This mirrors spec
// §4.4.1's per-value-type table exactly, which the spec calls "the single
// most behavior-sensitive contract in the generator":
//
//   - Address, or Custom resolving to a contract/interface -> unwrap_or(None)
//     (contract/interface-typed vars are already normalized to Address by
//     ir.Builder.resolveType, so only the Address case is reachable here)
//   - Custom resolving to an enum -> get_or_default() (enum has Default)
//   - Bool, numeric (narrow), string -> get_or_default()
//   - Array -> get_or_default()[index] (the indexing itself is rendered by
//     the CollectionIndex case, not here)
//   - Wide integer (e.g. U256) -> default built via wideZero, since the
//     type has no trait-level Default
//   - Anything else (e.g. a struct-typed slot) -> unwrap_or_revert()
func ApplyDefaultOnMiss(getExpr string, t ir.Type, wideZero WideZeroFn) string {
	switch {
	case t.Kind == ir.TypeAddress:
		return getExpr + ".unwrap_or(None)"
	case t.Kind == ir.TypeCustom && t.IsEnum:
		return getExpr + ".get_or_default()"
	case t.Kind == ir.TypeBool, t.Kind == ir.TypeString:
		return getExpr + ".get_or_default()"
	case t.IsNumeric() && t.IsWide():
		return getExpr + ".unwrap_or_else(|| " + wideZero(t.Bits) + ")"
	case t.IsNumeric():
		return getExpr + ".get_or_default()"
	case t.Kind == ir.TypeArray:
		return getExpr + ".get_or_default()"
	default:
		return getExpr + ".unwrap_or_revert()"
	}
}
