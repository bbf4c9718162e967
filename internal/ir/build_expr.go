package ir

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/odradev/nysa-go/internal/solidity"
	"github.com/odradev/nysa-go/internal/util"
)

// buildExprs lowers a slice of syntactic expressions, skipping nils (the
// parser leaves an omitted tuple slot as nil, e.g. `(, b) = f()`).
func (b *Builder) buildExprs(es []solidity.Expression) []Expression {
	if es == nil {
		return nil
	}
	out := make([]Expression, len(es))
	for i, e := range es {
		if e == nil {
			continue
		}
		out[i] = b.buildExpr(e)
	}
	return out
}

// buildOptionalExpr lowers e, returning nil for a nil input (e.g. a state
// variable with no initializer).
func (b *Builder) buildOptionalExpr(e solidity.Expression) Expression {
	if e == nil {
		return nil
	}
	return b.buildExpr(e)
}

// buildExpr lowers one syntactic Solidity expression into its IR shape.
// Structurally recursive: each case lowers its own children before
// wrapping them.
func (b *Builder) buildExpr(e solidity.Expression) Expression {
	switch v := e.(type) {
	case *solidity.BoolLiteral:
		return &BoolLit{Value: v.Value}
	case *solidity.NumberLiteral:
		return &NumberLit{Text: v.Value}
	case *solidity.StringLiteral:
		return &StringLit{Value: v.Value}
	case *solidity.HexLiteral:
		if common.IsHexAddress(v.Value) {
			return &AddressLit{Value: common.HexToAddress(v.Value).Hex()}
		}
		return &BytesLit{Value: decodeHex(v.Value)}
	case *solidity.ArrayLiteral:
		return &ArrayLit{Elements: b.buildExprs(v.Elements)}
	case *solidity.Identifier:
		return b.identFor(v.Name)
	case *solidity.TypeExpression:
		return &TypeExpr{Type: b.resolveType(v.Type)}
	case *solidity.MemberAccess:
		if id, ok := v.Expr.(*solidity.Identifier); ok {
			if b.enums[id.Name] {
				return &EnumMemberExpr{Enum: id.Name, Variant: v.Name}
			}
			if def, ok := b.contracts[id.Name]; ok && util.IsLibrary(def) {
				return &LibraryFuncRef{Library: id.Name, Func: v.Name}
			}
		}
		return &MemberAccess{Expr: b.buildExpr(v.Expr), Name: v.Name}
	case *solidity.IndexAccess:
		return &CollectionIndex{Base: b.buildExpr(v.Base), Keys: b.buildExprs(v.Keys)}
	case *solidity.FunctionCall:
		return &FunctionCallExpr{Callee: b.buildExpr(v.Callee), Args: b.buildExprs(v.Args)}
	case *solidity.SuperCall:
		return &SuperCallExpr{Name: v.Name, Args: b.buildExprs(v.Args)}
	case *solidity.ExternalCall:
		return &ExternalCallExpr{Receiver: b.buildExpr(v.Receiver), Name: v.Name, Args: b.buildExprs(v.Args)}
	case *solidity.TypeInfoExpression:
		return &TypeInfoExpr{Type: b.resolveType(v.Type), Property: v.Property}
	case *solidity.UnaryOp:
		return &UnaryExpr{Op: v.Op, Operand: b.buildExpr(v.Operand), Prefix: v.Prefix}
	case *solidity.BinaryOp:
		return &BinaryExpr{Op: v.Op, Left: b.buildExpr(v.Left), Right: b.buildExpr(v.Right)}
	case *solidity.Assignment:
		return &AssignExpr{Op: v.Op, Target: b.buildExpr(v.Target), Value: b.buildExpr(v.Value)}
	case *solidity.IncDecExpression:
		return &IncDecExpr{Op: v.Op, Operand: b.buildExpr(v.Operand), Prefix: v.Prefix}
	case *solidity.TupleExpression:
		return &TupleExpr{Elements: b.buildExprs(v.Elements)}
	case *solidity.RequireExpression:
		// ErrorCode is backfilled by AssignErrorCodes once the whole package
		// is built and every message has been seen.
		return &RequireExpr{Condition: b.buildExpr(v.Condition), Message: v.Message}
	case *solidity.ZeroAddressExpression:
		return &ZeroAddressExpr{}
	case *solidity.MsgExpression:
		return &MsgExpr{Property: v.Property}
	case *solidity.Keccak256Expression:
		return &Keccak256Expr{Args: b.buildExprs(v.Args)}
	case *solidity.AbiEncodePackedExpression:
		return &AbiEncodePackedExpr{Args: b.buildExprs(v.Args)}
	default:
		// Unreachable for a conforming parser front-end; surfaced as an
		// unresolved identifier rather than panicking, so a partially
		// unsupported syntax tree still lowers far enough to report other
		// diagnostics in the same pass.
		return &Ident{Name: "<unsupported>"}
	}
}

func decodeHex(s string) []byte {
	clean := s
	if len(clean) >= 2 && clean[0] == '0' && (clean[1] == 'x' || clean[1] == 'X') {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		clean = "0" + clean
	}
	out := make([]byte, len(clean)/2)
	for i := range out {
		hi := hexDigit(clean[2*i])
		lo := hexDigit(clean[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
