package codegen

import "github.com/odradev/nysa-go/internal/ir"

// Dialect is the handful of target-specific rendering rules the shared
// expression/statement walk can't decide on its own: how a backend spells
// "caller address", how it reaches storage, how it threads its runtime
// handle through a wide-integer op. Both concrete backends supply one.
type Dialect interface {
	// StorageRef renders a read of state variable name declared with type
	// t, applying the target's zero-value default-on-miss policy for t
	// (spec §4.4.1 — the single most behavior-sensitive contract in the
	// generator, mirroring Solidity's unset-storage-slot semantics).
	StorageRef(name string, t ir.Type) string
	// StorageAssign renders `name = value`.
	StorageAssign(name, value string) string
	// StorageMapRef renders a keyed read of mapping name at composite key
	// keyExpr, applying the §4.4.1 default-on-miss policy for the mapping's
	// value type valueType (the table is indexed by the value being read,
	// not by the Mapping kind itself).
	StorageMapRef(name, keyExpr string, valueType ir.Type) string
	// StorageMapAssign renders `name.set(&keyExpr, value)`.
	StorageMapAssign(name, keyExpr, value string) string
	// MsgSender renders the caller-address expression.
	MsgSender() string
	// ZeroAddress renders the target's zero-address literal.
	ZeroAddress() string
	// AddressLiteral renders a fixed, non-zero address constant given its
	// EIP-55 checksummed hex form.
	AddressLiteral(hex string) string
	// WideOp renders a binary operation on a type wider than a native
	// 64-bit word as a method call instead of an infix operator.
	WideOp(op, left, right string, bits int) string
	// Require renders a require(cond, code) site as a target conditional
	// revert.
	Require(cond string, code int) string
	// RevertBare renders a bare `revert(code)`.
	RevertBare(code int) string
	// RevertNamed renders `revert CustomError(args...)`.
	RevertNamed(name string, args []string) string
	// EmitEvent renders an event emission.
	EmitEvent(name string, args []string) string
	// ExternalCall renders `receiver.method(args...)` against another
	// contract.
	ExternalCall(receiver, method string, args []string) string
	// Keccak256 renders a keccak256(...) call over pre-rendered arguments.
	Keccak256(args []string) string
	// Cast renders a Solidity type-expression call `T(expr)` (spec §4.4
	// "Function call": "type expression → cast") as the target's explicit
	// numeric conversion to t.
	Cast(expr string, t ir.Type) string
	// LowerType renders t as a target-language type reference — the
	// per-backend divergence spec §9 calls out explicitly. Every function
	// signature, storage-field declaration, and cast target goes through
	// this rather than ir.Type.String(), which spells Solidity-syntax type
	// names (`uint256`, `mapping(K => V)`) that are not valid target
	// source.
	LowerType(t ir.Type) string
	// AuthRequire renders a recognized `msg.sender == <owner>` guard (spec
	// §8 scenario 1) as the backend's native auth-capable primitive. ok is
	// false for a backend with no such primitive, leaving the caller to
	// fall back to the plain boolean-comparison Require rendering.
	AuthRequire() (rendered string, ok bool)
	// WideOpUnchecked renders a wide-integer binary op the same way WideOp
	// does, but with the backend's non-panicking arithmetic primitive —
	// used inside an `unchecked { ... }` block, where overflow must wrap
	// rather than revert.
	WideOpUnchecked(op, left, right string, bits int) string
}

// uncheckedDialect wraps a Dialect so WideOp delegates to WideOpUnchecked,
// the rendering every statement inside an `unchecked { ... }` block needs
// (spec's supplemented "unchecked blocks" feature): a pass-through marker
// that swaps the arithmetic primitive without touching anything else about
// how its statements render.
type uncheckedDialect struct{ Dialect }

func (u uncheckedDialect) WideOp(op, left, right string, bits int) string {
	return u.Dialect.WideOpUnchecked(op, left, right, bits)
}

// exprWalker recursively lowers an ir.Expression to target text using one
// Dialect. It is deliberately unexported: backends call Emitter.Expr, which
// wires the walker to the Emitter's buffer.
type exprWalker struct {
	d Dialect
}

// Expr renders e as a single target-language expression fragment.
func (e *Emitter) Expr(x ir.Expression, d Dialect) string {
	w := exprWalker{d: d}
	return w.walk(x)
}

func (w exprWalker) walk(x ir.Expression) string {
	switch v := x.(type) {
	case *ir.BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case *ir.NumberLit:
		return v.Text
	case *ir.StringLit:
		return quoteString(v.Value)
	case *ir.BytesLit:
		return bytesLiteral(v.Value)
	case *ir.AddressLit:
		return w.d.AddressLiteral(v.Value)
	case *ir.ArrayLit:
		return "[" + w.joinArgs(v.Elements) + "]"
	case *ir.Ident:
		if v.IsStorage {
			return w.d.StorageRef(v.Name, v.StorageType)
		}
		return v.Name
	case *ir.TypeExpr:
		return w.d.LowerType(v.Type)
	case *ir.EnumMemberExpr:
		return v.Enum + "::" + v.Variant
	case *ir.LibraryFuncRef:
		return v.Library + "::" + v.Func
	case *ir.MemberAccess:
		if v.Name == "length" {
			return w.walk(v.Expr) + ".len().into()"
		}
		return w.walk(v.Expr) + "." + v.Name
	case *ir.CollectionIndex:
		if ident, ok := mappingBase(v.Base); ok {
			return w.d.StorageMapRef(ident.Name, w.compositeKey(v.Keys), mapValueType(ident.StorageType, len(v.Keys)))
		}
		base := w.walk(v.Base)
		for _, k := range v.Keys {
			base += "[" + w.walk(k) + "]"
		}
		return base
	case *ir.FunctionCallExpr:
		if te, ok := v.Callee.(*ir.TypeExpr); ok && len(v.Args) == 1 {
			return w.d.Cast(w.walk(v.Args[0]), te.Type)
		}
		return w.walk(v.Callee) + "(" + w.joinArgs(v.Args) + ")"
	case *ir.SuperCallExpr:
		return "self." + "super_" + v.Name + "(" + w.joinArgs(v.Args) + ")"
	case *ir.ExternalCallExpr:
		return w.d.ExternalCall(w.walk(v.Receiver), v.Name, w.args(v.Args))
	case *ir.TypeInfoExpr:
		return w.d.LowerType(v.Type) + "::" + v.Property
	case *ir.UnaryExpr:
		if v.Prefix {
			return v.Op + w.walk(v.Operand)
		}
		return w.walk(v.Operand) + v.Op
	case *ir.BinaryExpr:
		left, right := w.walk(v.Left), w.walk(v.Right)
		if bits := wideBitsOf(v.Left, v.Right); bits > 0 {
			return w.d.WideOp(v.Op, left, right, bits)
		}
		return left + " " + v.Op + " " + right
	case *ir.AssignExpr:
		rhs := w.assignRHS(v)
		switch target := v.Target.(type) {
		case *ir.Ident:
			if target.IsStorage {
				return w.d.StorageAssign(target.Name, rhs)
			}
		case *ir.CollectionIndex:
			if ident, ok := mappingBase(target.Base); ok {
				return w.d.StorageMapAssign(ident.Name, w.compositeKey(target.Keys), rhs)
			}
		}
		return w.walk(v.Target) + " = " + rhs
	case *ir.IncDecExpr:
		if v.Prefix {
			return v.Op + w.walk(v.Operand)
		}
		return w.walk(v.Operand) + v.Op
	case *ir.TupleExpr:
		return "(" + w.joinArgs(v.Elements) + ")"
	case *ir.RequireExpr:
		if isMsgSenderEqualityCheck(v.Condition) {
			if rendered, ok := w.d.AuthRequire(); ok {
				return rendered
			}
		}
		return w.d.Require(w.walk(v.Condition), v.ErrorCode)
	case *ir.ZeroAddressExpr:
		return w.d.ZeroAddress()
	case *ir.MsgExpr:
		if v.Property == "sender" {
			return w.d.MsgSender()
		}
		return "msg." + v.Property
	case *ir.StatementExpr:
		return "{ ... }" // only reachable inside expression-position blocks; rendered by the statement walker instead
	case *ir.InitializerExpr:
		return w.d.LowerType(v.Type) + "::default()"
	case *ir.Keccak256Expr:
		return w.d.Keccak256(w.args(v.Args))
	case *ir.AbiEncodePackedExpr:
		return "abi_encode_packed(" + w.joinArgs(v.Args) + ")"
	default:
		return "/* unsupported expression */"
	}
}

// assignRHS renders a compound assignment's effective value: plain `=`
// keeps the value as-is, `+=`/... expand to `target op value` so WideOp
// dialects see the full binary operation rather than a bare compound token.
func (w exprWalker) assignRHS(v *ir.AssignExpr) string {
	if v.Op == "=" {
		return w.walk(v.Value)
	}
	op := v.Op[:len(v.Op)-1] // "+=" -> "+"
	bin := &ir.BinaryExpr{Op: op, Left: v.Target, Right: v.Value}
	return w.walk(bin)
}

func (w exprWalker) args(es []ir.Expression) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = w.walk(e)
	}
	return out
}

func (w exprWalker) joinArgs(es []ir.Expression) string {
	parts := w.args(es)
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s
}

// isMsgSenderEqualityCheck reports whether cond is the `msg.sender == owner`
// shape (either operand order) that spec §8 scenario 1 singles out for
// lowering to a backend's auth-capable primitive instead of a plain address
// comparison.
func isMsgSenderEqualityCheck(cond ir.Expression) bool {
	bin, ok := cond.(*ir.BinaryExpr)
	if !ok || bin.Op != "==" {
		return false
	}
	return isMsgSender(bin.Left) || isMsgSender(bin.Right)
}

func isMsgSender(x ir.Expression) bool {
	m, ok := x.(*ir.MsgExpr)
	return ok && m.Property == "sender"
}

// mappingBase reports whether base is a storage identifier declared as a
// mapping, the one CollectionIndex shape that must route through the
// keyed StorageMapRef/StorageMapAssign pair instead of a plain index.
func mappingBase(base ir.Expression) (*ir.Ident, bool) {
	ident, ok := base.(*ir.Ident)
	if !ok || !ident.IsStorage || ident.StorageType.Kind != ir.TypeMapping {
		return nil, false
	}
	return ident, true
}

// mapValueType drills through depth levels of Mapping.Value, the shape a
// chained access m[a][b] produces after the parser flattens it into one
// CollectionIndex with two Keys (internal/solidity.IndexAccess).
func mapValueType(t ir.Type, depth int) ir.Type {
	cur := t
	for i := 0; i < depth && cur.Value != nil; i++ {
		cur = *cur.Value
	}
	return cur
}

// compositeKey renders a mapping access's key list as a single composite
// key: one bare key for a plain m[k], a tuple for chained m[a][b] (spec's
// "hash/compose the tuple" option for nested mappings).
func (w exprWalker) compositeKey(keys []ir.Expression) string {
	parts := w.args(keys)
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + joinStrings(parts) + ")"
}

// wideBitsOf reports the operand width to use for a binary op's dialect
// dispatch, 0 if neither side carries a wide-integer hint.
func wideBitsOf(l, r ir.Expression) int {
	for _, e := range []ir.Expression{l, r} {
		if h := e.Hint(); h != nil && h.IsWide() {
			return h.Bits
		}
	}
	return 0
}

func quoteString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	out = append(out, '"')
	return string(out)
}

func bytesLiteral(b []byte) string {
	s := "["
	for i, c := range b {
		if i > 0 {
			s += ", "
		}
		s += hexByte(c)
	}
	return s + "]"
}

func hexByte(c byte) string {
	const hex = "0123456789abcdef"
	return "0x" + string([]byte{hex[c>>4], hex[c&0xf]})
}
