package ir

// TypeResolver is the minimal read-only view into a parser context that the
// expression-type evaluator needs. parsercontext.LocalContext implements it;
// keeping the interface here (rather than importing parsercontext) avoids a
// package cycle between ir and parsercontext.
type TypeResolver interface {
	LookupVar(name string) (Var, bool)
	LookupStruct(name string) (*Struct, bool)
	LookupEnum(name string) (*Enum, bool)
	LookupFuncReturn(name string) ([]Param, bool)
	LookupMember(ownerType Type, member string) (Type, bool)
}

// EvalExpressionType infers the type of an expression using variable
// lookup, struct/enum member access, function return types, and literal
// widths. It returns Unknown when inference fails; callers must
// treat that as "no hint available", never as an error.
func EvalExpressionType(e Expression, ctx TypeResolver) Type {
	if e == nil {
		return Unknown()
	}
	if h := e.Hint(); h != nil {
		return *h
	}
	switch v := e.(type) {
	case *BoolLit:
		return Bool()
	case *NumberLit:
		return Uint(256) // narrowest-fit widening happens at the codegen layer via context stack
	case *StringLit:
		return Str()
	case *BytesLit:
		return Bytes(len(v.Value))
	case *AddressLit:
		return Address()
	case *Ident:
		if vr, ok := ctx.LookupVar(v.Name); ok {
			return vr.Type
		}
		return Unknown()
	case *TypeExpr:
		return v.Type
	case *ZeroAddressExpr:
		return Address()
	case *MsgExpr:
		if v.Property == "sender" {
			return Address()
		}
		return Uint(256)
	case *EnumMemberExpr:
		return Custom(v.Enum)
	case *LibraryFuncRef:
		return Unknown()
	case *MemberAccess:
		ownerType := EvalExpressionType(v.Expr, ctx)
		if ownerType.Kind == TypeCustom {
			if en, ok := ctx.LookupEnum(ownerType.Name); ok {
				for _, variant := range en.Variants {
					if variant == v.Name {
						return Custom(en.Name)
					}
				}
			}
			if st, ok := ctx.LookupStruct(ownerType.Name); ok {
				for _, f := range st.Fields {
					if f.Name == v.Name {
						return f.Type
					}
				}
			}
		}
		if v.Name == "length" || v.Name == "len" {
			return Uint(256)
		}
		if t, ok := ctx.LookupMember(ownerType, v.Name); ok {
			return t
		}
		return Unknown()
	case *CollectionIndex:
		baseType := EvalExpressionType(v.Base, ctx)
		t := baseType
		for range v.Keys {
			switch t.Kind {
			case TypeMapping:
				t = *t.Value
			case TypeArray:
				t = *t.Elem
			default:
				return Unknown()
			}
		}
		return t
	case *FunctionCallExpr:
		if id, ok := v.Callee.(*Ident); ok {
			if rets, ok := ctx.LookupFuncReturn(id.Name); ok && len(rets) == 1 {
				return rets[0].Type
			}
		}
		return Unknown()
	case *ExternalCallExpr:
		if rets, ok := ctx.LookupFuncReturn(v.Name); ok && len(rets) == 1 {
			return rets[0].Type
		}
		return Unknown()
	case *UnaryExpr:
		return EvalExpressionType(v.Operand, ctx)
	case *IncDecExpr:
		return EvalExpressionType(v.Operand, ctx)
	case *BinaryExpr:
		switch v.Op {
		case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
			return Bool()
		}
		lt := EvalExpressionType(v.Left, ctx)
		if lt.Kind != TypeUnknown {
			return lt
		}
		return EvalExpressionType(v.Right, ctx)
	case *AssignExpr:
		return EvalExpressionType(v.Target, ctx)
	case *TupleExpr:
		return Unknown()
	case *Keccak256Expr:
		return Bytes(32)
	case *AbiEncodePackedExpr:
		return Type{Kind: TypeArray, Elem: &[]Type{Bytes(1)}[0]}
	default:
		return Unknown()
	}
}
