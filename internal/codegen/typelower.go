package codegen

import (
	"fmt"

	"github.com/odradev/nysa-go/internal/ir"
)

// NumericTypeName spells an IR int/uint type the way both backends' target
// language does: a native-word width (8/16/32/64) lowers to Rust's own
// primitive (`u8`, `i32`, ...), anything wider lowers to the generated
// wide-integer type's own name (`U256`, `I128`, ...) — the same split
// WideOp/wideZero already draw at the 64-bit threshold (ir.Type.IsWide).
func NumericTypeName(t ir.Type) string {
	prefix := "u"
	if t.Kind == ir.TypeInt {
		prefix = "i"
	}
	tier := t.Bits
	switch {
	case tier <= 8:
		tier = 8
	case tier <= 16:
		tier = 16
	case tier <= 32:
		tier = 32
	case tier <= 64:
		tier = 64
	default:
		tier = ir.NormalizeWidth(tier)
		prefix = "U"
		if t.Kind == ir.TypeInt {
			prefix = "I"
		}
	}
	return fmt.Sprintf("%s%d", prefix, tier)
}
