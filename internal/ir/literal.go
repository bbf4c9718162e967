package ir

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ErrLiteralOverflow is returned by CheckLiteralFits when a numeric literal
// does not fit the declared width of the type it's assigned or cast to.
// Decided once, here, upstream of either backend: an out-of-range literal
// is rejected at compile time rather than wrapped or truncated at runtime.
type ErrLiteralOverflow struct {
	Text string
	Bits int
}

func (e *ErrLiteralOverflow) Error() string {
	return fmt.Sprintf("numeric literal %q does not fit declared width uint/int%d", e.Text, e.Bits)
}

// CheckLiteralFits parses a NumberLit's text (decimal or 0x-prefixed hex)
// and reports whether it fits within the given bit width. It never needs
// more than 256 bits of precision, so it borrows holiman/uint256 — the same
// wide-integer type go-ethereum uses on-chain — purely as a compile-time
// arbitrary-precision scratch value; nothing it computes is emitted.
func CheckLiteralFits(text string, bits int) error {
	clean := strings.ReplaceAll(text, "_", "")
	var val uint256.Int
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		if _, err := val.SetFromHex(clean); err != nil {
			return fmt.Errorf("parsing hex literal %q: %w", text, err)
		}
	} else {
		if _, err := val.SetFromDecimal(clean); err != nil {
			return fmt.Errorf("parsing decimal literal %q: %w", text, err)
		}
	}
	if bits >= 256 {
		return nil
	}
	limit := uint256.NewInt(1)
	limit.Lsh(limit, uint(bits))
	if val.Cmp(limit) >= 0 {
		return &ErrLiteralOverflow{Text: text, Bits: bits}
	}
	return nil
}
