package codegen

import (
	"testing"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/stretchr/testify/require"
)

func TestNumericTypeNameRoundsUpToNearestNativeWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, "u8", NumericTypeName(ir.Uint(8)))
	require.Equal(t, "u32", NumericTypeName(ir.Uint(24)))
	require.Equal(t, "u64", NumericTypeName(ir.Uint(64)))
	require.Equal(t, "i16", NumericTypeName(ir.Int(16)))
}

func TestNumericTypeNameWideUsesGeneratedWideType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "U256", NumericTypeName(ir.Uint(256)))
	require.Equal(t, "U128", NumericTypeName(ir.Uint(128)))
	require.Equal(t, "I256", NumericTypeName(ir.Int(256)))
}
