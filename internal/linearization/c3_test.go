package linearization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathSingleClass(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("Owned", nil)

	path, err := c.Path("Owned")
	require.NoError(t, err)
	require.Equal(t, []string{"Owned"}, path)
}

func TestPathDiamond(t *testing.T) {
	t.Parallel()

	// O
	// |\
	// A B
	// |/
	// C(A, B)
	c := New()
	c.Add("O", nil)
	c.Add("A", []string{"O"})
	c.Add("B", []string{"O"})
	c.Add("C", []string{"A", "B"})

	path, err := c.Path("C")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "A", "B", "O"}, path)
}

func TestPathMissingBase(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("C", []string{"Ghost"})

	_, err := c.Path("C")
	require.Error(t, err)
	require.ErrorAs(t, err, new(*ErrMissingBase))
}

func TestPathInconsistentHierarchy(t *testing.T) {
	t.Parallel()

	// A declares (X, Y); B declares (Y, X) — no merge can satisfy both orders.
	c := New()
	c.Add("X", nil)
	c.Add("Y", nil)
	c.Add("A", []string{"X", "Y"})
	c.Add("B", []string{"Y", "X"})
	c.Add("C", []string{"A", "B"})

	_, err := c.Path("C")
	require.Error(t, err)
	require.ErrorAs(t, err, new(*ErrInconsistentHierarchy))
}

func TestFunctionsUnionAlongMRO(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("Owned", nil)
	c.Add("Pausable", nil)
	c.Add("Token", []string{"Owned", "Pausable"})

	c.RegisterFn("Owned", "transferOwnership")
	c.RegisterFn("Pausable", "pause")
	c.RegisterFn("Token", "transfer")
	c.RegisterFn("Token", "pause") // override, must not duplicate in the union

	fns, err := c.Functions("Token")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"transfer", "pause", "transferOwnership"}, fns)
}

func TestFindTopLevelContracts(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("Owned", nil)
	c.Add("Token", []string{"Owned"})
	c.Add("Vault", nil)

	top, err := c.FindTopLevelContracts([]string{"Owned", "Token", "Vault"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Vault", "Token"}, top)
}

func TestPathIsMemoized(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("A", nil)
	c.Add("B", []string{"A"})

	first, err := c.Path("B")
	require.NoError(t, err)
	second, err := c.Path("B")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
