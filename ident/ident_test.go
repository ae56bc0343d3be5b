package ident_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veramc/veramc/ident"
)

// TestCounter_Monotonic verifies ids increase strictly within one namespace.
func TestCounter_Monotonic(t *testing.T) {
	c := ident.NewCounter()
	prev := -1
	for i := 0; i < 100; i++ {
		id := c.NextSurface()
		require.Greater(t, id, prev)
		prev = id
	}
}

// TestCounter_IndependentNamespaces verifies the four sequences do not
// interact: draining one namespace must not advance the others.
func TestCounter_IndependentNamespaces(t *testing.T) {
	c := ident.NewCounter()
	for i := 0; i < 10; i++ {
		c.NextSurface()
	}
	require.Equal(t, ident.DefaultFloor, c.NextCell())
	require.Equal(t, ident.DefaultFloor, c.NextMaterial())
	require.Equal(t, ident.DefaultFloor, c.NextUniverse())
}

// TestCounter_Floor verifies the configurable starting floor.
func TestCounter_Floor(t *testing.T) {
	c := ident.NewCounterAt(1000)
	require.Equal(t, 1000, c.Next(ident.Surface))
	require.Equal(t, 1001, c.Next(ident.Surface))
	require.Equal(t, 1000, c.Next(ident.Universe))
}

// TestCounter_KindDispatch verifies Next(kind) matches the per-kind methods.
func TestCounter_KindDispatch(t *testing.T) {
	c := ident.NewCounter()
	require.Equal(t, c.NextCell()+1, c.Next(ident.Cell))
	require.Panics(t, func() { c.Next(ident.Kind(42)) })
	require.Panics(t, func() { ident.NewCounterAt(-1) })
}

// TestKind_String covers the namespace names used in error messages.
func TestKind_String(t *testing.T) {
	require.Equal(t, "surface", ident.Surface.String())
	require.Equal(t, "cell", ident.Cell.String())
	require.Equal(t, "material", ident.Material.String())
	require.Equal(t, "universe", ident.Universe.String())
	require.Equal(t, "unknown", ident.Kind(-7).String())
}
