package csg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
)

func newRegistry(t *testing.T) *csg.Registry {
	t.Helper()

	return csg.NewRegistry(ident.NewCounter())
}

// TestRegistry_DedupIdempotence verifies that coefficients differing by
// less than the rounding tolerance return the identical surface, while
// coefficients differing by more return distinct surfaces.
func TestRegistry_DedupIdempotence(t *testing.T) {
	reg := newRegistry(t)

	a := reg.XPlane(1.26)
	b := reg.XPlane(1.26 + 4e-6) // rounds to the same 5-digit key
	c := reg.XPlane(1.26 + 2e-5) // rounds away

	require.Same(t, a, b)
	require.NotSame(t, a, c)
	require.Equal(t, 2, reg.NumSurfaces())
}

// TestRegistry_CallOrderIndependence verifies determinism: interleaved
// requests from different "components" converge on the same instances.
func TestRegistry_CallOrderIndependence(t *testing.T) {
	reg := newRegistry(t)

	first := reg.ZCylinder(0.4750)
	reg.ZCylinder(0.4180)
	reg.XPlane(0.4750) // same coefficient, different namespace
	second := reg.ZCylinder(0.47500001)

	require.Same(t, first, second)
	require.Equal(t, 3, reg.NumSurfaces())
}

// TestRegistry_SignedZero verifies that mirrored geometry on either side
// of an axis keys the same central surface: -0.0, +0.0, and tiny negative
// values rounding to zero must all resolve to one plane.
func TestRegistry_SignedZero(t *testing.T) {
	reg := newRegistry(t)

	pos := reg.YPlane(0.0)
	neg := reg.YPlane(math.Copysign(0.0, -1))
	tiny := reg.YPlane(-1e-9)

	require.Same(t, pos, neg)
	require.Same(t, pos, tiny)
	require.Equal(t, 0.0, pos.Coeff)
	require.False(t, math.Signbit(pos.Coeff))
}

// TestRegistry_NamespaceIsolation verifies that the same coefficient in
// different kind namespaces produces distinct surfaces.
func TestRegistry_NamespaceIsolation(t *testing.T) {
	reg := newRegistry(t)

	x := reg.XPlane(2.5)
	y := reg.YPlane(2.5)
	z := reg.ZPlane(2.5)
	r := reg.ZCylinder(2.5)

	require.Equal(t, 4, reg.NumSurfaces())
	ids := map[int]bool{x.ID: true, y.ID: true, z.ID: true, r.ID: true}
	require.Len(t, ids, 4)
}

// TestRegistry_Digits verifies the precision override.
func TestRegistry_Digits(t *testing.T) {
	reg := csg.NewRegistry(ident.NewCounter(), csg.WithDigits(2))

	a := reg.XPlane(1.261)
	b := reg.XPlane(1.263)
	require.Same(t, a, b)
	require.Equal(t, 1.26, a.Coeff)
}

// TestRegistry_Guards covers the programmer-error panics.
func TestRegistry_Guards(t *testing.T) {
	reg := newRegistry(t)

	require.Panics(t, func() { reg.Get(csg.Plane, 1.0) })
	require.Panics(t, func() { reg.ZCylinder(-0.5) })
	require.Panics(t, func() { csg.NewRegistry(nil) })
	require.Panics(t, func() { csg.WithDigits(-1) })
}
