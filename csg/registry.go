package csg

import (
	"math"

	"github.com/veramc/veramc/ident"
)

// DefaultDigits is the number of decimal digits to which surface
// coefficients are rounded before registry lookup. Two coefficients that
// round to the same key anywhere in the build resolve to the same Surface.
const DefaultDigits = 5

// RegistryOption customizes a Registry before first use.
type RegistryOption func(*Registry)

// WithDigits overrides the rounding precision of the coefficient key.
// Panics on a negative digit count (programmer error).
func WithDigits(d int) RegistryOption {
	if d < 0 {
		panic("csg: WithDigits(negative)")
	}
	return func(r *Registry) {
		r.digits = d
		r.scale = math.Pow(10, float64(d))
	}
}

// Registry canonicalizes single-coefficient surfaces (the three axis
// plane families and origin-centered z cylinders) by rounded coefficient.
// Every builder obtains such surfaces here; two calls with coefficients
// equal within the rounding tolerance return the identical *Surface
// regardless of call order or calling component. That determinism is what
// prevents duplicate, numerically adjacent surfaces at ring boundaries
// shared by neighboring assemblies.
type Registry struct {
	digits int
	scale  float64
	cnt    *ident.Counter

	byKind map[SurfaceKind]map[int64]*Surface
	order  []*Surface
}

// NewRegistry constructs a Registry drawing ids from cnt.
func NewRegistry(cnt *ident.Counter, opts ...RegistryOption) *Registry {
	if cnt == nil {
		panic("csg: NewRegistry(nil counter)")
	}
	r := &Registry{
		digits: DefaultDigits,
		scale:  math.Pow(10, DefaultDigits),
		cnt:    cnt,
		byKind: map[SurfaceKind]map[int64]*Surface{
			XPlane:    {},
			YPlane:    {},
			ZPlane:    {},
			ZCylinder: {},
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// key rounds the coefficient to the registry precision. The integer
// conversion collapses IEEE negative zero onto positive zero, so mirrored
// geometry on either side of an axis (the four quadrants of a baffle)
// always keys the same central surface.
func (r *Registry) key(coeff float64) int64 {
	return int64(math.Round(coeff * r.scale))
}

// Get returns the canonical surface of the given kind and coefficient,
// creating and registering it on first request. Only the four
// single-coefficient kinds are registrable; passing Plane panics
// (rotated planes carry four coefficients and are built with NewPlane).
func (r *Registry) Get(kind SurfaceKind, coeff float64) *Surface {
	m, ok := r.byKind[kind]
	if !ok {
		panic("csg: Registry.Get(" + kind.String() + ") is not registrable")
	}
	if kind == ZCylinder && coeff < 0 {
		panic("csg: Registry.Get(z-cylinder) with negative radius")
	}
	k := r.key(coeff)
	if s, found := m[k]; found {
		return s
	}
	s := &Surface{
		ID:    r.cnt.NextSurface(),
		Kind:  kind,
		Coeff: float64(k) / r.scale,
	}
	m[k] = s
	r.order = append(r.order, s)

	return s
}

// XPlane returns the canonical plane x = x0.
func (r *Registry) XPlane(x0 float64) *Surface { return r.Get(XPlane, x0) }

// YPlane returns the canonical plane y = y0.
func (r *Registry) YPlane(y0 float64) *Surface { return r.Get(YPlane, y0) }

// ZPlane returns the canonical plane z = z0.
func (r *Registry) ZPlane(z0 float64) *Surface { return r.Get(ZPlane, z0) }

// ZCylinder returns the canonical cylinder of radius rad about the z axis.
func (r *Registry) ZCylinder(rad float64) *Surface { return r.Get(ZCylinder, rad) }

// Surfaces returns every registered surface in creation order. The slice
// is shared; callers must not mutate it.
func (r *Registry) Surfaces() []*Surface { return r.order }

// NumSurfaces returns the number of distinct registered surfaces.
func (r *Registry) NumSurfaces() int { return len(r.order) }
