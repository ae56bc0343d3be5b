package pwr

import (
	"fmt"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
)

// BuildPinCell constructs the universe of one pin cell: k concentric
// annular cells bounded by registry cylinders, plus one unbounded
// moderator cell outside the last ring. Identical radii anywhere in the
// model resolve to the same cylinder surface, so neighboring pin designs
// sharing a ring radius share its boundary.
//
// radii must be strictly ascending and positive; fills pairs one fill per
// ring. The moderator cell is always last in the universe — downstream
// builders rely on that position.
//
// Callers cache the result by the pin's declared key; this function
// builds unconditionally.
func BuildPinCell(reg *csg.Registry, cnt *ident.Counter, name string, radii []float64, fills []csg.Fill, mod csg.Fill) (*csg.Universe, error) {
	if len(radii) == 0 || len(radii) != len(fills) {
		return nil, fmt.Errorf("%w: pin %q has %d radii and %d fills",
			ErrRingMismatch, name, len(radii), len(fills))
	}
	if mod == nil {
		return nil, fmt.Errorf("%w: pin %q moderator", ErrNilFill, name)
	}
	prev := 0.0
	for i, r := range radii {
		if r <= prev {
			return nil, fmt.Errorf("%w: pin %q ring %d (r=%g)", ErrRadiiOrder, name, i, r)
		}
		if fills[i] == nil {
			return nil, fmt.Errorf("%w: pin %q ring %d", ErrNilFill, name, i)
		}
		prev = r
	}

	u := csg.NewUniverse(cnt.NextUniverse(), name)
	var inner *csg.Surface
	for i, r := range radii {
		cyl := reg.ZCylinder(r)
		region := csg.Inside(cyl)
		if inner != nil {
			region = csg.All(csg.Inside(cyl), csg.Outside(inner))
		}
		ring := csg.NewCell(cnt.NextCell(), fmt.Sprintf("%s-ring%d", name, i), region, fills[i])
		u.AddCell(ring)
		inner = cyl
	}
	modCell := csg.NewCell(cnt.NextCell(), name+"-mod", csg.Outside(inner), mod)
	u.AddCell(modCell)

	return u, nil
}
