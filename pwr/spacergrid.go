package pwr

import (
	"fmt"
	"math"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
)

// SpacerGrid holds one grid design: its axial height, total strap mass,
// strap material, and the solved per-pin strap half-thickness.
//
// The thickness comes from equating two expressions for the strap area
// around one pin. The grid's total cross-sectional area is A = m/(ρ·h),
// so the area around a single pin is A/n². The same area expressed from
// the geometry is p² − (p − 2t)² = 4tp − 4t². Solving the quadratic for
// the physically valid root:
//
//	t = (p − sqrt(p² − A/n²)) / 2
//
// A negative discriminant means the declared mass cannot fit in the
// declared pitch and is rejected loudly.
type SpacerGrid struct {
	Key       string
	Height    float64
	Mass      float64
	Material  *mat.Material
	Thickness float64
}

// NewSpacerGrid solves the strap thickness for one grid design.
// Returns ErrGridConfig for non-positive inputs and ErrGridDiscriminant
// when the mass/pitch combination has no real solution.
func NewSpacerGrid(key string, height, mass float64, material *mat.Material, pitch float64, npins int) (*SpacerGrid, error) {
	if height <= 0 || mass <= 0 || pitch <= 0 || npins < 1 || material == nil {
		return nil, fmt.Errorf("%w: grid %q", ErrGridConfig, key)
	}
	area := mass / material.Density / height
	disc := pitch*pitch - area/float64(npins*npins)
	if disc < 0 {
		return nil, fmt.Errorf("%w: grid %q (discriminant %g)", ErrGridDiscriminant, key, disc)
	}
	t := 0.5 * (pitch - math.Sqrt(disc))

	return &SpacerGrid{
		Key:       key,
		Height:    height,
		Mass:      mass,
		Material:  material,
		Thickness: t,
	}, nil
}

// StrapMass recomputes the total grid mass implied by the solved
// thickness: (4tp − 4t²)·ρ·h·n². It inverts the thickness solve exactly
// and exists so the round trip is checkable.
func (g *SpacerGrid) StrapMass(pitch float64, npins int) float64 {
	t := g.Thickness
	area := 4*t*pitch - 4*t*t

	return area * g.Material.Density * g.Height * float64(npins*npins)
}

// pinGridKey caches gridded pins by (source pin universe id, grid key).
type pinGridKey struct {
	universeID int
	gridKey    string
}

// latGridKey caches gridded lattices by (source lattice id, grid key).
type latGridKey struct {
	latticeID int
	gridKey   string
}

// Gridder derives grid-decorated variants of pin universes and lattices.
// Derivation is purely constructive — the source pin or lattice is never
// mutated — and every variant is cached so that a pin already gridded
// with a given design is never rebuilt, no matter how many axial layers
// or assemblies request it.
type Gridder struct {
	reg *csg.Registry
	cnt *ident.Counter

	pins     map[pinGridKey]*csg.Universe
	lattices map[latGridKey]*csg.RectLattice
}

// NewGridder constructs a Gridder drawing surfaces and ids from reg and cnt.
func NewGridder(reg *csg.Registry, cnt *ident.Counter) *Gridder {
	if reg == nil || cnt == nil {
		panic("pwr: NewGridder(nil)")
	}

	return &Gridder{
		reg:      reg,
		cnt:      cnt,
		pins:     make(map[pinGridKey]*csg.Universe),
		lattices: make(map[latGridKey]*csg.RectLattice),
	}
}

// GriddedPin returns the variant of pin wrapped with the grid's straps:
// four rectangular strap cells carved from the pin's outer moderator
// region, the moderator shrunk to the strap interior, and the inner ring
// cells copied unchanged under new ids. Cached by (pin id, grid key).
func (g *Gridder) GriddedPin(pin *csg.Universe, pitch float64, grid *SpacerGrid) (*csg.Universe, error) {
	if pin.NumCells() == 0 {
		return nil, fmt.Errorf("%w: pin %q", ErrEmptyUniverse, pin.Name)
	}
	key := pinGridKey{universeID: pin.ID, gridKey: grid.Key}
	if cached, ok := g.pins[key]; ok {
		return cached, nil
	}

	p := pitch / 2.0
	t := grid.Thickness
	topOut := g.reg.YPlane(p)
	topIn := g.reg.YPlane(p - t)
	botIn := g.reg.YPlane(-p + t)
	botOut := g.reg.YPlane(-p)
	leftOut := g.reg.XPlane(-p)
	leftIn := g.reg.XPlane(-p + t)
	rightIn := g.reg.XPlane(p - t)
	rightOut := g.reg.XPlane(p)

	// Four strap bands meeting in a closed frame: full-width top and
	// bottom bands, side bands between them.
	strapRegion := csg.Any(
		csg.All(csg.Outside(leftOut), csg.Outside(topIn), csg.Inside(topOut), csg.Inside(rightOut)),
		csg.All(csg.Outside(rightIn), csg.Inside(rightOut), csg.Outside(botIn), csg.Inside(topIn)),
		csg.All(csg.Outside(leftOut), csg.Inside(leftIn), csg.Outside(botIn), csg.Inside(topIn)),
		csg.All(csg.Outside(botOut), csg.Inside(botIn), csg.Outside(leftOut), csg.Inside(rightOut)),
	)
	interior := csg.All(
		csg.Outside(botIn), csg.Outside(leftIn),
		csg.Inside(topIn), csg.Inside(rightIn),
	)

	gridded := csg.NewUniverse(g.cnt.NextUniverse(), pin.Name+"-"+grid.Key)
	cells := pin.Cells()
	for _, ring := range cells[:len(cells)-1] {
		gridded.AddCell(csg.NewCell(g.cnt.NextCell(), ring.Name, ring.Region, ring.Fill))
	}
	modCell := cells[len(cells)-1]
	gridded.AddCell(csg.NewCell(g.cnt.NextCell(), modCell.Name+"-gridded",
		csg.All(modCell.Region, interior), modCell.Fill))
	gridded.AddCell(csg.NewCell(g.cnt.NextCell(), pin.Name+"-spacer",
		strapRegion, grid.Material))

	g.pins[key] = gridded

	return gridded, nil
}

// GriddedLattice returns the variant of lat with the grid applied to
// every position, rebuilding the array with gridded pins while leaving
// the source lattice untouched. Cached by (lattice id, grid key), so
// repeated grid elevations within one assembly reuse the same object.
func (g *Gridder) GriddedLattice(lat *csg.RectLattice, grid *SpacerGrid) (*csg.RectLattice, error) {
	key := latGridKey{latticeID: lat.ID, gridKey: grid.Key}
	if cached, ok := g.lattices[key]; ok {
		return cached, nil
	}

	n := lat.Size()
	gridded, err := csg.NewRectLattice(g.cnt.NextUniverse(), lat.Name+"-"+grid.Key, lat.Pitch, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			pin := lat.UniverseAt(j, i)
			if pin == nil {
				continue
			}
			gp, err := g.GriddedPin(pin, lat.Pitch, grid)
			if err != nil {
				return nil, fmt.Errorf("lattice %q position (%d,%d): %w", lat.Name, j, i, err)
			}
			gridded.SetUniverse(j, i, gp)
		}
	}
	gridded.SetOuter(lat.Outer())

	g.lattices[key] = gridded

	return gridded, nil
}
