package pwr

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
)

// elevEps is the tolerance under which two axial elevations are merged
// into one boundary plane. It matches the registry's coefficient
// rounding, so a merged elevation and its plane always agree.
const elevEps = 1e-5

// Assembly describes one fuel-assembly design before it is built: the
// axial stack of lattices between declared elevation boundaries, the
// spacer grids at their midpoint elevations, optional nozzles capping the
// stack, and the surrounding moderator.
//
// Required fields: Key, Pitch, Npins, at least one lattice, the matching
// elevation list, and Mod. Name defaults to Key. Build reports every
// missing required field in a single error.
type Assembly struct {
	Key  string
	Name string

	Pitch float64
	Npins int

	// Lattices bottom to top; LatticeElevs has exactly one more entry and
	// brackets each lattice between consecutive elevations (cm, relative
	// to the bottom core plate).
	Lattices     []*csg.RectLattice
	LatticeElevs []float64

	// Spacers and the elevations of their axial midpoints; gaps between
	// grids are expected. One midpoint per spacer.
	Spacers    []*SpacerGrid
	SpacerMids []float64

	LowerNozzle *Nozzle
	UpperNozzle *Nozzle

	Mod *mat.Material
}

// Built is the constructed assembly: its universe plus the axial extent
// the composer needs when placing it in the core.
type Built struct {
	Universe *csg.Universe
	Bottom   float64
	Top      float64
	// LayerCells counts the axial lattice-layer cells (excluding nozzle
	// and boundary cells).
	LayerCells int
}

// prebuild validates the assembly, aggregating every missing or invalid
// required field into one ErrAssemblyConfig error so a user can fix a
// whole batch of problems in one pass.
func (a *Assembly) prebuild() error {
	if a.Name == "" {
		a.Name = a.Key
	}
	var missing []string
	if a.Key == "" {
		missing = append(missing, "key")
	}
	if a.Pitch <= 0 {
		missing = append(missing, "pitch")
	}
	if a.Npins < 1 {
		missing = append(missing, "npins")
	}
	if len(a.Lattices) == 0 {
		missing = append(missing, "lattices")
	}
	if len(a.LatticeElevs) == 0 {
		missing = append(missing, "lattice_elevs")
	}
	if a.Mod == nil {
		missing = append(missing, "mod")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %q: missing or invalid fields: %s",
			ErrAssemblyConfig, a.Name, strings.Join(missing, ", "))
	}

	if len(a.LatticeElevs) != len(a.Lattices)+1 {
		return fmt.Errorf("%w: assembly %q has %d lattices and %d elevations",
			ErrElevationCount, a.Name, len(a.Lattices), len(a.LatticeElevs))
	}
	for i := 1; i < len(a.LatticeElevs); i++ {
		if a.LatticeElevs[i] <= a.LatticeElevs[i-1] {
			return fmt.Errorf("%w: assembly %q at index %d", ErrElevationOrder, a.Name, i)
		}
	}
	if len(a.Spacers) != len(a.SpacerMids) {
		return fmt.Errorf("%w: assembly %q has %d spacers and %d midpoints",
			ErrSpacerCount, a.Name, len(a.Spacers), len(a.SpacerMids))
	}
	if a.LowerNozzle != nil && math.Abs(a.LowerNozzle.Height-a.LatticeElevs[0]) > elevEps {
		return fmt.Errorf("%w: assembly %q lower nozzle top %g, first lattice elevation %g",
			ErrNozzleFit, a.Name, a.LowerNozzle.Height, a.LatticeElevs[0])
	}

	return nil
}

// mergedElevs returns the sorted, deduplicated union of the lattice
// boundary elevations and the top/bottom of every spacer grid.
func (a *Assembly) mergedElevs() []float64 {
	elevs := make([]float64, 0, len(a.LatticeElevs)+2*len(a.Spacers))
	elevs = append(elevs, a.LatticeElevs...)
	for i, s := range a.Spacers {
		mid := a.SpacerMids[i]
		elevs = append(elevs, mid-s.Height/2.0, mid+s.Height/2.0)
	}
	sort.Float64s(elevs)

	merged := elevs[:1]
	for _, z := range elevs[1:] {
		if z-merged[len(merged)-1] > elevEps {
			merged = append(merged, z)
		}
	}

	return merged
}

// activeLattice returns the lattice layer whose declared bounds bracket z.
func (a *Assembly) activeLattice(z float64) *csg.RectLattice {
	for k := 0; k < len(a.Lattices); k++ {
		if z >= a.LatticeElevs[k] && z < a.LatticeElevs[k+1] {
			return a.Lattices[k]
		}
	}
	// z above the top boundary can only be the final sample of the merged
	// list; it belongs to the top layer.

	return a.Lattices[len(a.Lattices)-1]
}

// activeSpacer returns the grid whose closed-open axial interval
// [mid-h/2, mid+h/2) contains z, or nil.
func (a *Assembly) activeSpacer(z float64) *SpacerGrid {
	for i, s := range a.Spacers {
		mid := a.SpacerMids[i]
		if z >= mid-s.Height/2.0 && z < mid+s.Height/2.0 {
			return s
		}
	}

	return nil
}

// Build constructs the assembly universe bottom-up: optional lower
// nozzle, one cell per merged elevation step filled with the active
// (possibly gridded) lattice, optional upper nozzle, and a final
// moderator cell covering everything outside the bounding walls or
// beyond the axial extent. Gridded layers come from gr's caches, so a
// design shared across layers or assemblies is wrapped exactly once.
func (a *Assembly) Build(reg *csg.Registry, cnt *ident.Counter, gr *Gridder) (*Built, error) {
	if err := a.prebuild(); err != nil {
		return nil, err
	}

	half := a.Pitch * float64(a.Npins) / 2.0
	minX := reg.XPlane(-half)
	maxX := reg.XPlane(half)
	minY := reg.YPlane(-half)
	maxY := reg.YPlane(half)
	walls := csg.All(
		csg.Outside(minX), csg.Inside(maxX),
		csg.Outside(minY), csg.Inside(maxY),
	)

	u := csg.NewUniverse(cnt.NextUniverse(), a.Name)

	bottom := a.LatticeElevs[0]
	if a.LowerNozzle != nil {
		bottom = 0
		base := reg.ZPlane(0)
		top := reg.ZPlane(a.LowerNozzle.Height)
		u.AddCell(csg.NewCell(cnt.NextCell(), a.Name+"-lower-nozzle",
			csg.All(walls, csg.Outside(base), csg.Inside(top)), a.LowerNozzle.Material))
	}

	elevs := a.mergedElevs()
	layers := 0
	last := reg.ZPlane(elevs[0])
	for _, z := range elevs[1:] {
		cur := reg.ZPlane(z)
		mid := (last.Coeff + cur.Coeff) / 2.0
		var fill csg.Fill = a.activeLattice(mid)
		name := fmt.Sprintf("%s-layer-%d", a.Name, layers)
		if s := a.activeSpacer(mid); s != nil {
			lat := fill.(*csg.RectLattice)
			gridded, err := gr.GriddedLattice(lat, s)
			if err != nil {
				return nil, fmt.Errorf("assembly %q: %w", a.Name, err)
			}
			fill = gridded
			name += "-" + s.Key
		}
		u.AddCell(csg.NewCell(cnt.NextCell(), name,
			csg.All(walls, csg.Outside(last), csg.Inside(cur)), fill))
		layers++
		last = cur
	}

	top := a.LatticeElevs[len(a.LatticeElevs)-1]
	if a.UpperNozzle != nil {
		base := last
		top += a.UpperNozzle.Height
		lid := reg.ZPlane(top)
		u.AddCell(csg.NewCell(cnt.NextCell(), a.Name+"-upper-nozzle",
			csg.All(walls, csg.Outside(base), csg.Inside(lid)), a.UpperNozzle.Material))
		last = lid
	}

	// Everything outside the walls, below the stack, or above it is
	// moderator; the parent core lattice clips this unbounded cell to the
	// assembly's position.
	botPlane := reg.ZPlane(bottom)
	u.AddCell(csg.NewCell(cnt.NextCell(), a.Name+"-outer-mod",
		csg.Any(csg.Not(walls), csg.Inside(botPlane), csg.Outside(last)), a.Mod))

	return &Built{Universe: u, Bottom: bottom, Top: top, LayerCells: layers}, nil
}
