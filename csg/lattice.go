package csg

// RectLattice is a uniform square array of universe references plus an
// outer fallback universe for positions outside the declared bounds (the
// water gap between adjacent assemblies). The array is centered on the
// origin: the lower-left corner sits at (-pitch·n/2, -pitch·n/2).
//
// A lattice is immutable once filled. Grid-decorated variants are separate
// lattices built by the spacer-grid layer and cached externally keyed by
// (source lattice id, grid key); nothing ever mutates a shared universes
// array in place.
type RectLattice struct {
	ID        int
	Name      string
	Pitch     float64
	LowerLeft [2]float64

	universes [][]*Universe
	outer     *Universe
}

// NewRectLattice constructs an n×n lattice with the given pitch, centered
// at the origin. Returns ErrEmptyLattice when n < 1.
func NewRectLattice(id int, name string, pitch float64, n int) (*RectLattice, error) {
	if n < 1 {
		return nil, ErrEmptyLattice
	}
	half := pitch * float64(n) / 2.0
	u := make([][]*Universe, n)
	for j := range u {
		u[j] = make([]*Universe, n)
	}

	return &RectLattice{
		ID:        id,
		Name:      name,
		Pitch:     pitch,
		LowerLeft: [2]float64{-half, -half},
		universes: u,
	}, nil
}

// FillID implements Fill: a lattice may fill a parent cell.
func (l *RectLattice) FillID() int { return l.ID }

// Size returns the number of positions along one side.
func (l *RectLattice) Size() int { return len(l.universes) }

// SetUniverse places u at row j, column i. Row 0 is the top row, matching
// the orientation of deck cell maps. Panics on out-of-range indices
// (programmer error; builders validate map dimensions first).
func (l *RectLattice) SetUniverse(j, i int, u *Universe) {
	l.universes[j][i] = u
}

// UniverseAt returns the universe at row j, column i.
func (l *RectLattice) UniverseAt(j, i int) *Universe {
	return l.universes[j][i]
}

// SetOuter declares the fallback universe used outside the array bounds.
func (l *RectLattice) SetOuter(u *Universe) { l.outer = u }

// Outer returns the fallback universe, or nil when none is declared.
func (l *RectLattice) Outer() *Universe { return l.outer }

// UniverseAtPoint resolves the universe governing the point (x, y),
// falling back to the outer universe beyond array bounds. This is the
// lookup the tiling tests use to walk through lattice fills.
func (l *RectLattice) UniverseAtPoint(x, y float64) *Universe {
	n := l.Size()
	i := int((x - l.LowerLeft[0]) / l.Pitch)
	j := int((y - l.LowerLeft[1]) / l.Pitch)
	if x < l.LowerLeft[0] || y < l.LowerLeft[1] || i >= n || j >= n {
		return l.outer
	}
	// Array row 0 is the top of the map, so flip the y index.

	return l.universes[n-1-j][i]
}

// LocalCoords translates the global point (x, y) into the coordinate frame
// of the lattice position containing it, with the position's center at the
// origin. Points outside the array are returned unchanged.
func (l *RectLattice) LocalCoords(x, y float64) (float64, float64) {
	n := l.Size()
	i := int((x - l.LowerLeft[0]) / l.Pitch)
	j := int((y - l.LowerLeft[1]) / l.Pitch)
	if x < l.LowerLeft[0] || y < l.LowerLeft[1] || i >= n || j >= n {
		return x, y
	}
	cx := l.LowerLeft[0] + (float64(i)+0.5)*l.Pitch
	cy := l.LowerLeft[1] + (float64(j)+0.5)*l.Pitch

	return x - cx, y - cy
}
