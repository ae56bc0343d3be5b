// Package ident issues unique integer identifiers for the four independent
// namespaces of a Monte Carlo geometry model: surfaces, cells, materials,
// and universes.
//
// A Counter is created once per model-build session and threaded explicitly
// through every constructor that needs an id; there is no package-level
// state. Identifiers are strictly monotonically increasing within each
// namespace and are never reused. The counter is deliberately not
// synchronized: the whole build is single-threaded.
//
// Each namespace starts at a configurable floor (DefaultFloor = 100) so
// that every id in a typical model has the same digit width, which makes
// exported geometry much easier to read when debugging lost particles.
package ident

// Kind selects one of the four id namespaces.
type Kind int

const (
	// Surface is the namespace for bounding surfaces.
	Surface Kind = iota
	// Cell is the namespace for cells.
	Cell
	// Material is the namespace for material compositions.
	Material
	// Universe is the namespace for universes and lattices.
	Universe
)

// String returns the lower-case namespace name.
func (k Kind) String() string {
	switch k {
	case Surface:
		return "surface"
	case Cell:
		return "cell"
	case Material:
		return "material"
	case Universe:
		return "universe"
	default:
		return "unknown"
	}
}

// DefaultFloor is the first id issued in each namespace.
const DefaultFloor = 100

// Counter holds the next unissued id for each namespace.
// The zero value is not usable; construct with NewCounter or NewCounterAt.
type Counter struct {
	surface  int
	cell     int
	material int
	universe int
}

// NewCounter returns a Counter with every namespace starting at DefaultFloor.
func NewCounter() *Counter {
	return NewCounterAt(DefaultFloor)
}

// NewCounterAt returns a Counter with every namespace starting at floor.
// Panics on a negative floor (programmer error).
func NewCounterAt(floor int) *Counter {
	if floor < 0 {
		panic("ident: NewCounterAt(negative floor)")
	}
	return &Counter{surface: floor, cell: floor, material: floor, universe: floor}
}

// Next returns a fresh id in the given namespace.
// Panics on an out-of-range Kind (programmer error; Kind is a closed enum).
func (c *Counter) Next(k Kind) int {
	switch k {
	case Surface:
		return c.NextSurface()
	case Cell:
		return c.NextCell()
	case Material:
		return c.NextMaterial()
	case Universe:
		return c.NextUniverse()
	default:
		panic("ident: Next(unknown kind)")
	}
}

// NextSurface returns a fresh surface id.
func (c *Counter) NextSurface() int {
	id := c.surface
	c.surface++

	return id
}

// NextCell returns a fresh cell id.
func (c *Counter) NextCell() int {
	id := c.cell
	c.cell++

	return id
}

// NextMaterial returns a fresh material id.
func (c *Counter) NextMaterial() int {
	id := c.material
	c.material++

	return id
}

// NextUniverse returns a fresh universe id.
func (c *Counter) NextUniverse() int {
	id := c.universe
	c.universe++

	return id
}
