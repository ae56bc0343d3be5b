// Package mat defines material compositions for the geometry model:
// plain materials with tagged nuclide fractions, and volume-weighted
// mixtures used for smeared structures such as nozzles.
//
// A mixture is not a distinct type — it is a Material produced by a
// different construction path, indistinguishable to every consumer.
// Whether a fraction is by weight or by atom is carried by an explicit
// FracType tag, never by the sign of the value; deck readers that encode
// atomic fractions as negatives convert at the boundary.
package mat

import "errors"

// Sentinel errors for material construction.
var (
	// ErrMixtureInput indicates empty or mismatched mixture inputs, or a
	// non-positive volume fraction.
	ErrMixtureInput = errors.New("mat: invalid mixture inputs")
	// ErrMixtureFracType indicates an attempt to mix materials carrying
	// atomic fractions; mixing is defined for weight fractions only.
	ErrMixtureFracType = errors.New("mat: mixtures require weight fractions")
	// ErrBadDensity indicates a non-positive density.
	ErrBadDensity = errors.New("mat: density must be positive")
)

// FracType tags how a nuclide fraction is expressed.
type FracType int

const (
	// Weight is a mass fraction.
	Weight FracType = iota
	// Atomic is an atom fraction.
	Atomic
)

// String returns the deck shorthand for the fraction type.
func (f FracType) String() string {
	if f == Atomic {
		return "ao"
	}

	return "wo"
}

// Nuclide is one component of a material composition. Names follow the
// deck convention ("U-235", "H-1"); a trailing "-00" marks a natural
// element to be abundance-expanded by the downstream engine's data.
type Nuclide struct {
	Name     string
	Fraction float64
	Type     FracType
}

// Material is one composition: identity, density in g/cc, temperature in
// Kelvin, and a nuclide fraction list. Materials are built once and shared
// by every cell that references them.
type Material struct {
	ID          int
	Name        string
	Density     float64
	Temperature float64

	nuclides []Nuclide
}

// New constructs a material with the given density in g/cc.
// Returns ErrBadDensity for a non-positive density.
func New(id int, name string, density float64) (*Material, error) {
	if density <= 0 {
		return nil, ErrBadDensity
	}

	return &Material{ID: id, Name: name, Density: density}, nil
}

// FillID implements csg.Fill: a material may fill a cell.
func (m *Material) FillID() int { return m.ID }

// AddNuclide appends one nuclide fraction.
func (m *Material) AddNuclide(name string, fraction float64, t FracType) {
	m.nuclides = append(m.nuclides, Nuclide{Name: name, Fraction: fraction, Type: t})
}

// Nuclides returns the composition in insertion order. The slice is
// shared; callers must not mutate it.
func (m *Material) Nuclides() []Nuclide { return m.nuclides }

// Fraction returns the total fraction recorded for the named nuclide,
// summed across duplicate entries.
func (m *Material) Fraction(name string) float64 {
	var sum float64
	for _, n := range m.nuclides {
		if n.Name == name {
			sum += n.Fraction
		}
	}

	return sum
}

// HasAtomic reports whether any nuclide carries an atomic fraction.
func (m *Material) HasAtomic() bool {
	for _, n := range m.nuclides {
		if n.Type == Atomic {
			return true
		}
	}

	return false
}
