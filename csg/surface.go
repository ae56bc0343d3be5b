package csg

// SurfaceKind identifies the geometric form of a Surface.
// It is a closed enumeration: surface creation dispatches on this tag,
// never on strings.
type SurfaceKind int

const (
	// XPlane is the plane x = c.
	XPlane SurfaceKind = iota
	// YPlane is the plane y = c.
	YPlane
	// ZPlane is the plane z = c.
	ZPlane
	// ZCylinder is the cylinder x^2 + y^2 = c^2 about the z axis.
	ZCylinder
	// Plane is a general plane A·x + B·y + C·z = D. Used for the rotated
	// wedge boundaries of neutron pads; not managed by the Registry.
	Plane
)

// String returns the conventional short name of the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case XPlane:
		return "x-plane"
	case YPlane:
		return "y-plane"
	case ZPlane:
		return "z-plane"
	case ZCylinder:
		return "z-cylinder"
	case Plane:
		return "plane"
	default:
		return "unknown"
	}
}

// Boundary is the condition applied to a surface at the outermost extent
// of the model. Interior surfaces keep the Transmission zero value.
type Boundary int

const (
	// Transmission lets particles cross freely (the default).
	Transmission Boundary = iota
	// Vacuum absorbs anything that crosses outward.
	Vacuum
	// Reflective mirrors anything that crosses.
	Reflective
)

// String returns the boundary-condition name as it appears in input decks.
func (b Boundary) String() string {
	switch b {
	case Vacuum:
		return "vacuum"
	case Reflective:
		return "reflective"
	default:
		return "transmission"
	}
}

// ParseBoundary maps a deck boundary-condition string to its Boundary.
// Returns ErrBadBoundary for anything other than the three known names.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "transmission", "":
		return Transmission, nil
	case "vacuum":
		return Vacuum, nil
	case "reflective":
		return Reflective, nil
	default:
		return Transmission, ErrBadBoundary
	}
}

// Surface is one quadric boundary. Surfaces are immutable after creation
// except for the boundary-condition tag, which the composer applies to the
// outermost surfaces once the model extent is known.
//
// For the axis-aligned kinds Coeff is the plane coordinate or cylinder
// radius; for the general Plane kind the A, B, C, D coefficients apply and
// Coeff is unused.
type Surface struct {
	ID    int
	Kind  SurfaceKind
	Name  string
	Coeff float64

	A, B, C, D float64

	boundary Boundary
}

// NewPlane constructs a general plane A·x + B·y + C·z = D with the given id.
// Rotated planes are built per pad and are deliberately outside the
// Registry: their coefficients are angle-derived and never shared.
func NewPlane(id int, a, b, c, d float64, name string) *Surface {
	return &Surface{ID: id, Kind: Plane, Name: name, A: a, B: b, C: c, D: d}
}

// Boundary returns the surface's boundary condition.
func (s *Surface) Boundary() Boundary { return s.boundary }

// SetBoundary tags the surface with a boundary condition. This is the one
// permitted mutation of a Surface; it is applied only to the outermost
// surfaces of the model.
func (s *Surface) SetBoundary(b Boundary) { s.boundary = b }

// Evaluate returns the signed value of the surface equation at (x, y, z):
// negative inside, zero on the surface, positive outside.
func (s *Surface) Evaluate(x, y, z float64) float64 {
	switch s.Kind {
	case XPlane:
		return x - s.Coeff
	case YPlane:
		return y - s.Coeff
	case ZPlane:
		return z - s.Coeff
	case ZCylinder:
		return x*x + y*y - s.Coeff*s.Coeff
	case Plane:
		return s.A*x + s.B*y + s.C*z - s.D
	default:
		panic("csg: Evaluate on unknown surface kind")
	}
}
