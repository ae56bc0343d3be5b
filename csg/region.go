package csg

// Region is a boolean combination of surface half-spaces. Regions are
// immutable expression trees; equality is point-set equality, which is
// exactly what Contains lets callers sample. No simplification is
// performed: two regions built through different operator orders evaluate
// to the same point set, which is all the downstream engine needs.
type Region interface {
	// Contains reports whether the point (x, y, z) lies in the region.
	// Points exactly on a surface count as being on its positive side.
	Contains(x, y, z float64) bool
}

// halfspace is one side of a single surface.
type halfspace struct {
	surf *Surface
	pos  bool
}

func (h halfspace) Contains(x, y, z float64) bool {
	v := h.surf.Evaluate(x, y, z)
	if h.pos {
		return v >= 0
	}

	return v < 0
}

// Inside returns the region on the negative side of s
// (x < x0 for an x-plane, r < R for a cylinder).
func Inside(s *Surface) Region {
	if s == nil {
		panic("csg: Inside(nil surface)")
	}

	return halfspace{surf: s}
}

// Outside returns the region on the positive side of s, including s itself.
func Outside(s *Surface) Region {
	if s == nil {
		panic("csg: Outside(nil surface)")
	}

	return halfspace{surf: s, pos: true}
}

// intersection contains a point iff every term does.
type intersection struct {
	terms []Region
}

func (n intersection) Contains(x, y, z float64) bool {
	for _, t := range n.terms {
		if !t.Contains(x, y, z) {
			return false
		}
	}

	return true
}

// union contains a point iff any term does.
type union struct {
	terms []Region
}

func (n union) Contains(x, y, z float64) bool {
	for _, t := range n.terms {
		if t.Contains(x, y, z) {
			return true
		}
	}

	return false
}

// complement contains a point iff its term does not.
type complement struct {
	term Region
}

func (n complement) Contains(x, y, z float64) bool {
	return !n.term.Contains(x, y, z)
}

// All returns the intersection of the given regions.
// Panics when called with no arguments (programmer error).
func All(rs ...Region) Region {
	if len(rs) == 0 {
		panic("csg: All() requires at least one region")
	}
	if len(rs) == 1 {
		return rs[0]
	}
	terms := make([]Region, len(rs))
	copy(terms, rs)

	return intersection{terms: terms}
}

// Any returns the union of the given regions.
// Panics when called with no arguments (programmer error).
func Any(rs ...Region) Region {
	if len(rs) == 0 {
		panic("csg: Any() requires at least one region")
	}
	if len(rs) == 1 {
		return rs[0]
	}
	terms := make([]Region, len(rs))
	copy(terms, rs)

	return union{terms: terms}
}

// space contains every point.
type space struct{}

func (space) Contains(x, y, z float64) bool { return true }

// Space returns the unbounded region containing every point. It backs
// infinite background cells such as a moderator universe used as a
// lattice outer fill.
func Space() Region { return space{} }

// Not returns the complement of r.
func Not(r Region) Region {
	if r == nil {
		panic("csg: Not(nil region)")
	}
	if c, ok := r.(complement); ok {
		return c.term
	}

	return complement{term: r}
}
