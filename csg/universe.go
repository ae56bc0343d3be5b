package csg

// Universe is an ordered collection of cells forming a self-contained,
// reusable geometric unit: a pin cell, a gridded pin cell, an assembly, or
// the whole core. Universes are shared by reference; identical pin or
// lattice configurations must resolve to the same *Universe, never a
// structural copy — that sharing is what keeps the model linear in
// distinct designs rather than in total pin count.
//
// Cell order is meaningful to the builders: the pin-cell convention places
// the unbounded moderator cell last, and the spacer-grid builder relies on
// that position when it carves the straps out of the moderator.
type Universe struct {
	ID    int
	Name  string
	cells []*Cell
}

// NewUniverse constructs an empty universe.
func NewUniverse(id int, name string) *Universe {
	return &Universe{ID: id, Name: name}
}

// FillID implements Fill: a universe may fill a parent cell.
func (u *Universe) FillID() int { return u.ID }

// AddCell appends a cell, preserving insertion order.
func (u *Universe) AddCell(c *Cell) {
	if c == nil {
		panic("csg: AddCell(nil)")
	}
	u.cells = append(u.cells, c)
}

// AddCells appends cells in order.
func (u *Universe) AddCells(cs ...*Cell) {
	for _, c := range cs {
		u.AddCell(c)
	}
}

// Cells returns the universe's cells in insertion order. The returned
// slice is shared; callers must not mutate it.
func (u *Universe) Cells() []*Cell { return u.cells }

// NumCells returns the number of cells.
func (u *Universe) NumCells() int { return len(u.cells) }

// LastCell returns the most recently added cell, or nil when empty.
// Builders use this to locate the outer moderator cell of a pin universe.
func (u *Universe) LastCell() *Cell {
	if len(u.cells) == 0 {
		return nil
	}

	return u.cells[len(u.cells)-1]
}

// FindCell returns the first cell containing (x, y, z), or nil when the
// point is in a gap. Gaps and overlaps are both construction failures; the
// tiling tests sample this to prove there are neither.
func (u *Universe) FindCell(x, y, z float64) *Cell {
	for _, c := range u.cells {
		if c.Contains(x, y, z) {
			return c
		}
	}

	return nil
}

// CountContaining returns how many cells contain (x, y, z). A correctly
// tiled universe yields exactly 1 for every point of its extent.
func (u *Universe) CountContaining(x, y, z float64) int {
	n := 0
	for _, c := range u.cells {
		if c.Contains(x, y, z) {
			n++
		}
	}

	return n
}
