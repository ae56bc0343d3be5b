package csg

// Fill is anything a cell may be filled with: a material, a universe, or a
// lattice. Material lives in the mat package and satisfies this interface
// without importing csg.
type Fill interface {
	// FillID returns the fill's unique id within its own namespace.
	FillID() int
}

// Cell pairs a region with a fill. A cell belongs to exactly one universe;
// its region may share sub-expressions with other cells, but the top-level
// Region value is its own.
type Cell struct {
	ID     int
	Name   string
	Region Region
	Fill   Fill
}

// NewCell constructs a cell. Region and fill may be assigned later by
// builders that derive them incrementally, so neither is validated here;
// a cell with a nil region never contains any point.
func NewCell(id int, name string, region Region, fill Fill) *Cell {
	return &Cell{ID: id, Name: name, Region: region, Fill: fill}
}

// Contains reports whether the point lies in the cell's region.
func (c *Cell) Contains(x, y, z float64) bool {
	return c.Region != nil && c.Region.Contains(x, y, z)
}
