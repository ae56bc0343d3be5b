package csg

import "errors"

// Sentinel errors for csg construction.
var (
	// ErrBadBoundary indicates an unrecognized boundary-condition string.
	ErrBadBoundary = errors.New("csg: invalid boundary condition")
	// ErrEmptyLattice indicates a lattice constructed with no positions.
	ErrEmptyLattice = errors.New("csg: lattice must have at least one position")
)
