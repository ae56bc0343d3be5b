// Package csg provides the constructive-solid-geometry value types from
// which a reactor model is assembled, plus the surface registry that keeps
// the model's surface count linear in distinct coordinates.
//
// What:
//
//   - Surface: an immutable quadric boundary (axis-aligned plane, z-axis
//     cylinder, or general rotated plane) with a signed evaluation function.
//   - Region: a boolean half-space expression (Inside/Outside, All, Any,
//     Not) with exact point-membership evaluation, so the non-overlap and
//     no-gap invariants of a universe can be checked by sampling.
//   - Cell: a region with a fill (a material, a universe, or a lattice).
//   - Universe: an ordered, reusable collection of cells.
//   - RectLattice: a uniform 2-D array of universe references with an
//     outer fallback universe.
//   - Registry: canonicalizes single-coefficient surfaces by rounded
//     coefficient so that numerically identical boundaries anywhere in the
//     build resolve to the same Surface instance.
//
// Why:
//
//   - A full-core model instantiates the same pin designs tens of
//     thousands of times; without coefficient-keyed surface reuse the
//     surface and region graphs grow combinatorially instead of linearly.
//
// Conventions:
//
//   - "Inside" a surface is the negative side of its evaluation function
//     (x < x0 for an x-plane, r < R for a cylinder). A point exactly on a
//     surface belongs to the positive side, which makes adjacent
//     half-space cells closed-open and prevents double counting.
//   - Regions are immutable trees; sub-expressions may be shared freely.
//
// All construction is single-threaded; nothing here locks.
package csg
