// Package pwr builds the repeating structures of a pressurized-water
// reactor as csg universes: concentric-ring pin cells, spacer-gridded
// pins and lattices, axially stacked fuel assemblies with nozzles, the
// core baffle, and neutron pads.
//
// What:
//
//   - BuildPinCell: ring radii + fills → one reusable pin universe.
//   - SpacerGrid / Gridder: strap thickness solved from mass, density and
//     height, then wrapped around existing pins and lattices; every
//     derived variant is cached by (source id, grid key) and never
//     rebuilt.
//   - Assembly: a state machine over the axial elevation axis that stacks
//     lattice layers, interleaves gridded layers at spacer elevations,
//     caps the stack with smeared-material nozzles, and closes it with
//     bounding walls and an unbounded moderator cell.
//   - Baffle: traces the outer boundary of an irregular core occupancy
//     map into one unioned region of steel straps.
//   - NeutronPads: angular wedges cut from a vessel ring by rotated-plane
//     pairs.
//
// Why:
//
//   - A core places the same assembly design in dozens of locations and
//     the same pin design in tens of thousands; building each shape once
//     and sharing it by reference is what keeps the model tractable.
//
// Every builder obtains axis-aligned surfaces through a csg.Registry and
// ids through an ident.Counter, both threaded explicitly; nothing here
// holds global state. Construction is single-threaded and deterministic.
//
// Errors are sentinel-based and validation is front-loaded: an assembly
// reports every missing field in one error rather than one at a time.
package pwr
