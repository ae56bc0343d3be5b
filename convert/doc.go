// Package convert turns a parsed VERA case into one Monte Carlo
// geometry tree.
//
// A Session owns the id counter, the surface registry and the caches
// that keep the output linear in the number of distinct designs:
// materials, pin cells and assemblies are built once per key and
// returned by pointer on every later request. Build composes the core
// lattice, baffle, vessel rings, neutron pads and core plates into a
// single root universe and reports the outer boundary surfaces with
// their boundary conditions applied.
//
// Fatal problems (unknown keys, invalid configuration) come back as
// errors. Geometric consistency findings that do not prevent a build,
// such as a checkerboard baffle corner, are logged through the
// session's slog.Logger and counted.
package convert
