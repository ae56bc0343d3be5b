// Package vera reads VERA common-input decks in their XML form.
//
// A deck is one big ParameterList of ParameterLists: the CORE block
// carries the global materials, the core maps, the vessel, baffle and
// boundary conditions; the ASSEMBLIES block carries one list per fuel
// assembly design with its pin cells, cell maps, spacer grids and
// nozzles. Parse extracts the blocks this converter consumes into typed
// records and validates list pairings; everything else in the deck is
// ignored. The package never logs and reports every problem as an
// error.
package vera
