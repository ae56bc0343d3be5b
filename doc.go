// Package veramc compiles VERA common-input reactor decks into
// constructive solid geometry models for Monte Carlo transport.
//
// The module is organized as a pipeline of small packages:
//
//	vera    — XML deck parsing into typed case records
//	ident   — id issuance across the four numbered namespaces
//	csg     — surfaces, regions, cells, universes and lattices
//	mat     — material compositions and smeared mixtures
//	pwr     — reactor components: pin cells, spacer grids, nozzles,
//	          assemblies, core baffle and neutron pads
//	convert — the conversion session tying a parsed case to a bounded
//	          root universe
//
// The cmd/veramc command drives the pipeline from the shell.
//
// Every package is usable on its own: csg and mat know nothing about
// reactors, and pwr knows nothing about VERA decks.
package veramc
