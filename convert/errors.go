package convert

import "errors"

// Sentinel errors for case conversion.
var (
	// ErrNilCase indicates a Session constructed without a parsed case.
	ErrNilCase = errors.New("convert: nil case")
	// ErrNoModerator indicates a deck without the special "mod" material.
	ErrNoModerator = errors.New("convert: deck defines no mod material")
	// ErrUnknownMaterial indicates a material key that resolves to no mat
	// card under any suffix combination.
	ErrUnknownMaterial = errors.New("convert: unknown material")
	// ErrUnknownAssembly indicates a core map label with no ASSEMBLIES
	// entry.
	ErrUnknownAssembly = errors.New("convert: unknown assembly")
	// ErrUnknownCell indicates a cell map token with no cell card in its
	// assembly.
	ErrUnknownCell = errors.New("convert: unknown cell key")
	// ErrUnknownGrid indicates a grid map token with no spacer grid card.
	ErrUnknownGrid = errors.New("convert: unknown spacer grid key")
	// ErrVesselConfig indicates a deck without usable vessel rings.
	ErrVesselConfig = errors.New("convert: missing or invalid vessel description")
)
