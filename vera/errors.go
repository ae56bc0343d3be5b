package vera

import "errors"

// Sentinel errors for deck reading.
var (
	// ErrDeck indicates XML that does not parse or a deck missing a block
	// the converter requires.
	ErrDeck = errors.New("vera: malformed deck")
	// ErrMissingParam indicates a required parameter absent from its list.
	ErrMissingParam = errors.New("vera: missing parameter")
	// ErrBadValue indicates a parameter value that does not parse as its
	// expected type.
	ErrBadValue = errors.New("vera: unparsable parameter value")
	// ErrFractionCount indicates material nuclide name and fraction lists
	// of different lengths.
	ErrFractionCount = errors.New("vera: nuclide names and fractions must pair up")
	// ErrMapShape indicates map tokens that form neither a full square nor
	// an octant of the declared size.
	ErrMapShape = errors.New("vera: map tokens do not form a square or octant")
)
