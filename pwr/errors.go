package pwr

import "errors"

// Sentinel errors for PWR structure construction.
var (
	// ErrRingMismatch indicates pin-cell radii and fill lists of different
	// lengths, or empty lists.
	ErrRingMismatch = errors.New("pwr: ring radii and fills must pair up")
	// ErrRadiiOrder indicates pin-cell radii that are not strictly
	// ascending and positive.
	ErrRadiiOrder = errors.New("pwr: ring radii must be positive and strictly ascending")
	// ErrNilFill indicates a missing ring or moderator fill.
	ErrNilFill = errors.New("pwr: nil fill")
	// ErrEmptyUniverse indicates a pin universe with no cells was handed
	// to the gridder.
	ErrEmptyUniverse = errors.New("pwr: universe has no cells")

	// ErrGridConfig indicates non-positive spacer-grid parameters.
	ErrGridConfig = errors.New("pwr: invalid spacer grid parameters")
	// ErrGridDiscriminant indicates the strap-thickness solve has no real
	// root: too much strap mass for the available pitch.
	ErrGridDiscriminant = errors.New("pwr: spacer mass inconsistent with pitch")

	// ErrNozzleConfig indicates non-positive nozzle parameters.
	ErrNozzleConfig = errors.New("pwr: invalid nozzle parameters")
	// ErrNozzleVolume indicates the nozzle material alone exceeds the
	// nozzle region volume.
	ErrNozzleVolume = errors.New("pwr: nozzle material volume exceeds region volume")

	// ErrAssemblyConfig indicates one or more missing or invalid required
	// assembly fields; the message enumerates all of them.
	ErrAssemblyConfig = errors.New("pwr: incomplete assembly")
	// ErrElevationCount indicates len(lattice elevations) != len(lattices)+1.
	ErrElevationCount = errors.New("pwr: lattice elevation count must be lattice count + 1")
	// ErrElevationOrder indicates lattice elevations that are not strictly
	// ascending.
	ErrElevationOrder = errors.New("pwr: lattice elevations must be strictly ascending")
	// ErrSpacerCount indicates len(spacer midpoints) != len(spacers).
	ErrSpacerCount = errors.New("pwr: spacer midpoint count must equal spacer count")
	// ErrNozzleFit indicates a nozzle whose height does not meet the
	// lattice stack it is supposed to cap.
	ErrNozzleFit = errors.New("pwr: nozzle height does not meet lattice elevations")

	// ErrBaffleConfig indicates non-positive baffle thickness, a negative
	// gap, or a gap reaching the assembly half-pitch.
	ErrBaffleConfig = errors.New("pwr: invalid baffle parameters")
	// ErrBaffleMap indicates an empty or fully unoccupied core map.
	ErrBaffleMap = errors.New("pwr: core map has no occupied positions")

	// ErrPadConfig indicates invalid neutron-pad parameters (pad count,
	// arc length, or combined arc exceeding a full circle).
	ErrPadConfig = errors.New("pwr: invalid neutron pad parameters")
)
