package isom

import "errors"

// Sentinel errors for the ISOM subsystem. See spec §7 for the propagation
// policy: the engine never retries, bounds failures on valid inputs are
// unreachable and treated as programmer errors, and dataset load failures
// always propagate straight to the caller.
var (
	// ErrMissingAsset is returned when a tileset's backing asset file is
	// absent. The loader returns this without installing a tileset.
	ErrMissingAsset = errors.New("isom: tileset asset missing")

	// ErrCorruptAsset is returned when an asset's size is not a multiple
	// of its fixed record length.
	ErrCorruptAsset = errors.New("isom: tileset asset corrupt")

	// ErrOutOfRange is returned by direct isom-rect index accessors when
	// the index falls past the end of the isom-rect grid.
	ErrOutOfRange = errors.New("isom: isom rect index out of range")

	// ErrInvalidPlacement is returned by PlaceTerrain when the diamond or
	// terrain type given is not valid for placement.
	ErrInvalidPlacement = errors.New("isom: invalid terrain placement")
)
