package mrtree2d

import "errors"

// Error kinds surfaced at the boundary of the core. The core is total
// given valid arguments and never originates I/O errors; these are the
// usage- and input-shape errors it does check.
var (
	// ErrEmptyDataset is returned by BulkLoad when given no points.
	ErrEmptyDataset = errors.New("mrtree2d: empty dataset")
	// ErrInvalidCapacity is returned by BulkLoad when capacity <= 0.
	ErrInvalidCapacity = errors.New("mrtree2d: capacity must be positive")
	// ErrInvalidRectangle is returned when a query rectangle has lx > ux
	// or ly > uy.
	ErrInvalidRectangle = errors.New("mrtree2d: invalid rectangle")
	// ErrVerificationMismatch is returned by VerificationResult.Check when
	// the recomputed digest does not match the trusted root digest.
	ErrVerificationMismatch = errors.New("mrtree2d: verification digest mismatch")
)
