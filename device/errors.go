package device

import "errors"

// Sentinel errors for the device package.
var (
	// ErrPlotNotFound is returned when a plot id or slot does not name
	// a stored page.
	ErrPlotNotFound = errors.New("device: plot not found")
)
