package renderers

import "errors"

// Errors returned by registry operations.
var (
	// ErrRendererNotFound is returned by Find when no renderer is
	// registered under the requested id.
	ErrRendererNotFound = errors.New("renderers: renderer not found")

	// ErrDuplicateRenderer is returned by Register when the id is
	// already taken.
	ErrDuplicateRenderer = errors.New("renderers: duplicate renderer id")
)
