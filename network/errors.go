package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrDegeneratePart indicates a polyline part with fewer than two
	// vertices, which cannot form an Endpoint pair.
	ErrDegeneratePart = errors.New("network: polyline part has fewer than two vertices")
	// ErrDegenerateLake indicates a lake polygon with fewer than three
	// vertices.
	ErrDegenerateLake = errors.New("network: lake polygon has fewer than three vertices")
	// ErrCancelled indicates FormNodes was stopped by a CancelRequested
	// poll before every endpoint was visited.
	ErrCancelled = errors.New("network: cancelled")
)
