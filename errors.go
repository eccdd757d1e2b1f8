package streamnet

import "errors"

// Error kinds for the engine's external interface (spec §7). Callers
// branch with errors.Is; none of these are ever wrapped with %w at the
// definition site, only joined with lower-level context via errors.Join.
var (
	// ErrBadInputShape is returned when a stream feature is not a
	// polyline, or a lake feature is not a polygon.
	ErrBadInputShape = errors.New("streamnet: input feature has the wrong shape type")
	// ErrIO is returned when a PolylineReader or LakeReader read fails.
	ErrIO = errors.New("streamnet: input read failed")
	// ErrNoOutlets is returned when outlet detection stages no seeds at
	// all. Unlike the other kinds, the run still completes and its
	// output is still valid: every link simply stays unoriented
	// (Outlet == -1, DISCONT == 1).
	ErrNoOutlets = errors.New("streamnet: no outlet seeds detected")
	// ErrOutOfMemory is returned when the input exceeds Config's
	// configured vertex ceiling. Output is suppressed.
	ErrOutOfMemory = errors.New("streamnet: input exceeds configured memory ceiling")
	// ErrCancelled is returned when the caller's Reporter or context
	// requested cancellation. Output is suppressed.
	ErrCancelled = errors.New("streamnet: run cancelled")
)
