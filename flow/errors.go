package flow

import "errors"

// ErrCancelled is returned when the caller's Reporter requests
// cancellation mid-flood (spec §5, §7). No partial mutation to the Link
// arena beyond what has already committed is rolled back by this
// package; package streamnet builds a fresh Graph for each Run and
// discards it, returning no records, when Orient reports cancellation.
var ErrCancelled = errors.New("flow: cancelled")
