// Package emit provides §4.7's RecordEmitter (turning the Link arena's
// final field values into wire tuples, and the node events accumulated
// during flow orientation into sequentially-numbered records) and the
// narrow Reporter interface called out in spec §9 as the replacement for
// the original's inheritance-based plugin host: Progress, Feedback,
// ReturnRecord, CancelRequested.
package emit
