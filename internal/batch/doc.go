// Package batch drives the match selector over an ordered list of reference
// names, relocating each winning file and classifying every item into
// exactly one outcome: moved, failed, not found with rejected candidates, or
// not found with no candidates.
//
// The runner executes sequentially on the calling goroutine, one reference
// name at a time, and re-reads the source directory listing per item so
// earlier relocations cannot leave stale candidates in view. Cancellation is
// cooperative and checked at reference-name granularity; an in-flight
// match-and-move completes before the loop observes a stop request.
// Completed moves are never undone.
package batch
