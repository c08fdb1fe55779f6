package batch

import (
	"time"

	"romsort/internal/matching"
)

// Outcome classifies the result of processing one reference name.
type Outcome string

const (
	// OutcomeMoved means a winner was found and relocated.
	OutcomeMoved Outcome = "moved"
	// OutcomeFailed means a winner was found but relocation failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeRejected means files matched but every candidate was rejected.
	OutcomeRejected Outcome = "rejected"
	// OutcomeNotFound means no file contained any variant substring.
	OutcomeNotFound Outcome = "not_found"
)

// ItemResult records the outcome for one reference name.
type ItemResult struct {
	ReferenceName string
	Outcome       Outcome
	// MatchedFile is the winning filename for moved/failed outcomes.
	MatchedFile string
	// Detail carries the relocation error or a not-found explanation.
	Detail string
	// NearMisses holds the top-ranked candidates when nothing was moved,
	// for diagnostics.
	NearMisses []matching.ScoredCandidate
}

// Report is the final structured outcome of a batch, complete even when the
// batch was cancelled partway.
type Report struct {
	SourceDir  string
	TargetDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	Cancelled  bool
	DryRun     bool
	Items      []ItemResult
}

// Moved counts successfully relocated items.
func (r *Report) Moved() int { return r.count(OutcomeMoved) }

// Failed counts items whose relocation failed.
func (r *Report) Failed() int { return r.count(OutcomeFailed) }

// NotFound counts items with no selectable candidate, whether rejected or
// entirely unmatched.
func (r *Report) NotFound() int {
	return r.count(OutcomeRejected) + r.count(OutcomeNotFound)
}

func (r *Report) count(outcome Outcome) int {
	n := 0
	for _, item := range r.Items {
		if item.Outcome == outcome {
			n++
		}
	}
	return n
}
