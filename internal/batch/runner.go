package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"romsort/internal/logging"
	"romsort/internal/matching"
)

// nearMissLimit caps the candidates carried on not-found items.
const nearMissLimit = 3

// Observer receives advisory progress and status events while a batch runs.
// Events are fire-and-forget notifications from the worker; implementations
// must not block. They never affect matching outcomes.
type Observer interface {
	Progress(current, total int)
	Status(message string)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) Progress(int, int) {}

func (NopObserver) Status(string) {}

// Mover is the relocation primitive the environment supplies.
type Mover interface {
	Move(ctx context.Context, sourcePath, targetDir string) (string, error)
}

// RunnerConfig carries the collaborators and per-batch settings for a Runner.
type RunnerConfig struct {
	SourceDir string
	TargetDir string
	Rules     matching.RuleSet
	Mover     Mover
	Observer  Observer
	Logger    *slog.Logger
	// DryRun classifies and reports without relocating anything.
	DryRun bool
}

// Runner processes one ordered list of reference names against one source
// directory. It is single-use: construct a fresh Runner per batch so the
// rule snapshot can never change mid-batch.
type Runner struct {
	cfg    RunnerConfig
	logger *slog.Logger
	stop   atomic.Bool
}

// NewRunner constructs a batch runner. A nil Observer or Logger is replaced
// with a no-op implementation.
func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(cfg.Logger, "batch"),
	}
}

// Stop requests cooperative cancellation. The in-flight item finishes; the
// loop exits before starting the next one.
func (r *Runner) Stop() {
	r.stop.Store(true)
}

// Run processes the reference names in order and returns the full report.
// Run never fails as a whole: every error degrades to a per-item outcome and
// the report is produced even when cancelled or when every item failed.
func (r *Runner) Run(ctx context.Context, referenceNames []string) *Report {
	report := &Report{
		SourceDir: r.cfg.SourceDir,
		TargetDir: r.cfg.TargetDir,
		StartedAt: time.Now().UTC(),
		DryRun:    r.cfg.DryRun,
		Items:     make([]ItemResult, 0, len(referenceNames)),
	}

	total := len(referenceNames)
	listingErrLogged := false
	for idx, raw := range referenceNames {
		if r.stop.Load() || ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		// Legacy reference lists terminate every entry with a period.
		name := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), "."))

		r.cfg.Observer.Status(fmt.Sprintf("Processing: %s", name))
		r.cfg.Observer.Progress(idx+1, total)

		files, err := r.listSourceFiles()
		if err != nil {
			wrapped := Wrap(ErrDirectoryUnreadable, "batch", "list source", r.cfg.SourceDir, err)
			if !listingErrLogged {
				r.logger.Error("source directory unreadable", logging.Args(logging.Error(wrapped))...)
				listingErrLogged = true
			}
			report.Items = append(report.Items, ItemResult{
				ReferenceName: name,
				Outcome:       OutcomeForError(wrapped),
				Detail:        "source directory unreadable",
			})
			continue
		}

		report.Items = append(report.Items, r.processItem(ctx, name, files))
	}

	report.FinishedAt = time.Now().UTC()
	r.logger.Info("batch finished",
		logging.Args(
			logging.Int("moved", report.Moved()),
			logging.Int("failed", report.Failed()),
			logging.Int("not_found", report.NotFound()),
			logging.Bool("cancelled", report.Cancelled),
			logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
		)...)
	return report
}

func (r *Runner) processItem(ctx context.Context, name string, files []string) ItemResult {
	result := matching.SelectBest(name, files, r.cfg.Rules)

	switch {
	case result.HasWinner():
		item := ItemResult{
			ReferenceName: name,
			MatchedFile:   result.Winner,
		}
		if r.cfg.DryRun {
			item.Outcome = OutcomeMoved
			item.Detail = "dry run, file not moved"
			return item
		}
		sourcePath := filepath.Join(r.cfg.SourceDir, result.Winner)
		if _, err := r.cfg.Mover.Move(ctx, sourcePath, r.cfg.TargetDir); err != nil {
			wrapped := Wrap(ErrRelocation, "batch", "move", result.Winner, err)
			r.logger.Warn("relocation failed", logging.Args(logging.Error(wrapped))...)
			item.Outcome = OutcomeForError(wrapped)
			item.Detail = err.Error()
			return item
		}
		r.logger.Info("moved",
			logging.Args(logging.String("reference", name), logging.String("file", result.Winner))...)
		item.Outcome = OutcomeMoved
		return item

	case result.AllRejected():
		return ItemResult{
			ReferenceName: name,
			Outcome:       OutcomeRejected,
			Detail:        fmt.Sprintf("%d candidate(s), all rejected by rules", len(result.Candidates)),
			NearMisses:    topCandidates(result.Candidates),
		}

	default:
		return ItemResult{
			ReferenceName: name,
			Outcome:       OutcomeNotFound,
			Detail:        "no filename contained the reference name",
		}
	}
}

// listSourceFiles reads the source directory fresh, skipping subdirectories.
// os.ReadDir returns entries sorted by filename, which doubles as the
// documented tie-break order for equal scores.
func (r *Runner) listSourceFiles() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func topCandidates(candidates []matching.ScoredCandidate) []matching.ScoredCandidate {
	if len(candidates) <= nearMissLimit {
		return candidates
	}
	return candidates[:nearMissLimit]
}
