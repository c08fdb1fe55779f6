package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romsort/internal/matching"
	"romsort/internal/relocate"
)

type failingMover struct{ err error }

func (m failingMover) Move(context.Context, string, string) (string, error) {
	return "", m.err
}

type recordingObserver struct {
	statuses []string
	progress [][2]int
	onStatus func()
}

func (o *recordingObserver) Progress(current, total int) {
	o.progress = append(o.progress, [2]int{current, total})
}

func (o *recordingObserver) Status(message string) {
	o.statuses = append(o.statuses, message)
	if o.onStatus != nil {
		o.onStatus()
	}
}

func seedSource(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("rom"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	return dir
}

func newTestRunner(t *testing.T, sourceDir, targetDir string) *Runner {
	t.Helper()
	return NewRunner(RunnerConfig{
		SourceDir: sourceDir,
		TargetDir: targetDir,
		Rules:     matching.DefaultRuleSet(),
		Mover:     relocate.New(nil),
	})
}

func TestRunMovesMatchedFile(t *testing.T) {
	sourceDir := seedSource(t, "Super Mario World (USA).sfc")
	targetDir := filepath.Join(t.TempDir(), "sorted")

	runner := newTestRunner(t, sourceDir, targetDir)
	report := runner.Run(context.Background(), []string{"Super Mario World (USA)."})

	if report.Moved() != 1 || report.Failed() != 0 || report.NotFound() != 0 {
		t.Fatalf("tally = %d/%d/%d, want 1/0/0", report.Moved(), report.Failed(), report.NotFound())
	}
	if _, err := os.Stat(filepath.Join(targetDir, "Super Mario World (USA).sfc")); err != nil {
		t.Errorf("moved file missing: %v", err)
	}
	item := report.Items[0]
	if item.Outcome != OutcomeMoved || item.MatchedFile != "Super Mario World (USA).sfc" {
		t.Errorf("item = %+v", item)
	}
	// Trailing terminator period stripped before matching.
	if item.ReferenceName != "Super Mario World (USA)" {
		t.Errorf("reference name = %q, want terminator stripped", item.ReferenceName)
	}
}

func TestRunPrefersHigherRegion(t *testing.T) {
	sourceDir := seedSource(t,
		"Game (Europe).bin",
		"Game (Japan).bin",
		"Game (USA).bin",
	)
	targetDir := t.TempDir()

	runner := newTestRunner(t, sourceDir, targetDir)
	report := runner.Run(context.Background(), []string{"Game."})

	if got := report.Items[0].MatchedFile; got != "Game (Europe).bin" {
		t.Errorf("matched = %q, want Game (Europe).bin", got)
	}
	// The Japan-only file must remain in the source directory.
	if _, err := os.Stat(filepath.Join(sourceDir, "Game (Japan).bin")); err != nil {
		t.Errorf("japan release should be untouched: %v", err)
	}
}

func TestRunDistinguishesNotFoundKinds(t *testing.T) {
	sourceDir := seedSource(t, "Game (Japan).bin", "Other (USA).bin")
	runner := newTestRunner(t, sourceDir, t.TempDir())

	report := runner.Run(context.Background(), []string{"Game.", "Unrelated Title."})

	rejectedItem := report.Items[0]
	if rejectedItem.Outcome != OutcomeRejected {
		t.Errorf("outcome = %q, want rejected", rejectedItem.Outcome)
	}
	if len(rejectedItem.NearMisses) == 0 {
		t.Error("rejected item carries no near misses")
	}

	missingItem := report.Items[1]
	if missingItem.Outcome != OutcomeNotFound {
		t.Errorf("outcome = %q, want not_found", missingItem.Outcome)
	}
	if len(missingItem.NearMisses) != 0 {
		t.Errorf("unmatched item carries near misses: %v", missingItem.NearMisses)
	}
	if report.NotFound() != 2 {
		t.Errorf("NotFound() = %d, want 2", report.NotFound())
	}
}

func TestRunRelocationFailure(t *testing.T) {
	sourceDir := seedSource(t, "Game (USA).bin")
	runner := NewRunner(RunnerConfig{
		SourceDir: sourceDir,
		TargetDir: t.TempDir(),
		Rules:     matching.DefaultRuleSet(),
		Mover:     failingMover{err: errors.New("disk full")},
	})

	report := runner.Run(context.Background(), []string{"Game."})
	item := report.Items[0]
	if item.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %q, want failed", item.Outcome)
	}
	if !strings.Contains(item.Detail, "disk full") {
		t.Errorf("detail = %q, want the mover error", item.Detail)
	}
	if report.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", report.Failed())
	}
}

func TestRunDestinationCollisionIsFailure(t *testing.T) {
	sourceDir := seedSource(t, "Game (USA).bin")
	targetDir := seedSource(t, "Game (USA).bin")

	runner := newTestRunner(t, sourceDir, targetDir)
	report := runner.Run(context.Background(), []string{"Game."})

	item := report.Items[0]
	if item.Outcome != OutcomeFailed {
		t.Errorf("outcome = %q, want failed", item.Outcome)
	}
	if !strings.Contains(item.Detail, "already exists") {
		t.Errorf("detail = %q, want collision error", item.Detail)
	}
}

func TestRunUnreadableSourceDirectory(t *testing.T) {
	runner := newTestRunner(t, filepath.Join(t.TempDir(), "missing"), t.TempDir())
	report := runner.Run(context.Background(), []string{"One.", "Two."})

	if len(report.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(report.Items))
	}
	for _, item := range report.Items {
		if item.Outcome != OutcomeNotFound {
			t.Errorf("outcome = %q, want not_found", item.Outcome)
		}
	}
}

func TestRunCooperativeCancellation(t *testing.T) {
	sourceDir := seedSource(t, "One (USA).bin", "Two (USA).bin")
	targetDir := t.TempDir()
	runner := NewRunner(RunnerConfig{
		SourceDir: sourceDir,
		TargetDir: targetDir,
		Rules:     matching.DefaultRuleSet(),
		Mover:     relocate.New(nil),
	})
	observer := &recordingObserver{}
	observer.onStatus = func() { runner.Stop() }
	runner.cfg.Observer = observer

	report := runner.Run(context.Background(), []string{"One.", "Two."})

	if !report.Cancelled {
		t.Error("report not marked cancelled")
	}
	// The in-flight item completes; the second never starts.
	if len(report.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(report.Items))
	}
	if report.Items[0].Outcome != OutcomeMoved {
		t.Errorf("outcome = %q, want moved", report.Items[0].Outcome)
	}
	if _, err := os.Stat(filepath.Join(sourceDir, "Two (USA).bin")); err != nil {
		t.Errorf("second file should be untouched: %v", err)
	}
}

func TestRunDryRun(t *testing.T) {
	sourceDir := seedSource(t, "Game (USA).bin")
	runner := NewRunner(RunnerConfig{
		SourceDir: sourceDir,
		TargetDir: t.TempDir(),
		Rules:     matching.DefaultRuleSet(),
		Mover:     failingMover{err: errors.New("must not be called")},
		DryRun:    true,
	})

	report := runner.Run(context.Background(), []string{"Game."})
	if report.Items[0].Outcome != OutcomeMoved {
		t.Errorf("outcome = %q, want moved", report.Items[0].Outcome)
	}
	if _, err := os.Stat(filepath.Join(sourceDir, "Game (USA).bin")); err != nil {
		t.Errorf("dry run moved a real file: %v", err)
	}
}

func TestRunProgressEvents(t *testing.T) {
	sourceDir := seedSource(t, "Game (USA).bin")
	runner := NewRunner(RunnerConfig{
		SourceDir: sourceDir,
		TargetDir: t.TempDir(),
		Rules:     matching.DefaultRuleSet(),
		Mover:     relocate.New(nil),
		DryRun:    true,
	})
	observer := &recordingObserver{}
	runner.cfg.Observer = observer

	runner.Run(context.Background(), []string{"Game.", "Missing."})

	if len(observer.progress) != 2 {
		t.Fatalf("progress events = %d, want 2", len(observer.progress))
	}
	if observer.progress[0] != [2]int{1, 2} || observer.progress[1] != [2]int{2, 2} {
		t.Errorf("progress = %v", observer.progress)
	}
	if observer.statuses[0] != "Processing: Game" {
		t.Errorf("status = %q", observer.statuses[0])
	}
}
