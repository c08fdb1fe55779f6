// Package relocate moves matched files into the target directory. It is the
// single write path of a batch: matching itself never mutates the source
// directory, and each reference name moves at most one file.
package relocate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"romsort/internal/fileutil"
	"romsort/internal/logging"
)

// ErrDestinationExists marks a move that would overwrite a same-name file in
// the target directory. Collisions are reported as failures, never silently
// overwritten or skipped.
var ErrDestinationExists = errors.New("destination file already exists")

// Mover relocates files into a target directory, creating it on demand.
type Mover struct {
	logger *slog.Logger
}

// New constructs a Mover. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Mover {
	return &Mover{logger: logging.NewComponentLogger(logger, "relocate")}
}

// Move relocates sourcePath into targetDir, preserving the base name, and
// returns the destination path. Renames that cross filesystems fall back to
// a verified copy followed by source removal.
func (m *Mover) Move(ctx context.Context, sourcePath, targetDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create target directory %q: %w", targetDir, err)
	}

	target := filepath.Join(targetDir, filepath.Base(sourcePath))
	if _, err := os.Lstat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat destination %q: %w", target, err)
	}

	if err := os.Rename(sourcePath, target); err != nil {
		var linkErr *os.LinkError
		if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
			return "", fmt.Errorf("move %q: %w", sourcePath, err)
		}
		m.logger.Debug("rename crossed filesystems, copying instead",
			logging.Args(logging.String("source", sourcePath), logging.String("target", target))...)
		if err := fileutil.CopyFileVerified(sourcePath, target); err != nil {
			return "", fmt.Errorf("copy %q across filesystems: %w", sourcePath, err)
		}
		if err := os.Remove(sourcePath); err != nil {
			m.logger.Warn("failed to remove source after copy", logging.Args(logging.Error(err))...)
		}
	}

	m.logger.Debug("relocated file",
		logging.Args(logging.String("source", sourcePath), logging.String("target", target))...)
	return target, nil
}
