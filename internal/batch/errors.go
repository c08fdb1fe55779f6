package batch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryUnreadable marks failures listing the source directory.
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	// ErrRelocation marks failures moving a matched file.
	ErrRelocation = errors.New("relocation error")
	// ErrNoMatch marks items with no usable candidate.
	ErrNoMatch = errors.New("no match")
)

// Wrap builds an error message that includes item context while tagging it
// with the provided marker for later outcome classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrRelocation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// OutcomeForError maps an item error to the outcome the report should carry.
func OutcomeForError(err error) Outcome {
	switch {
	case errors.Is(err, ErrDirectoryUnreadable), errors.Is(err, ErrNoMatch):
		return OutcomeNotFound
	default:
		return OutcomeFailed
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "batch failure"
	}
	return strings.Join(parts, ": ")
}
