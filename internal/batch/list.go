package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseReferenceList reads reference names from r, one per line, preserving
// order. Lines are trimmed and blank lines skipped; trailing terminator
// periods are left in place for the runner to strip.
func ParseReferenceList(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read reference list: %w", err)
	}
	return names, nil
}
