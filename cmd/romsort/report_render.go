package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"romsort/internal/batch"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderReport prints per-item outcomes followed by a summary table.
func renderReport(out io.Writer, report *batch.Report) {
	colorize := writerIsTerminal(out)

	fmt.Fprintln(out)
	for _, item := range report.Items {
		fmt.Fprintln(out, renderItemLine(item, colorize))
		for _, miss := range item.NearMisses {
			fmt.Fprintf(out, "      near miss: %s\n", miss.File)
		}
	}

	fmt.Fprintln(out)
	headers := []string{"Moved", "Failed", "Not Found", "Cancelled", "Dry Run"}
	rows := [][]string{{
		strconv.Itoa(report.Moved()),
		strconv.Itoa(report.Failed()),
		strconv.Itoa(report.NotFound()),
		yesNo(report.Cancelled),
		yesNo(report.DryRun),
	}}
	fmt.Fprintln(out, renderTable(headers, rows, 1, 2, 3))
}

func renderItemLine(item batch.ItemResult, colorize bool) string {
	label, color := outcomeLabel(item.Outcome)
	detail := item.MatchedFile
	if detail == "" {
		detail = item.Detail
	}
	line := fmt.Sprintf("  %-10s %s", label, item.ReferenceName)
	if detail != "" {
		line = fmt.Sprintf("%s -> %s", line, detail)
	}
	if colorize && color != "" {
		return color + line + ansiReset
	}
	return line
}

func outcomeLabel(outcome batch.Outcome) (string, string) {
	switch outcome {
	case batch.OutcomeMoved:
		return "MOVED", ansiGreen
	case batch.OutcomeFailed:
		return "FAILED", ansiRed
	case batch.OutcomeRejected:
		return "REJECTED", ansiYellow
	case batch.OutcomeNotFound:
		return "NOT FOUND", ansiYellow
	default:
		return strings.ToUpper(string(outcome)), ""
	}
}
