package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"romsort/internal/matching"
	"romsort/internal/textutil"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var sourceDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "match <reference name>",
		Short: "Show how a single reference name scores against the source directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyDirOverride(&cfg.Paths.SourceDir, sourceDir); err != nil {
				return fmt.Errorf("resolve source dir: %w", err)
			}
			if cfg.Paths.SourceDir == "" {
				return fmt.Errorf("paths.source_dir must be set (or pass --source)")
			}

			files, err := listFiles(cfg.Paths.SourceDir)
			if err != nil {
				return fmt.Errorf("read source directory: %w", err)
			}

			name := args[0]
			result := matching.SelectBest(name, files, cfg.RuleSet())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(matchView(name, result))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reference: %s\n", name)
			fmt.Fprintf(out, "Variants:  %v\n\n", matching.Variants(name))

			switch {
			case result.HasWinner():
				fmt.Fprintf(out, "Winner: %s (%s)\n\n", result.Winner, textutil.DisplayName(result.Winner))
			case result.AllRejected():
				fmt.Fprintln(out, "All candidates were rejected by the filtering rules.")
				fmt.Fprintln(out)
			default:
				fmt.Fprintln(out, "No candidates matched.")
				return nil
			}

			headers := []string{"#", "File", "Score"}
			rows := make([][]string, 0, len(result.Candidates))
			for i, candidate := range result.Candidates {
				score := strconv.Itoa(candidate.Score)
				if candidate.Rejected() {
					score = "rejected"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), candidate.File, score})
			}
			fmt.Fprintln(out, renderTable(headers, rows, 1, 3))
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "Override the configured source directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the match result as JSON")
	return cmd
}

type candidateView struct {
	File     string `json:"file"`
	Score    int    `json:"score,omitempty"`
	Rejected bool   `json:"rejected"`
}

type matchResultView struct {
	Reference  string          `json:"reference"`
	Variants   []string        `json:"variants"`
	Winner     string          `json:"winner,omitempty"`
	Candidates []candidateView `json:"candidates"`
}

func matchView(name string, result matching.MatchResult) matchResultView {
	view := matchResultView{
		Reference: name,
		Variants:  matching.Variants(name),
		Winner:    result.Winner,
	}
	for _, candidate := range result.Candidates {
		cv := candidateView{File: candidate.File, Rejected: candidate.Rejected()}
		if !cv.Rejected {
			cv.Score = candidate.Score
		}
		view.Candidates = append(view.Candidates, cv)
	}
	return view
}

// listFiles returns the plain files in dir in directory order, skipping
// subdirectories.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
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
