package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"romsort/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent batch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			summaries, err := store.RecentBatches(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list batches: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No batches recorded yet.")
				return nil
			}

			headers := []string{"ID", "Finished", "Source", "Target", "Moved", "Failed", "Not Found", "Flags"}
			rows := make([][]string, 0, len(summaries))
			for _, summary := range summaries {
				rows = append(rows, []string{
					shortID(summary.ID),
					summary.FinishedAt.Local().Format(time.DateTime),
					summary.SourceDir,
					summary.TargetDir,
					strconv.Itoa(summary.Moved),
					strconv.Itoa(summary.Failed),
					strconv.Itoa(summary.NotFound),
					batchFlags(summary),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, 5, 6, 7))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of batches to list")
	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <batch id>",
		Short: "Show the per-name outcomes of one batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			batchID, err := resolveBatchID(cmd, store, args[0])
			if err != nil {
				return err
			}

			items, err := store.BatchItems(cmd.Context(), batchID)
			if err != nil {
				return fmt.Errorf("load batch items: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "No items recorded for batch %s.\n", batchID)
				return nil
			}

			headers := []string{"#", "Reference", "Outcome", "File / Detail"}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				detail := item.MatchedFile
				if detail == "" {
					detail = item.Detail
				}
				rows = append(rows, []string{
					strconv.Itoa(item.Position + 1),
					item.ReferenceName,
					string(item.Outcome),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, 1))
			return nil
		},
	}
}

// resolveBatchID accepts a full UUID or an unambiguous prefix of one.
func resolveBatchID(cmd *cobra.Command, store *history.Store, arg string) (string, error) {
	summaries, err := store.RecentBatches(cmd.Context(), 1000)
	if err != nil {
		return "", fmt.Errorf("list batches: %w", err)
	}
	var match string
	for _, summary := range summaries {
		if summary.ID == arg {
			return arg, nil
		}
		if len(arg) >= 4 && len(arg) < len(summary.ID) && summary.ID[:len(arg)] == arg {
			if match != "" {
				return "", fmt.Errorf("batch id prefix %q is ambiguous", arg)
			}
			match = summary.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no batch found with id %q", arg)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func batchFlags(summary history.BatchSummary) string {
	switch {
	case summary.Cancelled && summary.DryRun:
		return "cancelled, dry-run"
	case summary.Cancelled:
		return "cancelled"
	case summary.DryRun:
		return "dry-run"
	default:
		return ""
	}
}
