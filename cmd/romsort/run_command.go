package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"romsort/internal/batch"
	"romsort/internal/config"
	"romsort/internal/history"
	"romsort/internal/logging"
	"romsort/internal/relocate"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var listPath string
	var sourceDir string
	var targetDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [reference name ...]",
		Short: "Match each reference name against the source directory and move the winners",
		Long: `Run matches every reference name against the files in the source directory
and moves each winning file into the target directory. Reference names come
from positional arguments, from a list file (--list), or from stdin when
--list is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyDirOverride(&cfg.Paths.SourceDir, sourceDir); err != nil {
				return fmt.Errorf("resolve source dir: %w", err)
			}
			if err := applyDirOverride(&cfg.Paths.TargetDir, targetDir); err != nil {
				return fmt.Errorf("resolve target dir: %w", err)
			}
			if err := cfg.RequireDirectories(); err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Paths.SourceDir); err != nil {
				return fmt.Errorf("source directory: %w", err)
			}

			names, err := collectReferenceNames(cmd, args, listPath)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no reference names given (pass names as arguments or via --list)")
			}

			runID := time.Now().UTC().Format("20060102T150405Z")
			logPath := filepath.Join(cfg.Paths.LogDir, fmt.Sprintf("romsort-%s.log", runID))
			logger, err := ctx.newLogger(logPath)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			lock := flock.New(cfg.LockFilePath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another romsort batch is already running (lock: %s)", cfg.LockFilePath())
			}
			defer func() { _ = lock.Unlock() }()

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			out := cmd.OutOrStdout()
			observer := newRunObserver(out, len(names))
			runner := batch.NewRunner(batch.RunnerConfig{
				SourceDir: cfg.Paths.SourceDir,
				TargetDir: cfg.Paths.TargetDir,
				Rules:     cfg.RuleSet(),
				Mover:     relocate.New(logger),
				Observer:  observer,
				Logger:    logger,
				DryRun:    dryRun,
			})

			report := runner.Run(signalCtx, names)
			observer.finish()

			renderReport(out, report)

			if cfg.Batch.HistoryEnabled {
				store, err := history.Open(cfg.HistoryDBPath())
				if err != nil {
					logger.Warn("open history store", logging.Error(err))
				} else {
					defer store.Close()
					if _, err := store.RecordBatch(cmd.Context(), report); err != nil {
						logger.Warn("record batch history", logging.Error(err))
					}
				}
			}

			if report.Cancelled {
				return fmt.Errorf("batch cancelled after %d of %d names", len(report.Items), len(names))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listPath, "list", "l", "", `File with one reference name per line ("-" for stdin)`)
	cmd.Flags().StringVar(&sourceDir, "source", "", "Override the configured source directory")
	cmd.Flags().StringVar(&targetDir, "target", "", "Override the configured target directory")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report matches without moving any files")
	return cmd
}

func applyDirOverride(dst *string, override string) error {
	override = strings.TrimSpace(override)
	if override == "" {
		return nil
	}
	expanded, err := config.ExpandPath(override)
	if err != nil {
		return err
	}
	*dst = expanded
	return nil
}

// collectReferenceNames merges positional arguments with the --list source.
// Arguments come first, list entries after, preserving input order.
func collectReferenceNames(cmd *cobra.Command, args []string, listPath string) ([]string, error) {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.TrimSpace(arg) != "" {
			names = append(names, arg)
		}
	}

	listPath = strings.TrimSpace(listPath)
	if listPath == "" {
		return names, nil
	}

	if listPath == "-" {
		fromStdin, err := batch.ParseReferenceList(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read reference list from stdin: %w", err)
		}
		return append(names, fromStdin...), nil
	}

	expanded, err := config.ExpandPath(listPath)
	if err != nil {
		return nil, fmt.Errorf("resolve list path: %w", err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open reference list: %w", err)
	}
	defer f.Close()
	fromFile, err := batch.ParseReferenceList(f)
	if err != nil {
		return nil, fmt.Errorf("read reference list %s: %w", expanded, err)
	}
	return append(names, fromFile...), nil
}
