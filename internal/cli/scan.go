package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/kilupskalvis/gitrefs/internal/core"
	"github.com/kilupskalvis/gitrefs/internal/models"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir...]",
	Short: "Summarize several repositories",
	Long: `Read the state of several repositories in parallel and print one line for
each, in the order given.

Examples:
  gitrefs scan ~/src/*          # One line per checkout
  gitrefs scan -j 2 a b c       # Read at most two repositories at a time`,
	Run: runScan,
}

var scanWorkers int

func init() {
	scanCmd.Flags().IntVarP(&scanWorkers, "jobs", "j", 0, "Repositories to read in parallel (default: scan_workers setting)")
}

func runScan(cmd *cobra.Command, args []string) {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	workers := settings.ScanWorkers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := core.Scan(ctx, dirs, workers, logger)
	if err != nil {
		exitError("scan interrupted: %v", err)
	}

	width := 0
	for _, r := range results {
		width = max(width, len(r.Path))
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	failed := 0
	for _, r := range results {
		fmt.Printf("%-*s  ", width, r.Path)
		if r.Err != nil {
			failed++
			red.Printf("error: %v\n", r.Err)
			continue
		}

		snap := r.Snapshot
		stateColor := green
		if snap.State != models.StateNormal {
			stateColor = yellow
		}
		stateColor.Printf("%-8s", snap.State)

		switch {
		case snap.CurrentBranch != nil:
			fmt.Printf("  %s", snap.CurrentBranch.Name)
		case snap.CurrentRevision != "":
			fmt.Printf("  (detached)")
		default:
			fmt.Printf("  (no commits)")
		}
		if snap.CurrentRevision != "" {
			fmt.Printf("  %s", shortID(snap.CurrentRevision))
		}
		fmt.Printf("  %d local, %d remote\n", len(snap.Branches.Local()), len(snap.Branches.Remote()))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
