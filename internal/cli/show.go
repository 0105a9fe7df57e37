package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kilupskalvis/gitrefs/internal/refs"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a full snapshot of the repository",
	Long: `Show the repository state, current revision, current branch, and every
local and remote-tracking branch.

Examples:
  gitrefs show          # Human-readable output
  gitrefs show --json   # Machine-readable output`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the snapshot as JSON")
}

func runShow(cmd *cobra.Command, args []string) {
	c := initContext()
	snap := c.Repo.Snapshot()

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			exitError("failed to encode snapshot: %v", err)
		}
		return
	}

	printSnapshot(snap)
}

func printSnapshot(snap *refs.Snapshot) {
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	yellow.Printf("git dir  %s\n", snap.GitDir)
	fmt.Printf("state    %s\n", snap.State)
	if snap.CurrentBranch != nil {
		fmt.Print("branch   ")
		green.Println(snap.CurrentBranch.Name)
	}
	if snap.CurrentRevision != "" {
		fmt.Printf("revision %s\n", snap.CurrentRevision)
	}

	local := snap.Branches.Local()
	fmt.Printf("\nLocal branches (%d):\n", len(local))
	for _, b := range local {
		fmt.Printf("  %s %s\n", b.Hash.Short(), b.ShortName())
	}

	remote := snap.Branches.Remote()
	fmt.Printf("\nRemote-tracking branches (%d):\n", len(remote))
	for _, b := range remote {
		fmt.Printf("  %s ", b.CommitHash().Short())
		red.Println(remoteDisplayName(b, false))
	}
}
