package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/gitrefs/internal/core"
	"github.com/kilupskalvis/gitrefs/internal/models"
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "List branches",
	Long: `List the branches of the repository.

Without flags, lists local branches and marks the current one with '*'.

Examples:
  gitrefs branch        # List local branches
  gitrefs branch -r     # List remote-tracking branches
  gitrefs branch -a -v  # List all branches with their commits`,
	Args: cobra.NoArgs,
	Run:  runBranch,
}

var (
	branchRemotes bool
	branchAll     bool
	branchVerbose bool
)

func init() {
	branchCmd.Flags().BoolVarP(&branchRemotes, "remotes", "r", false, "List remote-tracking branches")
	branchCmd.Flags().BoolVarP(&branchAll, "all", "a", false, "List local and remote-tracking branches")
	branchCmd.Flags().BoolVarP(&branchVerbose, "verbose", "v", false, "Show the commit of each branch")
}

func runBranch(cmd *cobra.Command, args []string) {
	c := initContext()

	filter := core.BranchesLocal
	switch {
	case branchAll:
		filter = core.BranchesAll
	case branchRemotes:
		filter = core.BranchesRemote
	}

	list := core.ListBranches(c.Repo, filter)
	if len(list.Local) == 0 && len(list.Remote) == 0 {
		fmt.Println("No branches yet.")
		return
	}

	// Names are padded only when commits follow them.
	width := 0
	if branchVerbose {
		for _, b := range list.Local {
			width = max(width, len(b.ShortName()))
		}
		for _, b := range list.Remote {
			width = max(width, len(remoteDisplayName(b, branchAll)))
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	faint := color.New(color.Faint)

	for _, b := range list.Local {
		name := b.ShortName()
		if list.IsCurrent(b) {
			green.Printf("* %s", pad(name, width))
		} else {
			fmt.Printf("  %s", pad(name, width))
		}
		if branchVerbose {
			fmt.Printf(" %s", b.Hash.Short())
		}
		fmt.Println()
	}

	for _, b := range list.Remote {
		red.Printf("  %s", pad(remoteDisplayName(b, branchAll), width))
		if branchVerbose {
			fmt.Printf(" %s", b.CommitHash().Short())
			if std, ok := b.(models.StandardRemoteBranch); ok && !c.Repo.IsConfiguredRemote(std.Remote.Name) {
				faint.Print(" (no remote configured)")
			}
		}
		fmt.Println()
	}
}

// remoteDisplayName returns "origin/main", or "remotes/origin/main" when
// listed together with local branches.
func remoteDisplayName(b models.RemoteBranch, withPrefix bool) string {
	name := strings.TrimPrefix(b.FullName(), "refs/")
	if withPrefix {
		return name
	}
	return strings.TrimPrefix(name, "remotes/")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
