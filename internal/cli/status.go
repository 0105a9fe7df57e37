package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/gitrefs/internal/core"
	"github.com/kilupskalvis/gitrefs/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the checkout state",
	Long: `Show whether HEAD is on a branch or detached, whether a merge or rebase is
in progress, and which commit HEAD points to.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	c := initContext()
	status := core.GetStatus(c.Repo)

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	switch {
	case status.State == models.StateRebasing && status.Branch != nil:
		fmt.Print("Rebasing branch ")
		green.Println(status.Branch.Name)
	case status.Branch != nil:
		fmt.Print("On branch ")
		green.Println(status.Branch.Name)
	case status.NoCommits():
		fmt.Println("No commits yet")
	default:
		red.Printf("HEAD detached at %s\n", shortID(status.Revision))
	}

	switch status.State {
	case models.StateMerging:
		yellow.Println("You are in the middle of a merge.")
	case models.StateRebasing:
		yellow.Println("You are in the middle of a rebase.")
	}

	if status.Revision != "" {
		fmt.Printf("Revision: %s\n", status.Revision)
	}
	fmt.Printf("State: %s\n", status.State)
}
