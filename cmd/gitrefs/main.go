// Command gitrefs reads the references of a git repository straight from disk.
package main

import (
	"os"

	"github.com/kilupskalvis/gitrefs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
