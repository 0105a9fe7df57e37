// Package cli implements the command-line interface for gitrefs.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/gitrefs/internal/config"
	"github.com/kilupskalvis/gitrefs/internal/core"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Logger *slog.Logger
	Repo   *core.Repository
}

var (
	flagGitDir    string
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagNoColor   bool
)

// settings and logger are set up by loadSettings before any command runs.
var (
	settings *config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gitrefs",
	Short: "Read git branches and checkout state from .git",
	Long: `gitrefs reads the state of a git repository straight from its .git
directory: whether HEAD is on a branch, detached, or in the middle of a merge
or rebase, which commit it points to, and all local and remote-tracking
branches. It never runs git and never writes to the repository.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagGitDir, "git-dir", "", "Path to the .git directory (default: search from the current directory)")
	pf.StringVar(&flagConfig, "config", "", "Settings file (default: $XDG_CONFIG_HOME/gitrefs/config.toml)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(completionCmd)
}

// loadSettings reads the settings file and applies command-line overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		// No user config dir just means no settings file.
		path, _ = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	settings = cfg
	logger = newLogger(cfg, os.Stderr)
	if cfg.Path() != "" {
		logger.Debug("using settings file", "path", cfg.Path())
	}
	return nil
}

// newLogger builds the slog logger described by cfg.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// initContext opens the repository named by --git-dir, or the one
// containing the current directory.
func initContext() *cmdContext {
	var (
		repo *core.Repository
		err  error
	)
	if flagGitDir != "" {
		repo, err = core.Open(flagGitDir, logger)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			exitError("%v", err)
		}
		repo, err = core.Discover(cwd, logger)
	}
	if err != nil {
		exitError("%v", err)
	}

	return &cmdContext{Config: settings, Logger: logger, Repo: repo}
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// shortID returns first 8 characters of an ID
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
