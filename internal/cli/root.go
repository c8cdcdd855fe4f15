// Package cli implements the fsops command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/color"
	"github.com/fsops-project/fsops/pkg/config"
	"github.com/fsops-project/fsops/pkg/logging"
)

var (
	jsonOutput bool
	noColor    bool
	rootCmd    = &cobra.Command{
		Use:   "fsops",
		Short: "fsops - resilient filesystem operations",
		Long: `fsops exposes the error-resilient filesystem helpers used by build
tooling: sorted listings, directory creation and removal with retry,
safe rename and whole-file reads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	cobra.OnInitialize(setup)
}

// setup loads configuration and applies it to logging and color output.
func setup() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmtErr("load config: %v", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Level(cfg.Logging.Level))
	logger.SetFormat(logging.Format(cfg.Logging.Format))
	logging.SetGlobal(logger)

	color.Init(noColor || cfg.NoColor)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// outputJSON prints v as JSON if --json flag is set, otherwise does nothing.
func outputJSON(v any) error {
	if !jsonOutput {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fmtErr(format string, args ...any) {
	prefix := "fsops: "
	if color.Enabled() {
		prefix = color.Error("fsops:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
