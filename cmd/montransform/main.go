// Command montransform validates monitor transform definitions and applies
// them to simulator state dumps.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/montransform/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "montransform",
		Short: "Monitor transform engine for network simulations",
		Long: `montransform checks and evaluates monitor transforms: delimited lists of
"pre" expressions applied to raw simulator state and "post" expressions
applied to each recorded sample.

Pre expressions read state variables as x0, x1, ... (or by name with
--vars); post expressions read their recorded slot as mon.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newValidateCmd(),
		newApplyCmd(),
		newRunCmd(),
	)

	return rootCmd
}

// newLogger builds a stderr logger from --log-level, falling back to def.
func newLogger(cmd *cobra.Command, def string) (*slog.Logger, error) {
	lvl, _ := cmd.Flags().GetString("log-level")
	if lvl == "" {
		lvl = def
	}
	level, err := logging.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}

	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}
