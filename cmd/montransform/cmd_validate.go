package main

import (
	"fmt"

	"github.com/katalvlaran/montransform/config"
	"github.com/spf13/cobra"
)

// monitorSummary describes one built monitor in validate output.
type monitorSummary struct {
	Name  string   `json:"name"`
	Slots int      `json:"slots"`
	Pre   []string `json:"pre"`
	Post  []string `json:"post"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a monitor configuration file",
		Long: `Validate a monitor configuration file.

This command checks for:
  - Schema errors (unknown keys, missing names, bad kinds or periods)
  - Expression counts incompatible with the declared variables
  - Syntax errors and unknown names in every expression

Examples:
  montransform validate --config monitors.yaml
  montransform validate --config monitors.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg.LogLevel)
			if err != nil {
				return err
			}
			mons, err := cfg.Build(log)
			if err != nil {
				return err
			}

			if jsonOut {
				out := make([]monitorSummary, len(mons))
				for i, m := range mons {
					tr := m.Transforms()
					out[i] = monitorSummary{Name: m.Name(), Slots: tr.Len(), Pre: tr.Pre(), Post: tr.Post()}
				}

				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, m := range mons {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slots\n", m.Name(), m.Transforms().Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d monitors\n", len(mons))

			return nil
		},
	}

	cmd.Flags().String("config", "", "Configuration file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
