package main

import (
	"github.com/katalvlaran/montransform/config"
	"github.com/katalvlaran/montransform/monitor"
	"github.com/spf13/cobra"
)

// seriesDoc is the JSON form of one monitor's output.
type seriesDoc struct {
	Monitor string     `json:"monitor"`
	Samples []stateDoc `json:"samples"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Record a sequence of states through configured monitors",
		Long: `Record a sequence of states through every configured monitor.

The states file is a YAML or JSON list of {step, time, shape, data}
documents; a missing step defaults to the list position. Output is one
JSON series per monitor, in configuration order.

Example:
  montransform run --config monitors.yaml --states run.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			statesPath, _ := cmd.Flags().GetString("states")

			cfg, err := config.Load(cfgPath)
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

			raw, err := readInput(cmd.InOrStdin(), statesPath)
			if err != nil {
				return err
			}
			steps, err := decodeSteps(raw)
			if err != nil {
				return err
			}

			series, err := monitor.Collect(cmd.Context(), monitor.NewSliceSource(steps...), mons...)
			if err != nil {
				return err
			}
			log.Info("run complete", "steps", len(steps), "monitors", len(mons))

			out := make([]seriesDoc, len(series))
			for i, s := range series {
				out[i] = seriesDoc{Monitor: s.Name, Samples: make([]stateDoc, len(s.Samples))}
				for j, smp := range s.Samples {
					out[i].Samples[j] = docFromSample(smp)
				}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().String("config", "", "Configuration file (required)")
	cmd.Flags().String("states", "", "States file (YAML or JSON list), - for stdin (required)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("states")

	return cmd
}
