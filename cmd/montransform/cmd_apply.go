package main

import (
	"fmt"

	"github.com/katalvlaran/montransform/transform"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply pre and post transforms to one state",
		Long: `Apply pre and post transforms to one state and print the resulting sample.

The state file holds {time, shape: [variable, node, mode], data: [...]}
in YAML or JSON, data flattened row-major. Use "-" to read stdin.

Examples:
  montransform apply --pre 'x0**2' --state state.json
  montransform apply --pre 'V;W;V**2;W-V' --post ';;mon**2;exp(mon)' --vars V,W --state state.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pre, _ := cmd.Flags().GetString("pre")
			post, _ := cmd.Flags().GetString("post")
			delim, _ := cmd.Flags().GetString("delim")
			vars, _ := cmd.Flags().GetStringSlice("vars")
			count, _ := cmd.Flags().GetInt("count")
			noFinite, _ := cmd.Flags().GetBool("no-finite")
			statePath, _ := cmd.Flags().GetString("state")

			log, err := newLogger(cmd, "warn")
			if err != nil {
				return err
			}

			opts := []transform.Option{transform.WithDelimiter(delim), transform.WithLogger(log)}
			if len(vars) > 0 {
				opts = append(opts, transform.WithVariableNames(vars...))
			}
			if count > 0 {
				opts = append(opts, transform.WithVariableCount(count))
			}
			if noFinite {
				opts = append(opts, transform.WithNoValidateFinite())
			}
			tr, err := transform.New(pre, post, opts...)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd.InOrStdin(), statePath)
			if err != nil {
				return err
			}
			doc, err := decodeState(raw)
			if err != nil {
				return err
			}
			state, err := doc.array()
			if err != nil {
				return fmt.Errorf("state: %w", err)
			}

			sample, err := tr.ApplyPre(state)
			if err != nil {
				return err
			}
			out, err := tr.ApplyPost(transform.Sample{Time: doc.Time, Data: sample})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), docFromSample(out))
		},
	}

	cmd.Flags().String("pre", "", "Delimited pre expressions (required)")
	cmd.Flags().String("post", "", "Delimited post expressions")
	cmd.Flags().String("delim", transform.DefaultDelimiter, "Expression delimiter (one character)")
	cmd.Flags().StringSlice("vars", nil, "State variable names, aliasing x0, x1, ...")
	cmd.Flags().Int("count", 0, "Declared slot count (default: longest list)")
	cmd.Flags().Bool("no-finite", false, "Allow NaN and Inf results")
	cmd.Flags().String("state", "", "State file (YAML or JSON), - for stdin (required)")
	_ = cmd.MarkFlagRequired("pre")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}
