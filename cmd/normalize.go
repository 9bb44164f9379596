package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/csapp-labs/tshgrade/core/normalize"
)

var normalizeRules []string

// normalizeCmd applies the grading normalization to a capture file, for
// debugging why a graded case diverged.
var normalizeCmd = &cobra.Command{
	Use:   "normalize CAPTURE",
	Short: "Print the normalized form of a captured session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		for _, rule := range normalizeRules {
			if !normalize.KnownRule(rule) {
				return fmt.Errorf("unknown normalization rule %q", rule)
			}
		}

		contents, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), normalize.Apply(string(contents), normalizeRules...))
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringSliceVar(&normalizeRules, "rule", nil, "extra normalization rules (ps-listing, prompt-ending)")
	rootCmd.AddCommand(normalizeCmd)
}
