package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/csapp-labs/tshgrade/core/compare"
	"github.com/csapp-labs/tshgrade/core/normalize"
)

var diffRules []string

// diffCmd compares two capture files offline with the same normalization
// and comparison the grader uses.
var diffCmd = &cobra.Command{
	Use:   "diff STUDENT_CAPTURE REFERENCE_CAPTURE",
	Short: "Normalize and compare two captured sessions.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		for _, rule := range diffRules {
			if !normalize.KnownRule(rule) {
				return fmt.Errorf("unknown normalization rule %q", rule)
			}
		}

		fsys := afero.NewOsFs()
		student, err := afero.ReadFile(fsys, args[0])
		if err != nil {
			return err
		}
		reference, err := afero.ReadFile(fsys, args[1])
		if err != nil {
			return err
		}

		studentNorm := normalize.Apply(string(student), diffRules...)
		referenceNorm := normalize.Apply(string(reference), diffRules...)

		w := cmd.OutOrStdout()
		if compare.Equal(studentNorm, referenceNorm) {
			fmt.Fprintln(w, "outputs matched")
			return nil
		}
		fmt.Fprint(w, compare.Diff(studentNorm, referenceNorm))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringSliceVar(&diffRules, "rule", nil, "extra normalization rules (ps-listing, prompt-ending)")
	rootCmd.AddCommand(diffCmd)
}
