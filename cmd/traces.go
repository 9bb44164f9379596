package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// tracesCmd lists the configured cases and flags missing trace files.
var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "List the suite's test cases and check their trace files exist.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		suite, err := loadSuite()
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		w := cmd.OutOrStdout()
		for _, tc := range suite.Tests {
			status := "ok"
			if ok, err := afero.Exists(fsys, tc.Trace); err != nil || !ok {
				status = "MISSING"
			}
			line := fmt.Sprintf("%s\t%s\t(%d points)\t%s", tc.Name, tc.Trace, tc.Points, status)
			if len(tc.Rules) > 0 {
				line += "\trules: " + strings.Join(tc.Rules, ",")
			}
			fmt.Fprintln(w, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tracesCmd)
}
