package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/csapp-labs/tshgrade/core/driver"
	"github.com/csapp-labs/tshgrade/core/grader"
)

// gradeCmd runs the full suite; it is also wired as the root command's RunE.
var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Run the full grading suite in the current directory.",
	Args:  cobra.ExactArgs(0),
	RunE:  runGrade,
}

func runGrade(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	suite, err := loadSuite()
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "", 0)
	if missing := suite.MissingTraces(afero.NewOsFs()); len(missing) > 0 {
		logger.Printf("warning: missing trace files: %v", missing)
	}

	// A stuck student shell may signal its whole group; don't let that
	// suspend grading.
	driver.IgnoreStopSignal()

	runner := &driver.Driver{
		Path:      suite.Driver,
		ShellArgs: suite.ShellArgs,
		Timeout:   suite.Timeout(),
	}

	grader.New(suite, runner, cmd.OutOrStdout()).Grade()

	// The report is the contract; grading outcome never changes the exit
	// status.
	return nil
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}
