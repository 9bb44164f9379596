package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/csapp-labs/tshgrade/core/config"
)

var suitePath string

func loadSuite() (*config.Suite, error) {
	return config.Load(afero.NewOsFs(), suitePath)
}

// rootCmd represents the base command when called without any subcommands.
// A bare invocation grades the full suite, matching the lab's flagless
// autograder interface.
var rootCmd = &cobra.Command{
	Use:   "tshgrade",
	Short: "Autograder for the shell lab",
	Long: `Grades a tiny shell implementation by replaying scripted sessions
against it and a reference shell and comparing the normalized outputs.`,
	Args: cobra.ExactArgs(0),
	RunE: runGrade,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&suitePath, "config", "", "suite definition file (default: built-in shell lab suite)")
}
