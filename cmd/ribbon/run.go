package main

import (
	"github.com/aretw0/ribbon/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine.yaml> <word>",
	Short: "Run a word through a machine",
	Long: `Runs the word through the machine and prints every step.
Exits 0 when the word is accepted, 1 when it is rejected and 2 on any error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		report, _ := cmd.Flags().GetBool("report")

		return cli.Run(cmd.Context(), commandEnv(), cli.RunOptions{
			DefinitionPath: args[0],
			Word:           args[1],
			MaxSteps:       maxSteps,
			JSON:           jsonMode,
			Quiet:          quiet,
			Report:         report,
			Store:          storeOptions(cmd),
			Log:            logOptions(cmd),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("max-steps", 0, "Stop after this many steps (default RIBBON_MAX_STEPS or 10000)")
	runCmd.Flags().Bool("json", false, "Print NDJSON events instead of text")
	runCmd.Flags().BoolP("quiet", "q", false, "Only print the outcome")
	runCmd.Flags().Bool("report", false, "Print a Markdown report of the run")
	addStoreFlags(runCmd)
}
