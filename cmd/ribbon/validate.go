package main

import (
	"github.com/aretw0/ribbon/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine.yaml>",
	Short: "Check a machine definition",
	Long: `Builds the machine and walks its graph from the initial state.
Fails when the accepting state cannot be reached; warns about unreachable states and dead ends.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		return cli.Validate(cmd.Context(), commandEnv(), cli.ValidateOptions{
			DefinitionPath: args[0],
			Strict:         strict,
			Log:            logOptions(cmd),
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Fail on warnings")
}
