package main

import (
	"github.com/aretw0/ribbon/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine.yaml>",
	Short: "Export the machine graph",
	Long: `Outputs a Mermaid diagram (graph TD) of the machine, or its normalized YAML definition.
With --word, the states visited by that run are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, _ := cmd.Flags().GetString("word")
		format, _ := cmd.Flags().GetString("format")
		return cli.Graph(cmd.Context(), commandEnv(), cli.GraphOptions{
			DefinitionPath: args[0],
			Word:           word,
			Format:         format,
			Log:            logOptions(cmd),
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("word", "", "Highlight the states visited when running this word")
	graphCmd.Flags().StringP("format", "f", cli.FormatMermaid, "Output format: mermaid or yaml")
}
