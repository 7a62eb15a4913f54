package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/ribbon/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts a stateless HTTP API that runs machines posted as JSON or YAML, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		labels, _ := cmd.Flags().GetStringSlice("metrics-machines")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, commandEnv(), cli.ServeOptions{
			Addr:          addr,
			MaxSteps:      maxSteps,
			MachineLabels: labels,
			Store:         storeOptions(cmd),
			Log:           logOptions(cmd),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-steps", 0, "Upper bound on steps per run (default RIBBON_MAX_STEPS or 10000)")
	serveCmd.Flags().StringSlice("metrics-machines", nil, "Machine names that get their own metrics label; others are counted as \"other\"")
	addStoreFlags(serveCmd)
}
