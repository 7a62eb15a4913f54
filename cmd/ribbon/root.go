package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/ribbon/internal/cli"
	"github.com/aretw0/ribbon/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ribbon",
	Short: "Ribbon runs non-deterministic multi-tape Turing machines",
	Long: `Ribbon loads machine definitions written in YAML, runs words through them
with backtracking, and shows every step the machine took.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if msg := err.Error(); msg != "" && cli.ExitCode(err) != cli.ExitRejected {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs at debug level to this file")
}

func logOptions(cmd *cobra.Command) cli.LogOptions {
	level, _ := cmd.Flags().GetString("log-level")
	file, _ := cmd.Flags().GetString("log-file")
	return cli.LogOptions{Level: level, File: file}
}

func storeOptions(cmd *cobra.Command) cli.StoreOptions {
	kind, _ := cmd.Flags().GetString("store")
	dir, _ := cmd.Flags().GetString("store-dir")
	addr, _ := cmd.Flags().GetString("redis")
	db, _ := cmd.Flags().GetInt("redis-db")
	if kind == "" && addr != "" {
		kind = cli.StoreRedis
	}
	return cli.StoreOptions{Kind: kind, Dir: dir, RedisAddr: addr, RedisDB: db}
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("store", "", "Keep traces in a store: memory, file or redis")
	cmd.Flags().String("store-dir", "", "Directory for the file store (default .ribbon/traces)")
	cmd.Flags().String("redis", "", "Redis address for the redis store (password from RIBBON_REDIS_PASSWORD)")
	cmd.Flags().Int("redis-db", 0, "Redis database number")
}

func commandEnv() cli.Env {
	env := cli.DefaultEnv()
	tty := tui.IsTerminal(os.Stdout)
	env.TTY = &tty
	return env
}
