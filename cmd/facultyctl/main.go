package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "facultyctl",
		Short:         "facultyctl - administration tasks for the faculty registry",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file (default configs/config.yaml)")

	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(seedCmd(&configPath))
	rootCmd.AddCommand(refreshEligibilityCmd(&configPath))
	rootCmd.AddCommand(checkEligibilityCmd())

	return rootCmd
}
