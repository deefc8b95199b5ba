package cmd

import (
	"fmt"
	"os"

	"naval-tables/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the naval-tables command; subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:   "naval-tables",
	Short: "Naval weapon table generator",
	Long: `Naval Tables reads decoded naval weapon and ship files, joins them with
translations and battle ratings and renders one table row per shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Errors may happen before config is loaded, so use a fixed readable console logger.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
