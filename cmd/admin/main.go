package main

import (
	"os"

	"github.com/learntrackhq/learntrack/cmd/admin/cmd"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Operations CLI for LearnTrack",
	}

	rootCmd.AddCommand(cmd.LogCmd())
	rootCmd.AddCommand(cmd.EntriesCmd())
	rootCmd.AddCommand(cmd.StreakCmd())
	rootCmd.AddCommand(cmd.StatsCmd())
	rootCmd.AddCommand(cmd.GoalsCmd())
	rootCmd.AddCommand(cmd.RemindersCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
