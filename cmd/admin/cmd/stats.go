package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
)

func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show site-wide learning stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				stats, err := a.StatsService.Overview()
				if err != nil {
					return err
				}

				fmt.Printf("Entries:       %d\n", stats.TotalEntries)
				fmt.Printf("Hours:         %.1f\n", stats.TotalHours)
				fmt.Printf("Learners:      %d\n", stats.UniqueLearners)
				fmt.Printf("Avg per entry: %.1fh\n", stats.AvgHours)

				if len(stats.TopLearners) > 0 {
					fmt.Println()
					fmt.Printf("%-4s %-16s %8s %8s\n", "#", "LEARNER", "HOURS", "ENTRIES")
					for i, row := range stats.TopLearners {
						fmt.Printf("%-4d %-16s %8.1f %8d\n", i+1, row.Name, row.Hours, row.Entries)
					}
				}
				return nil
			})
		},
	}

	cmd.AddCommand(statsWeeklyCmd())
	return cmd
}

func statsWeeklyCmd() *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "weekly <username>",
		Short: "Weekly rollup for one learner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				summaries, err := a.StatsService.Weekly(args[0], weeks)
				if err != nil {
					return err
				}

				fmt.Printf("%-12s %-12s %8s %8s %6s\n", "WEEK START", "WEEK END", "HOURS", "ENTRIES", "DAYS")
				for _, w := range summaries {
					fmt.Printf("%-12s %-12s %8.1f %8d %6d\n",
						w.WeekStart.Format("2006-01-02"), w.WeekEnd.Format("2006-01-02"),
						w.TotalHours, w.EntryCount, w.DaysActive)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", 4, "Number of weeks to show, ending with the current week")

	return cmd
}
