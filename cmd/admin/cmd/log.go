package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
)

func LogCmd() *cobra.Command {
	var (
		date     string
		category string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "log <username> <hours>",
		Short: "Record a study session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[1])
			}

			occurredOn := time.Now()
			if date != "" {
				occurredOn, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}

			return withApp(func(a *app.App) error {
				entry, err := a.EntryService.Add(args[0], occurredOn, hours, category, notes)
				if err != nil {
					return err
				}

				status, err := a.StreakService.Status(entry.Username)
				if err != nil {
					return err
				}

				fmt.Printf("Logged %.1fh of %s for %s on %s\n",
					entry.Hours, entry.Category, entry.Username, entry.Day().Format("2006-01-02"))
				fmt.Printf("Current streak: %d day(s)\n", status.CurrentStreak)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&category, "category", "", "Session category (default General)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")

	return cmd
}
