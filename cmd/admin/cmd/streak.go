package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
)

func StreakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak <username>",
		Short: "Show a learner's streak and whether they logged today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				status, err := a.StreakService.Status(args[0])
				if err != nil {
					return err
				}

				logged := "no"
				if status.HasLoggedToday {
					logged = "yes"
				}

				fmt.Printf("Streak:       %d day(s)\n", status.CurrentStreak)
				fmt.Printf("Logged today: %s\n", logged)
				return nil
			})
		},
	}
}
