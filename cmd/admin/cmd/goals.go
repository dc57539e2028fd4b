package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
)

func GoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage weekly hour goals",
	}

	cmd.AddCommand(goalsSetCmd(), goalsListCmd(), goalsDeleteCmd())
	return cmd
}

func goalsSetCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "set <username> <hours>",
		Short: "Set a weekly hour target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[1])
			}

			return withApp(func(a *app.App) error {
				goal, err := a.GoalService.Set(args[0], category, hours)
				if err != nil {
					return err
				}

				fmt.Printf("Goal saved: %s aims for %.1fh of %s per week\n",
					goal.Username, goal.TargetHours, goal.Category)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category the target applies to (default General)")

	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <username>",
		Short: "Show this week's progress against each goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				progress, err := a.GoalService.Progress(args[0])
				if err != nil {
					return err
				}

				if len(progress) == 0 {
					fmt.Println("No goals set.")
					return nil
				}

				fmt.Printf("%-16s %8s %8s %9s\n", "CATEGORY", "TARGET", "LOGGED", "PROGRESS")
				for _, p := range progress {
					fmt.Printf("%-16s %7.1fh %7.1fh %8d%%\n",
						p.Category, p.TargetHours, p.LoggedHours, p.Percent)
				}
				return nil
			})
		},
	}
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username> <category>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				if err := a.GoalService.Delete(args[0], args[1]); err != nil {
					return err
				}

				fmt.Printf("Deleted %s goal for %s\n", args[1], args[0])
				return nil
			})
		},
	}
}
