package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
	"github.com/learntrackhq/learntrack/internal/model"
)

func EntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Inspect logged sessions",
	}

	cmd.AddCommand(entriesListCmd(), entriesDeleteCmd())
	return cmd
}

func entriesListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list [username]",
		Short: "List sessions, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("username required unless --all is set")
			}

			return withApp(func(a *app.App) error {
				var (
					entries []*model.Entry
					err     error
				)
				if all {
					entries, err = a.EntryService.All()
				} else {
					entries, err = a.EntryService.ForUser(args[0])
				}
				if err != nil {
					return err
				}

				if len(entries) == 0 {
					fmt.Println("No sessions logged.")
					return nil
				}

				fmt.Printf("%-12s %-16s %6s  %-12s %-38s %s\n", "DATE", "USERNAME", "HOURS", "CATEGORY", "ID", "NOTES")
				for _, e := range entries {
					fmt.Printf("%-12s %-16s %6.1f  %-12s %-38s %s\n",
						e.Day().Format("2006-01-02"), e.Username, e.Hours, e.Category, e.ID, e.Notes)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List sessions for every learner")

	return cmd
}

func entriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username> <entry-id>",
		Short: "Delete one of a learner's sessions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				if err := a.EntryService.Delete(args[0], args[1]); err != nil {
					return err
				}

				fmt.Printf("Deleted entry %s\n", args[1])
				return nil
			})
		},
	}
}
