package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learntrackhq/learntrack/internal/app"
)

func RemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage reminder settings and delivery",
	}

	cmd.AddCommand(remindersShowCmd(), remindersSetCmd(), remindersTestCmd())
	return cmd
}

func remindersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <username>",
		Short: "Show a learner's reminder settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				profile, err := a.ProfileService.Get(args[0])
				if err != nil {
					return err
				}

				email := profile.Email
				if email == "" {
					email = "(not set)"
				}
				reminderTime := profile.ReminderTime
				if reminderTime == "" {
					reminderTime = fmt.Sprintf("(default %s)", a.Cfg.ReminderTime)
				}

				fmt.Printf("Username: %s\n", profile.Username)
				fmt.Printf("Email:    %s\n", email)
				fmt.Printf("Enabled:  %t\n", profile.ReminderEnabled)
				fmt.Printf("Time:     %s\n", reminderTime)
				return nil
			})
		},
	}
}

func remindersSetCmd() *cobra.Command {
	var (
		email        string
		enabled      bool
		reminderTime string
	)

	cmd := &cobra.Command{
		Use:   "set <username>",
		Short: "Update a learner's reminder settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				profile, err := a.ProfileService.Ensure(args[0])
				if err != nil {
					return err
				}

				// Flags that were not passed keep their stored values.
				if !cmd.Flags().Changed("email") {
					email = profile.Email
				}
				if !cmd.Flags().Changed("enabled") {
					enabled = profile.ReminderEnabled
				}
				if !cmd.Flags().Changed("time") {
					reminderTime = profile.ReminderTime
				}

				updated, err := a.ProfileService.UpdateSettings(profile.Username, email, enabled, reminderTime)
				if err != nil {
					return err
				}

				state := "off"
				if updated.Remindable() {
					state = "on"
				}
				fmt.Printf("Saved. Daily reminders are %s for %s.\n", state, updated.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address reminders go to")
	cmd.Flags().BoolVar(&enabled, "enabled", false, "Turn daily reminders on or off")
	cmd.Flags().StringVar(&reminderTime, "time", "", "Preferred send time as HH:MM (empty uses the server default)")

	return cmd
}

func remindersTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <username>",
		Short: "Send a test reminder now, ignoring schedules and today's log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				if !a.RemindersEnabled() {
					return fmt.Errorf("no mail transport configured, set MAIL_PROVIDER")
				}

				if err := a.ReminderService.SendTest(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Printf("Test reminder sent to %s via %s\n", args[0], a.Mailer.Name())
				return nil
			})
		},
	}
}
