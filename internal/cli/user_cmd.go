package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and account security",
	}
	cmd.AddCommand(
		newUserListCmd(app),
		newUserSessionsCmd(app),
		newUserTerminateCmd(app),
		newUserSecurityCmd(app),
	)
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Sync.LoadUsers(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				active := "yes"
				if !u.IsActive {
					active = formatter.Dim("no")
				}
				rows = append(rows, []string{u.ID, u.Name, u.Email, string(u.Role), active})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "NAME", "EMAIL", "ROLE", "ACTIVE"}, rows))
			return nil
		},
	}
}

func newUserSessionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions <user-id>",
		Short: "List a user's device sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sync.ListSessions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				current := ""
				if s.Current {
					current = "current"
				}
				rows = append(rows, []string{
					s.ID, s.Device, s.IPAddress,
					s.LastSeenAt.Format("2006-01-02 15:04"), current,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "DEVICE", "IP", "LAST SEEN", ""}, rows))
			return nil
		},
	}
}

func newUserTerminateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "terminate-session <user-id> <session-id>",
		Short: "Terminate one of a user's sessions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.TerminateSession(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Terminated session %s\n", args[1])
			return nil
		},
	}
}

func newUserSecurityCmd(app *App) *cobra.Command {
	var req api.SecuritySettingsRequest
	cmd := &cobra.Command{
		Use:   "security <user-id>",
		Short: "Update a user's security settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.UpdateSecuritySettings(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Security settings updated; other sessions terminated where possible.")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Password, "password", "", "new password")
	cmd.Flags().BoolVar(&req.TwoFactorEnabled, "2fa", false, "enable two-factor authentication")
	cmd.Flags().IntVar(&req.SessionTimeoutHours, "session-timeout", 0, "session timeout in hours")
	return cmd
}
