package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Log, list, and manage time entries",
	}
	cmd.AddCommand(
		newEntryLogCmd(app),
		newEntryListCmd(app),
		newEntryEditCmd(app),
		newEntryDeleteCmd(app),
		newEntrySubmitCmd(app),
		newEntryApproveCmd(app),
		newEntryRejectCmd(app),
	)
	return cmd
}

func entryFlags(cmd *cobra.Command, req *api.TimeEntryRequest) {
	cmd.Flags().StringVarP(&req.ProjectID, "project", "p", "", "project id")
	cmd.Flags().StringVar(&req.Date, "date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&req.Duration, "minutes", "m", 0, "duration in minutes")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "what was worked on")
	cmd.Flags().BoolVar(&req.IsBillable, "billable", true, "entry is billable")
}

func newEntryLogCmd(app *App) *cobra.Command {
	var req api.TimeEntryRequest
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Create a draft time entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Sync.CreateEntry(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created draft entry %s (%s)\n",
				created.ID, formatter.Hours(created.Duration))
			return nil
		},
	}
	entryFlags(cmd, &req)
	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var filter api.EntryFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Sync.LoadEntries(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				billable := ""
				if e.IsBillable {
					billable = "$"
				}
				rows = append(rows, []string{
					e.ID, e.Date, projectName(app, e.ProjectID),
					formatter.Hours(e.Duration), billable,
					formatter.EntryStatus(e.Status), e.Description,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "DATE", "PROJECT", "TIME", "BILL", "STATUS", "DESCRIPTION"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.ProjectID, "project", "p", "", "filter by project id")
	cmd.Flags().StringVar(&filter.UserID, "user", "", "filter by user id")
	cmd.Flags().StringVar(&filter.From, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.To, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var req api.TimeEntryRequest
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a draft time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEntriesForGuard(cmd, app); err != nil {
				return err
			}
			updated, err := app.Sync.UpdateEntry(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", updated.ID)
			return nil
		},
	}
	entryFlags(cmd, &req)
	return cmd
}

func newEntryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEntriesForGuard(cmd, app); err != nil {
				return err
			}
			if err := app.Sync.DeleteEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		},
	}
}

func newEntrySubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <id>...",
		Short: "Submit draft entries for approval",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.SubmitEntries(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printBulkOutcome(cmd, outcome, "submitted")
		},
	}
}

func newEntryApproveCmd(app *App) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "approve <id>...",
		Short: "Approve submitted entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.ApproveEntries(cmd.Context(), args, comment)
			if err != nil {
				return err
			}
			return printBulkOutcome(cmd, outcome, "approved")
		},
	}
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "approval comment")
	return cmd
}

func newEntryRejectCmd(app *App) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "reject <id>...",
		Short: "Reject submitted entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.RejectEntries(cmd.Context(), args, comment)
			if err != nil {
				return err
			}
			return printBulkOutcome(cmd, outcome, "rejected")
		},
	}
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "rejection reason")
	return cmd
}

// loadEntriesForGuard refreshes the entry collection so the sync
// layer's draft-only guard sees current statuses before edit/delete.
func loadEntriesForGuard(cmd *cobra.Command, app *App) error {
	_, err := app.Sync.LoadEntries(cmd.Context(), api.EntryFilter{})
	return err
}

func printBulkOutcome(cmd *cobra.Command, outcome *api.BulkOutcome, action string) error {
	out := cmd.OutOrStdout()
	for _, e := range outcome.Succeeded {
		fmt.Fprintf(out, "Entry %s %s\n", e.ID, action)
	}
	for _, f := range outcome.Failed {
		fmt.Fprintf(out, "%s\n", formatter.Warn(
			fmt.Sprintf("Entry %s failed: %s", f.ID, f.Message)))
	}
	if len(outcome.Failed) > 0 {
		return fmt.Errorf("%d of %d entries not %s",
			len(outcome.Failed), len(outcome.Succeeded)+len(outcome.Failed), action)
	}
	return nil
}

func projectName(app *App, projectID string) string {
	if p, ok := app.Store.State().ProjectByID(projectID); ok {
		return p.Name
	}
	return projectID
}
