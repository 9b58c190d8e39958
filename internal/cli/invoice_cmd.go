package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/billing"
	"github.com/mvankuipers/tally/internal/cli/formatter"
)

func newInvoiceCmd(app *App) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "invoice <client-id>",
		Short: "Summarize approved billable time for a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Invoicing needs fresh server truth across collections.
			if err := app.Sync.Pull(cmd.Context()); err != nil {
				return err
			}

			inv, err := billing.BuildInvoice(app.Store.State(), args[0], from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Invoice for %s\n", inv.ClientName)
			if from != "" || to != "" {
				fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("period %s to %s", from, to)))
			}

			if len(inv.Lines) == 0 {
				fmt.Fprintln(out, "No approved billable time.")
				return nil
			}

			rows := make([][]string, 0, len(inv.Lines))
			for _, line := range inv.Lines {
				note := ""
				if line.BudgetExceeded {
					note = formatter.Warn("over budget")
				}
				rows = append(rows, []string{
					line.ProjectName,
					formatter.Hours(line.Minutes),
					fmt.Sprintf("%.2f", line.HourlyRate),
					fmt.Sprintf("%.2f", line.Amount),
					note,
				})
			}
			fmt.Fprint(out, formatter.Table(
				[]string{"PROJECT", "TIME", "RATE", "AMOUNT", ""}, rows))
			fmt.Fprintf(out, "\nTotal: %.2f (%.1f h)\n", inv.Total, inv.TotalHours)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
