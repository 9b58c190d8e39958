package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPullCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Refresh all collections from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.Pull(cmd.Context()); err != nil {
				return err
			}
			s := app.Store.State()
			fmt.Fprintf(cmd.OutOrStdout(),
				"Pulled %d clients, %d projects, %d entries, %d users, %d teams\n",
				len(s.Clients), len(s.Projects), len(s.TimeEntries), len(s.Users), len(s.Teams))
			return nil
		},
	}
}
