package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}
	cmd.AddCommand(
		newTeamListCmd(app),
		newTeamCreateCmd(app),
		newTeamUpdateCmd(app),
		newTeamDeleteCmd(app),
	)
	return cmd
}

func teamFlags(cmd *cobra.Command, req *api.TeamRequest) {
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "team name")
	cmd.Flags().StringVarP(&req.ManagerID, "manager", "m", "", "manager user id")
	cmd.Flags().StringSliceVar(&req.MemberIDs, "members", nil, "member user ids")
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Sync.LoadTeams(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(teams))
			for _, t := range teams {
				rows = append(rows, []string{
					t.ID, t.Name, t.ManagerID,
					fmt.Sprintf("%d", len(t.MemberIDs)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "NAME", "MANAGER", "MEMBERS"}, rows))
			return nil
		},
	}
}

func newTeamCreateCmd(app *App) *cobra.Command {
	var req api.TeamRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Sync.CreateTeam(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created team %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	teamFlags(cmd, &req)
	return cmd
}

func newTeamUpdateCmd(app *App) *cobra.Command {
	var req api.TeamRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.Sync.UpdateTeam(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated team %s (members: %s)\n",
				updated.ID, strings.Join(updated.MemberIDs, ", "))
			return nil
		},
	}
	teamFlags(cmd, &req)
	return cmd
}

func newTeamDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.DeleteTeam(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted team %s\n", args[0])
			return nil
		},
	}
}
