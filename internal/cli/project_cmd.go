package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
	"github.com/mvankuipers/tally/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage client projects",
	}
	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectCreateCmd(app),
		newProjectUpdateCmd(app),
		newProjectDeleteCmd(app),
	)
	return cmd
}

func projectFlags(cmd *cobra.Command, req *api.ProjectRequest) {
	cmd.Flags().StringVarP(&req.ClientID, "client", "c", "", "client id")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "project description")
	cmd.Flags().Float64VarP(&req.HourlyRate, "rate", "r", 0, "hourly rate")
	cmd.Flags().StringVarP(&req.Status, "status", "s", string(domain.ProjectActive), "active|inactive|completed")
}

func newProjectListCmd(app *App) *cobra.Command {
	var filter api.ProjectFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Sync.LoadClients(cmd.Context()); err != nil {
				return err
			}
			if _, err := app.Sync.LoadProjects(cmd.Context(), filter); err != nil {
				return err
			}

			projects := app.Store.State().Projects
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				clientName := formatter.Dim("(unknown client)")
				if p.Client != nil {
					clientName = p.Client.Name
					if !p.Client.IsActive {
						clientName += formatter.Dim(" (inactive)")
					}
				}
				rows = append(rows, []string{
					p.ID, p.Name, clientName,
					fmt.Sprintf("%.2f", p.HourlyRate),
					formatter.ProjectStatus(p.Status),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "NAME", "CLIENT", "RATE", "STATUS"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.ClientID, "client", "c", "", "filter by client id")
	cmd.Flags().StringVarP(&filter.Status, "status", "s", "", "filter by status")
	return cmd
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var req api.ProjectRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Sync.CreateProject(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	projectFlags(cmd, &req)
	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var req api.ProjectRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.Sync.UpdateProject(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", updated.ID)
			return nil
		},
	}
	projectFlags(cmd, &req)
	return cmd
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}
}
