package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage billing clients",
	}
	cmd.AddCommand(
		newClientListCmd(app),
		newClientCreateCmd(app),
		newClientUpdateCmd(app),
		newClientDeleteCmd(app),
	)
	return cmd
}

func clientFlags(cmd *cobra.Command, req *api.ClientRequest) {
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "client name")
	cmd.Flags().StringVar(&req.ContactInfo.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.ContactInfo.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.ContactInfo.Address, "address", "", "contact address")
	cmd.Flags().StringVar(&req.BillingAddress, "billing-address", "", "billing address")
	cmd.Flags().BoolVar(&req.IsActive, "active", true, "client is active")
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Sync.LoadClients(cmd.Context())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients.")
				return nil
			}

			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				active := "yes"
				if !c.IsActive {
					active = formatter.Dim("no")
				}
				rows = append(rows, []string{c.ID, c.Name, c.ContactInfo.Email, active})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(
				[]string{"ID", "NAME", "EMAIL", "ACTIVE"}, rows))
			return nil
		},
	}
}

func newClientCreateCmd(app *App) *cobra.Command {
	var req api.ClientRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Sync.CreateClient(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created client %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	clientFlags(cmd, &req)
	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var req api.ClientRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.Sync.UpdateClient(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated client %s\n", updated.ID)
			return nil
		},
	}
	clientFlags(cmd, &req)
	return cmd
}

func newClientDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client and its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.DeleteClient(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted client %s\n", args[0])
			return nil
		},
	}
}
