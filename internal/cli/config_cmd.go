package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the config file path, creating a default file if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := config.EnsureConfigDir(); err != nil {
					return err
				}
				data, err := toml.Marshal(config.DefaultConfig())
				if err != nil {
					return fmt.Errorf("marshaling default config: %w", err)
				}
				if err := os.WriteFile(path, data, 0600); err != nil {
					return fmt.Errorf("writing default config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created default config at %s\n", path)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
