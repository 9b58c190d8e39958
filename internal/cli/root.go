package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/config"
	"github.com/mvankuipers/tally/internal/notify"
	"github.com/mvankuipers/tally/internal/state"
	"github.com/mvankuipers/tally/internal/store"
	"github.com/mvankuipers/tally/internal/sync"
	"github.com/mvankuipers/tally/internal/timer"
)

// App holds everything the commands need: the state store, the sync
// service in front of the backend, the timer controller, and the local
// sqlite sidecar.
type App struct {
	Config *config.Config
	Store  *state.Store
	Sync   *sync.Service
	Timer  *timer.Timer
	Notify *notify.Notifier
	Local  *store.DB
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Track time against client projects and bill it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTimerCmd(app),
		newEntryCmd(app),
		newProjectCmd(app),
		newClientCmd(app),
		newUserCmd(app),
		newTeamCmd(app),
		newInvoiceCmd(app),
		newPullCmd(app),
		newConfigCmd(app),
	)

	return root
}
