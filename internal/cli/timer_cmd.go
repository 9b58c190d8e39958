package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli/formatter"
	"github.com/mvankuipers/tally/internal/state"
)

// lastProjectKey remembers the most recently tracked project in the
// local key/value store.
const lastProjectKey = "last_project"

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Start, stop, and inspect the live timer",
	}
	cmd.AddCommand(newTimerStartCmd(app), newTimerStopCmd(app), newTimerStatusCmd(app))
	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	var project, description string
	var watch bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start tracking time against a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// No --project falls back to the last tracked one.
			if project == "" {
				project, _ = app.Local.GetState(lastProjectKey)
			}

			projectID, name, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			if err := app.Timer.Start(projectID, description); err != nil {
				return err
			}
			if err := app.Local.SetState(lastProjectKey, projectID); err != nil {
				return err
			}
			app.Notify.TimerStarted(name)
			fmt.Fprintf(cmd.OutOrStdout(), "Timer started on %s\n", name)

			if watch {
				return watchTimer(ctx, cmd, app)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name (defaults to the last tracked project)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what you are working on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and show elapsed time")
	return cmd
}

func newTimerStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and log the tracked time as a draft entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timer.Stop(cmd.Context())
			if err != nil {
				return err
			}
			app.Notify.TimerStopped(entry.Duration)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s as draft entry %s\n",
				formatter.Hours(entry.Duration), entry.ID)
			return nil
		},
	}
}

func newTimerStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := app.Store.State().Timer
			if !t.IsRunning {
				fmt.Fprintln(cmd.OutOrStdout(), "Timer is idle.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Running on project %s for %s",
				t.CurrentProjectID, app.Timer.Elapsed().Round(time.Second))
			if t.CurrentDescription != "" {
				fmt.Fprintf(cmd.OutOrStdout(), ": %s", t.CurrentDescription)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// resolveProject accepts a project id or name and returns the id plus a
// display name, refreshing the project collection from the backend.
func resolveProject(ctx context.Context, app *App, project string) (id, name string, err error) {
	if project == "" {
		return "", "", fmt.Errorf("no project given and none tracked before: pass --project")
	}
	projects, err := app.Sync.LoadProjects(ctx, api.ProjectFilter{})
	if err != nil {
		return "", "", err
	}
	for _, p := range projects {
		if p.ID == project || p.Name == project {
			if !p.IsActive() {
				return "", "", fmt.Errorf("project %s is %s, time can only be tracked on active projects", p.Name, p.Status)
			}
			return p.ID, p.Name, nil
		}
	}
	return "", "", fmt.Errorf("no project matching %q", project)
}

// watchTimer renders elapsed time in place while the timer's tick loop
// runs, firing a single reminder notification for long runs. The tick
// loop itself belongs to the timer; this only subscribes for output.
func watchTimer(ctx context.Context, cmd *cobra.Command, app *App) error {
	reminder := time.Duration(app.Config.Notifications.ReminderMinutes) * time.Minute
	reminded := false

	token := app.Store.Subscribe(func(s state.State) {
		if !s.Timer.IsRunning {
			return
		}
		elapsed := s.Timer.Elapsed
		fmt.Fprintf(cmd.OutOrStdout(), "\r%s elapsed ", elapsed.Round(time.Second))
		if !reminded && reminder > 0 && elapsed >= reminder {
			app.Notify.LongRunning(elapsed)
			reminded = true
		}
	})
	defer app.Store.Unsubscribe(token)

	app.Timer.Run(ctx)
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
