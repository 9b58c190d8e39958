// Package notify sends best-effort desktop notifications. Delivery
// failures are logged and never propagated; tracking time must not
// depend on a notification daemon being present.
package notify

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

const appTitle = "tally"

type Notifier struct {
	enabled bool
	log     zerolog.Logger
}

func New(enabled bool, log zerolog.Logger) *Notifier {
	return &Notifier{enabled: enabled, log: log}
}

func (n *Notifier) TimerStarted(projectName string) {
	n.send(fmt.Sprintf("Timer started on %s", projectName))
}

func (n *Notifier) TimerStopped(minutes int) {
	n.send(fmt.Sprintf("Timer stopped, %d min logged as draft", minutes))
}

// LongRunning reminds the user about a timer that has been running for
// a while, typically one forgotten overnight.
func (n *Notifier) LongRunning(elapsed time.Duration) {
	n.send(fmt.Sprintf("Timer has been running for %s. Still working?", elapsed.Round(time.Minute)))
}

func (n *Notifier) send(message string) {
	if !n.enabled {
		return
	}
	if err := beeep.Notify(appTitle, message, ""); err != nil {
		n.log.Debug().Err(err).Msg("desktop notification failed")
	}
}
