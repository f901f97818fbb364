package notify

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Alerter delivers a notification outside the dashboard surface.
type Alerter interface {
	// Alert raises a notification with the given title and body.
	Alert(title, body string) error

	// Supported reports whether the environment can deliver alerts.
	Supported() bool
}

// TerminalAlerter raises desktop notifications through the terminal
// emulator (OSC 777), which most modern emulators forward to the
// OS notification daemon.
type TerminalAlerter struct {
	output *termenv.Output
}

// NewTerminalAlerter creates an alerter bound to stdout.
func NewTerminalAlerter() *TerminalAlerter {
	return &TerminalAlerter{output: termenv.DefaultOutput()}
}

// Alert emits the notification escape sequence.
func (a *TerminalAlerter) Alert(title, body string) error {
	a.output.Notify(title, body)
	return nil
}

// Supported reports whether stdout is an interactive terminal.
func (a *TerminalAlerter) Supported() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
