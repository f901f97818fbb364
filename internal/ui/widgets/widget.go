// Package widgets implements the body models rendered inside floating
// windows on the dashboard surface. Each body is a small Bubble Tea
// sub-model addressed by its widget instance ID.
package widgets

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
)

// Deps carries the shared dependencies a body may need. Bodies that
// persist state (notes, to-do list, search history) write through the
// store; the rest ignore it.
type Deps struct {
	Store store.Store
	Cfg   *model.AppConfig
	Log   *slog.Logger
}

// Body is the content model of one widget instance. Update receives
// every message the root model routes to it; tick and load messages
// carry the instance ID so a body can ignore traffic addressed to
// other instances of the same type.
type Body interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Body, tea.Cmd)
	View() string
}

// Editor is implemented by bodies that capture keystrokes while in
// text-entry mode. While Editing reports true the root model routes
// all key input to the body instead of matching global bindings.
type Editor interface {
	Editing() bool
}
