package widgets

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
	"github.com/dashy/dashy/internal/theme"
)

// searchHistoryCap bounds the persisted query history.
const searchHistoryCap = 5

// SearchHistoryLoadedMsg carries the persisted history for one
// instance.
type SearchHistoryLoadedMsg struct {
	ID      string
	Queries []string
}

// searchOpenedMsg reports the outcome of launching the browser.
type searchOpenedMsg struct {
	ID  string
	Err error
}

// Search submits queries to the configured engine in the system
// browser and keeps a short most-recent-first history.
type Search struct {
	id   string
	deps Deps
	cfg  model.SearchConfig

	input   textinput.Model
	history []string
	status  string
}

// NewSearch creates a search body sized to the given inner width.
func NewSearch(id string, width int, deps Deps) *Search {
	ti := textinput.New()
	ti.Placeholder = "search the web..."
	ti.Prompt = "? "
	ti.Width = width - 4
	return &Search{id: id, deps: deps, cfg: deps.Cfg.Search, input: ti}
}

func (s *Search) Init() tea.Cmd {
	id := s.id
	st := s.deps.Store
	log := s.deps.Log
	return func() tea.Msg {
		var queries []string
		_, err := store.GetJSON(context.Background(), st, store.KeySearchHistory, &queries)
		if err != nil {
			log.Warn("discarding malformed search history", "error", err)
			queries = nil
		}
		return SearchHistoryLoadedMsg{ID: id, Queries: queries}
	}
}

func (s *Search) Update(msg tea.Msg) (Body, tea.Cmd) {
	switch msg := msg.(type) {
	case SearchHistoryLoadedMsg:
		if msg.ID == s.id {
			s.history = msg.Queries
		}
		return s, nil

	case searchOpenedMsg:
		if msg.ID == s.id && msg.Err != nil {
			s.status = "could not open browser"
		}
		return s, nil

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "enter":
				query := s.input.Value()
				s.input.Reset()
				s.input.Blur()
				if query == "" {
					return s, nil
				}
				s.remember(query)
				return s, tea.Batch(s.saveHistory(), s.open(query))
			case "esc":
				s.input.Reset()
				s.input.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		switch msg.String() {
		case "/", "enter", "e":
			s.status = ""
			return s, s.input.Focus()
		}
	}
	return s, nil
}

func (s *Search) View() string {
	lines := []string{s.input.View()}
	if s.status != "" {
		lines = append(lines, theme.MutedStyle.Render(s.status))
	}
	for _, q := range s.history {
		lines = append(lines, theme.MutedStyle.Render("· "+q))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Editing reports whether the query input owns key input.
func (s *Search) Editing() bool {
	return s.input.Focused()
}

// remember prepends the query, dropping duplicates and capping the
// history length.
func (s *Search) remember(query string) {
	out := []string{query}
	for _, q := range s.history {
		if q == query {
			continue
		}
		out = append(out, q)
		if len(out) == searchHistoryCap {
			break
		}
	}
	s.history = out
}

// saveHistory persists the full history snapshot, best-effort.
func (s *Search) saveHistory() tea.Cmd {
	st := s.deps.Store
	log := s.deps.Log
	history := make([]string, len(s.history))
	copy(history, s.history)
	return func() tea.Msg {
		if err := store.SetJSON(context.Background(), st, store.KeySearchHistory, history); err != nil {
			log.Warn("persisting search history", "error", err)
		}
		return nil
	}
}

// open launches the system browser with the engine URL for the query.
func (s *Search) open(query string) tea.Cmd {
	id := s.id
	engine := s.cfg.EngineURL
	return func() tea.Msg {
		target := fmt.Sprintf(engine, url.QueryEscape(query))

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", target)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
		default:
			cmd = exec.Command("xdg-open", target)
		}
		return searchOpenedMsg{ID: id, Err: cmd.Start()}
	}
}
