package widgets

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/theme"
)

// weatherRefreshInterval is how often conditions are re-fetched.
const weatherRefreshInterval = 15 * time.Minute

// WeatherFetchedMsg carries a fetch result for one widget instance.
type WeatherFetchedMsg struct {
	ID     string
	Report weatherReport
	Err    error
}

// weatherRefreshMsg schedules the next fetch for one instance.
type weatherRefreshMsg struct {
	ID string
}

// weatherReport is the shape expected from the configured endpoint.
type weatherReport struct {
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"`
}

// Weather fetches current conditions from the configured endpoint.
// Fetching is best-effort: errors show as a muted line, never block the
// widget.
type Weather struct {
	id     string
	width  int
	cfg    model.WeatherConfig
	client *http.Client

	report  weatherReport
	fetched time.Time
	err     error
	loaded  bool
}

// NewWeather creates a weather body for the given instance.
func NewWeather(id string, width int, cfg model.WeatherConfig) *Weather {
	return &Weather{
		id:     id,
		width:  width,
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Weather) Init() tea.Cmd {
	if w.cfg.Endpoint == "" {
		return nil
	}
	return w.fetch()
}

func (w *Weather) Update(msg tea.Msg) (Body, tea.Cmd) {
	switch msg := msg.(type) {
	case WeatherFetchedMsg:
		if msg.ID != w.id {
			return w, nil
		}
		w.err = msg.Err
		if msg.Err == nil {
			w.report = msg.Report
			w.fetched = time.Now()
			w.loaded = true
		}
		return w, w.scheduleRefresh()

	case weatherRefreshMsg:
		if msg.ID != w.id {
			return w, nil
		}
		return w, w.fetch()
	}
	return w, nil
}

func (w *Weather) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(w.location())

	var lines []string
	switch {
	case w.cfg.Endpoint == "":
		lines = []string{header, theme.MutedStyle.Render("no endpoint configured")}
	case w.err != nil && !w.loaded:
		lines = []string{header, theme.MutedStyle.Render("unavailable")}
	case !w.loaded:
		lines = []string{header, theme.MutedStyle.Render("loading...")}
	default:
		temp := fmt.Sprintf("%.0f°C", w.report.TemperatureC)
		lines = []string{
			header,
			lipgloss.NewStyle().Bold(true).Render(temp) + "  " + w.report.Condition,
			theme.MutedStyle.Render("updated " + w.fetched.Format("15:04")),
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (w *Weather) location() string {
	if w.cfg.Location != "" {
		return w.cfg.Location
	}
	return "Weather"
}

// fetch queries the endpoint off the UI loop and reports back as a
// message.
func (w *Weather) fetch() tea.Cmd {
	id := w.id
	cfg := w.cfg
	client := w.client
	return func() tea.Msg {
		endpoint := cfg.Endpoint
		if cfg.Location != "" {
			sep := "?"
			if u, err := url.Parse(endpoint); err == nil && u.RawQuery != "" {
				sep = "&"
			}
			endpoint += sep + "location=" + url.QueryEscape(cfg.Location)
		}

		resp, err := client.Get(endpoint)
		if err != nil {
			return WeatherFetchedMsg{ID: id, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return WeatherFetchedMsg{ID: id, Err: fmt.Errorf("weather endpoint returned %d", resp.StatusCode)}
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if err != nil {
			return WeatherFetchedMsg{ID: id, Err: err}
		}

		var report weatherReport
		if err := json.Unmarshal(body, &report); err != nil {
			return WeatherFetchedMsg{ID: id, Err: fmt.Errorf("parsing weather response: %w", err)}
		}
		return WeatherFetchedMsg{ID: id, Report: report}
	}
}

func (w *Weather) scheduleRefresh() tea.Cmd {
	id := w.id
	return tea.Tick(weatherRefreshInterval, func(time.Time) tea.Msg {
		return weatherRefreshMsg{ID: id}
	})
}
