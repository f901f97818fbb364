package widgets

import (
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// contentOpenedMsg reports the outcome of launching an external link.
type contentOpenedMsg struct {
	ID  string
	Err error
}

// Content renders notification payloads opened from the notification
// panel: event details, video and blog links, problems, meetings, and
// the generic fallback. The rows shown depend on the widget type; o
// launches the payload link in the browser when one is present.
type Content struct {
	id         string
	widgetType string
	width      int
	props      map[string]string
	status     string
}

// NewContent creates a content body for the given instance.
func NewContent(id, widgetType string, width int, props map[string]string) *Content {
	if props == nil {
		props = map[string]string{}
	}
	return &Content{id: id, widgetType: widgetType, width: width, props: props}
}

func (c *Content) Init() tea.Cmd {
	return nil
}

func (c *Content) Update(msg tea.Msg) (Body, tea.Cmd) {
	switch msg := msg.(type) {
	case contentOpenedMsg:
		if msg.ID == c.id && msg.Err != nil {
			c.status = "could not open browser"
		}
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "o" {
			if link := c.link(); link != "" {
				return c, c.open(link)
			}
		}
	}
	return c, nil
}

func (c *Content) View() string {
	var lines []string
	for _, row := range c.rows() {
		if row.value == "" {
			continue
		}
		label := theme.MutedStyle.Render(row.label + ": ")
		lines = append(lines, label+row.value)
	}
	if len(lines) == 0 {
		lines = append(lines, theme.MutedStyle.Render("no details"))
	}
	if link := c.link(); link != "" {
		lines = append(lines, theme.HelpStyle.Render("o open in browser"))
	}
	if c.status != "" {
		lines = append(lines, theme.MutedStyle.Render(c.status))
	}

	wrap := lipgloss.NewStyle().Width(c.width)
	return wrap.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

type contentRow struct {
	label string
	value string
}

// rows selects the payload fields shown for each content widget type.
func (c *Content) rows() []contentRow {
	p := c.props
	switch c.widgetType {
	case "event-details":
		return []contentRow{
			{"When", formatWhen(p["eventDate"])},
			{"Where", p["eventLocation"]},
			{"Details", p["eventDescription"]},
		}
	case "youtube-player":
		return []contentRow{
			{"Channel", p["channelName"]},
			{"Video", p["videoId"]},
			{"Duration", p["duration"]},
		}
	case "blog-reader":
		return []contentRow{
			{"Author", p["author"]},
			{"Summary", p["summary"]},
		}
	case "problem-details":
		return []contentRow{
			{"Difficulty", p["difficulty"]},
			{"Topic", p["topic"]},
		}
	case "meeting-details":
		return []contentRow{
			{"Starts", formatWhen(p["startTime"])},
			{"Meeting", p["meetingId"]},
		}
	default:
		return []contentRow{
			{"Message", p["message"]},
		}
	}
}

// link returns the first URL-carrying payload field for this type.
func (c *Content) link() string {
	p := c.props
	switch c.widgetType {
	case "youtube-player":
		if id := p["videoId"]; id != "" {
			return "https://www.youtube.com/watch?v=" + id
		}
	case "blog-reader":
		return p["blogUrl"]
	case "problem-details":
		return p["problemUrl"]
	case "meeting-details":
		return p["meetingUrl"]
	}
	return p["url"]
}

func (c *Content) open(target string) tea.Cmd {
	id := c.id
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", target)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
		default:
			cmd = exec.Command("xdg-open", target)
		}
		return contentOpenedMsg{ID: id, Err: cmd.Start()}
	}
}

// formatWhen renders an RFC 3339 timestamp in local time, passing
// through anything that does not parse.
func formatWhen(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Local().Format("Mon Jan 2, 15:04")
	}
	return ts
}
