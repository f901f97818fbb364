package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// WindowHeaderStyle renders a floating widget's header row.
var WindowHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorSubtle)

// WindowBodyStyle wraps a floating widget's body area.
var WindowBodyStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// WindowBorderStyle frames a floating widget.
var WindowBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CloseControlStyle renders the close control in a window header.
var CloseControlStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Background(ColorSubtle)

// DockStyle renders the bottom dock bar.
var DockStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DockItemStyle renders one dock entry.
var DockItemStyle = lipgloss.NewStyle().
	Padding(0, 1)

// DockItemActiveStyle highlights a hovered/selected dock entry.
var DockItemActiveStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true).
	Foreground(ColorBlue)

// StatusBarStyle is used for the transient status line above the dock.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// PanelStyle wraps the notification panel and other overlays.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// UnreadStyle marks unread notification entries.
var UnreadStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// MutedStyle renders secondary text in widget bodies.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// Apply tunes the package styles to the given settings. Mode flips the
// foreground palette, style selects glass (no body background, the
// wallpaper shows through) versus solid (opaque body background).
// Blur, radius and pixel text size have no cell-grid equivalent; they
// are carried in settings untouched so the stored shape stays
// compatible.
func Apply(s model.ThemeSettings) {
	fg := ColorWhite
	if s.Mode == model.ThemeModeLight {
		fg = lipgloss.AdaptiveColor{Dark: "#1A202C", Light: "#1A202C"}
	}

	WindowHeaderStyle = WindowHeaderStyle.Foreground(fg)
	WindowBodyStyle = lipgloss.NewStyle().Foreground(fg)

	if s.Style == model.ThemeStyleSolid {
		solid := lipgloss.AdaptiveColor{Dark: "#0F0F1E", Light: "#FFFFFF"}
		WindowBodyStyle = WindowBodyStyle.Background(solid)
		WindowBorderStyle = WindowBorderStyle.Background(solid)
	} else {
		WindowBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
	}
}

// NotificationTypeStyle returns a color-coded style for the given
// notification category label.
func NotificationTypeStyle(typ model.NotificationType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch typ {
	case model.NotificationYoutube:
		return base.Foreground(ColorRed)
	case model.NotificationBlog:
		return base.Foreground(ColorOrange)
	case model.NotificationEvent:
		return base.Foreground(ColorGreen)
	case model.NotificationPotd:
		return base.Foreground(ColorYellow)
	case model.NotificationPoll:
		return base.Foreground(ColorMagenta)
	case model.NotificationMeeting:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}
