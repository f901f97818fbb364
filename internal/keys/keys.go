package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the dashboard.
type KeyMap struct {
	// Quit / overlays
	Quit key.Binding
	Back key.Binding
	Help key.Binding

	// Dock widget slots
	AddClock      key.Binding
	AddNotes      key.Binding
	AddWeather    key.Binding
	AddCalculator key.Binding
	AddTodo       key.Binding
	AddSearch     key.Binding
	AddQuote      key.Binding

	// Panels
	Notifications key.Binding
	Wallpaper     key.Binding
	Settings      key.Binding

	// Notifications
	EnableAlerts key.Binding
	Refresh      key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		AddClock: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "add clock"),
		),
		AddNotes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "add notes"),
		),
		AddWeather: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "add weather"),
		),
		AddCalculator: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "add calculator"),
		),
		AddTodo: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "add to-do list"),
		),
		AddSearch: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "add search"),
		),
		AddQuote: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "add quote"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Wallpaper: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "change wallpaper"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		EnableAlerts: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "enable alerts"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh sources"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact
// help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Help, k.Notifications, k.Wallpaper, k.Settings, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the
// expanded help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddClock, k.AddNotes, k.AddWeather, k.AddCalculator},
		{k.AddTodo, k.AddSearch, k.AddQuote},
		{k.Notifications, k.Wallpaper, k.Settings},
		{k.EnableAlerts, k.Refresh, k.Help, k.Back, k.Quit},
	}
}
