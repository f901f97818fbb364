package theme

import "github.com/charmbracelet/lipgloss"

// Wallpaper is a named background fill for the dashboard surface.
// The cell-grid analog of a wallpaper image: a repeating rune pattern
// in a muted color.
type Wallpaper struct {
	Name    string
	Pattern string
	Style   lipgloss.Style
}

// wallpapers is the built-in gallery, first entry is the default.
var wallpapers = []Wallpaper{
	{
		Name:    "midnight",
		Pattern: "  ·   ",
		Style:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#2D3250", Light: "#CBD5E0"}),
	},
	{
		Name:    "aurora",
		Pattern: " ~  ≈ ",
		Style:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#2F5D50", Light: "#9AE6B4"}),
	},
	{
		Name:    "dunes",
		Pattern: "  ⌒   ",
		Style:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#5C4033", Light: "#D6BCFA"}),
	},
	{
		Name:    "starfield",
		Pattern: " ✦  · ",
		Style:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#44475A", Light: "#A0AEC0"}),
	},
	{
		Name:    "plain",
		Pattern: " ",
		Style:   lipgloss.NewStyle(),
	},
}

// DefaultWallpaperNames returns the built-in gallery names in order.
func DefaultWallpaperNames() []string {
	names := make([]string, len(wallpapers))
	for i, w := range wallpapers {
		names[i] = w.Name
	}
	return names
}

// WallpaperByName returns the wallpaper with the given name, falling
// back to the default when the name is unknown.
func WallpaperByName(name string) Wallpaper {
	for _, w := range wallpapers {
		if w.Name == name {
			return w
		}
	}
	return wallpapers[0]
}
