package model

// Theme mode and style constants.
const (
	ThemeModeDark  = "dark"
	ThemeModeLight = "light"

	ThemeStyleGlass = "glass"
	ThemeStyleSolid = "solid"
)

// ThemeSettings is the bag of visual preferences, persisted wholesale
// under the "theme" key.
type ThemeSettings struct {
	Mode         string  `json:"mode"`
	Style        string  `json:"style"`
	BlurStrength int     `json:"blurStrength"`
	BorderRadius int     `json:"borderRadius"`
	TextSize     float64 `json:"textSize"`
	Transparency float64 `json:"transparency"`
}

// DefaultThemeSettings returns the factory defaults used on first run
// and by the settings widget's reset action.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		Mode:         ThemeModeDark,
		Style:        ThemeStyleGlass,
		BlurStrength: 12,
		BorderRadius: 12,
		TextSize:     1,
		Transparency: 0.05,
	}
}
