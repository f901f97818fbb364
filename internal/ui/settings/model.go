// Package settings implements the appearance settings form overlay.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/theme"
)

// SavedMsg is dispatched when the form is submitted.
type SavedMsg struct {
	Settings model.ThemeSettings
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	mode         string
	style        string
	blurStrength string
	borderRadius string
	textSize     string
	transparency string
}

// Model is the settings form overlay.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a settings form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the current settings.
func (m *Model) Start(current model.ThemeSettings) tea.Cmd {
	m.load(current)
	return m.form.Init()
}

// load fills the bindings from settings and rebuilds the form.
func (m *Model) load(s model.ThemeSettings) {
	m.fb.mode = s.Mode
	m.fb.style = s.Style
	m.fb.blurStrength = strconv.Itoa(s.BlurStrength)
	m.fb.borderRadius = strconv.Itoa(s.BorderRadius)
	m.fb.textSize = strconv.FormatFloat(s.TextSize, 'f', -1, 64)
	m.fb.transparency = strconv.FormatFloat(s.Transparency, 'f', -1, 64)
	m.form = m.buildForm()
}

// reset discards any edits and saves the factory defaults.
func (m *Model) reset() tea.Cmd {
	defaults := model.DefaultThemeSettings()
	m.load(defaults)
	return func() tea.Msg { return SavedMsg{Settings: defaults} }
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+r" {
		return m, m.reset()
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Appearance")

	hint := theme.HelpStyle.Render("ctrl+r reset to defaults")
	content := title + "\n" + m.form.View() + "\n" + hint
	return theme.PanelStyle.Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mode").
				Options(
					huh.NewOption("Dark", model.ThemeModeDark),
					huh.NewOption("Light", model.ThemeModeLight),
				).
				Value(&m.fb.mode),
			huh.NewSelect[string]().
				Title("Widget style").
				Options(
					huh.NewOption("Glass", model.ThemeStyleGlass),
					huh.NewOption("Solid", model.ThemeStyleSolid),
				).
				Value(&m.fb.style),
			huh.NewInput().
				Title("Blur strength").
				Value(&m.fb.blurStrength).
				Validate(validateInt("Blur strength")),
			huh.NewInput().
				Title("Border radius").
				Value(&m.fb.borderRadius).
				Validate(validateInt("Border radius")),
			huh.NewInput().
				Title("Text size").
				Value(&m.fb.textSize).
				Validate(validateFloat("Text size")),
			huh.NewInput().
				Title("Transparency").
				Value(&m.fb.transparency).
				Validate(validateFloat("Transparency")),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) handleSubmit() tea.Cmd {
	settings := model.ThemeSettings{
		Mode:  m.fb.mode,
		Style: m.fb.style,
	}
	settings.BlurStrength, _ = strconv.Atoi(strings.TrimSpace(m.fb.blurStrength))
	settings.BorderRadius, _ = strconv.Atoi(strings.TrimSpace(m.fb.borderRadius))
	settings.TextSize, _ = strconv.ParseFloat(strings.TrimSpace(m.fb.textSize), 64)
	settings.Transparency, _ = strconv.ParseFloat(strings.TrimSpace(m.fb.transparency), 64)

	return func() tea.Msg { return SavedMsg{Settings: settings} }
}

func (m Model) formWidth() int {
	w := m.width - 10
	if w < 36 {
		w = 36
	}
	if w > 60 {
		w = 60
	}
	return w
}

func validateInt(fieldName string) func(string) error {
	return func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%s must be a whole number", fieldName)
		}
		return nil
	}
}

func validateFloat(fieldName string) func(string) error {
	return func(s string) error {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("%s must be a number", fieldName)
		}
		return nil
	}
}
