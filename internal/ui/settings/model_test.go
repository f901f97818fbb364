package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/model"
)

func TestResetSavesDefaults(t *testing.T) {
	m := New(80, 24)
	custom := model.ThemeSettings{
		Mode:         model.ThemeModeLight,
		Style:        model.ThemeStyleSolid,
		BlurStrength: 99,
		BorderRadius: 3,
		TextSize:     2,
		Transparency: 0.9,
	}
	m.Start(custom)

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatal("reset produced no command")
	}

	saved, ok := cmd().(SavedMsg)
	if !ok {
		t.Fatalf("reset command produced %T, want SavedMsg", cmd())
	}
	want := model.DefaultThemeSettings()
	if saved.Settings != want {
		t.Errorf("reset saved %+v, want %+v", saved.Settings, want)
	}

	// The bindings follow suit so reopening the form shows defaults.
	if m.fb.mode != want.Mode || m.fb.style != want.Style {
		t.Errorf("bindings after reset = %q/%q, want %q/%q",
			m.fb.mode, m.fb.style, want.Mode, want.Style)
	}
}

func TestResetIgnoredBeforeStart(t *testing.T) {
	m := New(80, 24)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd != nil {
		t.Error("expected no command before the form is started")
	}
	if m.form != nil {
		t.Error("expected no form before Start")
	}
}
