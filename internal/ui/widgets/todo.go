package widgets

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
	"github.com/dashy/dashy/internal/theme"
)

// TodosLoadedMsg carries the persisted to-do list for one instance.
type TodosLoadedMsg struct {
	ID    string
	Items []model.TodoItem
}

// todosSavedMsg confirms a persist.
type todosSavedMsg struct {
	ID string
}

// Todo is a small persisted checklist. j/k move the cursor, x toggles,
// d deletes, a opens the new-item input.
type Todo struct {
	id     string
	width  int
	height int
	deps   Deps

	items  []model.TodoItem
	cursor int
	input  textinput.Model
}

// NewTodo creates a to-do body sized to the given inner area.
func NewTodo(id string, width, height int, deps Deps) *Todo {
	ti := textinput.New()
	ti.Placeholder = "new item..."
	ti.Prompt = "> "
	ti.Width = width - 4
	return &Todo{id: id, width: width, height: height, deps: deps, input: ti}
}

func (t *Todo) Init() tea.Cmd {
	id := t.id
	s := t.deps.Store
	log := t.deps.Log
	return func() tea.Msg {
		var items []model.TodoItem
		ok, err := store.GetJSON(context.Background(), s, store.KeyTodos, &items)
		if err != nil {
			log.Warn("discarding malformed to-do state", "error", err)
		}
		if !ok || err != nil {
			items = nil
		}
		return TodosLoadedMsg{ID: id, Items: items}
	}
}

func (t *Todo) Update(msg tea.Msg) (Body, tea.Cmd) {
	switch msg := msg.(type) {
	case TodosLoadedMsg:
		if msg.ID == t.id {
			t.items = msg.Items
			t.clampCursor()
		}
		return t, nil

	case todosSavedMsg:
		return t, nil

	case tea.KeyMsg:
		if t.input.Focused() {
			return t.handleInputKeys(msg)
		}
		return t.handleListKeys(msg)
	}
	return t, nil
}

func (t *Todo) handleInputKeys(msg tea.KeyMsg) (Body, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := t.input.Value()
		t.input.Reset()
		t.input.Blur()
		if text == "" {
			return t, nil
		}
		t.items = append(t.items, model.TodoItem{
			ID:   uuid.New().String(),
			Text: text,
		})
		t.cursor = len(t.items) - 1
		return t, t.save()

	case "esc":
		t.input.Reset()
		t.input.Blur()
		return t, nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *Todo) handleListKeys(msg tea.KeyMsg) (Body, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		t.cursor++
		t.clampCursor()
	case "k", "up":
		t.cursor--
		t.clampCursor()
	case "x", " ":
		if t.cursor < len(t.items) {
			t.items[t.cursor].Completed = !t.items[t.cursor].Completed
			return t, t.save()
		}
	case "d":
		if t.cursor < len(t.items) {
			t.items = append(t.items[:t.cursor], t.items[t.cursor+1:]...)
			t.clampCursor()
			return t, t.save()
		}
	case "a", "enter":
		return t, t.input.Focus()
	}
	return t, nil
}

func (t *Todo) View() string {
	var lines []string
	if t.input.Focused() {
		lines = append(lines, t.input.View())
	}

	visible := t.height - len(lines) - 1
	if len(t.items) == 0 {
		lines = append(lines, theme.MutedStyle.Render("nothing to do"))
	}
	for i, item := range t.items {
		if i >= visible {
			lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("+%d more", len(t.items)-i)))
			break
		}
		check := "[ ]"
		style := theme.ListItemStyle
		if item.Completed {
			check = "[x]"
			style = style.Foreground(theme.ColorGray).Strikethrough(true)
		}
		if i == t.cursor && !t.input.Focused() {
			style = theme.SelectedItemStyle
		}
		lines = append(lines, style.Render(check+" "+item.Text))
	}

	lines = append(lines, theme.HelpStyle.Render("a add · x done · d del"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Editing reports whether the new-item input owns key input.
func (t *Todo) Editing() bool {
	return t.input.Focused()
}

func (t *Todo) clampCursor() {
	if t.cursor >= len(t.items) {
		t.cursor = len(t.items) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// save persists the full list snapshot, best-effort.
func (t *Todo) save() tea.Cmd {
	id := t.id
	s := t.deps.Store
	log := t.deps.Log
	items := make([]model.TodoItem, len(t.items))
	copy(items, t.items)
	return func() tea.Msg {
		if err := store.SetJSON(context.Background(), s, store.KeyTodos, items); err != nil {
			log.Warn("persisting to-do list", "error", err)
		}
		return todosSavedMsg{ID: id}
	}
}
