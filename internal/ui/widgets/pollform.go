package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// pollBindings holds form values on the heap so huh's Value() pointers
// remain valid across Bubble Tea model copies.
type pollBindings struct {
	choice string
}

// PollForm renders a survey notification as a selectable form. The
// payload carries the question and a comma-separated option list; a
// payload without options degrades to a read-only view.
type PollForm struct {
	id     string
	width  int
	props  map[string]string
	pb     *pollBindings
	form   *huh.Form
	done   bool
	choice string
}

// NewPollForm creates a poll body for the given instance.
func NewPollForm(id string, width int, props map[string]string) *PollForm {
	if props == nil {
		props = map[string]string{}
	}
	p := &PollForm{id: id, width: width, props: props, pb: &pollBindings{}}

	options := splitOptions(props["options"])
	if len(options) > 0 {
		opts := make([]huh.Option[string], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, o)
		}
		p.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(p.question()).
					Options(opts...).
					Value(&p.pb.choice),
			),
		).WithWidth(width).WithShowHelp(false)
	}
	return p
}

func (p *PollForm) Init() tea.Cmd {
	if p.form == nil {
		return nil
	}
	return p.form.Init()
}

func (p *PollForm) Update(msg tea.Msg) (Body, tea.Cmd) {
	if p.form == nil || p.done {
		return p, nil
	}

	mdl, cmd := p.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.done = true
		p.choice = p.pb.choice
	}
	return p, cmd
}

func (p *PollForm) View() string {
	if p.form == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			p.question(),
			theme.MutedStyle.Render("no options in this survey"),
		)
	}
	if p.done {
		return lipgloss.JoinVertical(lipgloss.Left,
			p.question(),
			"Your answer: "+lipgloss.NewStyle().Bold(true).Render(p.choice),
			theme.MutedStyle.Render("response recorded"),
		)
	}
	return p.form.View()
}

// Editing reports whether the form still owns key input.
func (p *PollForm) Editing() bool {
	return p.form != nil && !p.done
}

func (p *PollForm) question() string {
	if q := p.props["question"]; q != "" {
		return q
	}
	if t := p.props["pollTitle"]; t != "" {
		return t
	}
	return "Survey"
}

func splitOptions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
