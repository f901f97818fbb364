package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// Calculator evaluates arithmetic expressions with +, -, *, / and
// parentheses.
type Calculator struct {
	id    string
	width int

	input   textinput.Model
	history []string
	errText string
}

// NewCalculator creates a calculator body sized to the given inner
// width.
func NewCalculator(id string, width int) *Calculator {
	ti := textinput.New()
	ti.Placeholder = "2*(3+4)"
	ti.Prompt = "= "
	ti.Width = width - 4
	return &Calculator{id: id, width: width, input: ti}
}

func (c *Calculator) Init() tea.Cmd {
	return nil
}

func (c *Calculator) Update(msg tea.Msg) (Body, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.input.Focused() {
		switch key.String() {
		case "enter":
			expr := strings.TrimSpace(c.input.Value())
			if expr == "" {
				return c, nil
			}
			c.errText = ""
			result, err := evaluate(expr)
			if err != nil {
				c.errText = err.Error()
				return c, nil
			}
			c.history = append([]string{fmt.Sprintf("%s = %s", expr, formatNumber(result))}, c.history...)
			if len(c.history) > 4 {
				c.history = c.history[:4]
			}
			c.input.Reset()
			return c, nil
		case "esc":
			c.input.Blur()
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	switch key.String() {
	case "e", "enter":
		return c, c.input.Focus()
	}
	return c, nil
}

func (c *Calculator) View() string {
	lines := []string{c.input.View()}
	if c.errText != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ColorRed).Render(c.errText))
	}
	for _, entry := range c.history {
		lines = append(lines, theme.MutedStyle.Render(entry))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Editing reports whether the expression input owns key input.
func (c *Calculator) Editing() bool {
	return c.input.Focused()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// evaluate parses and computes an arithmetic expression using
// precedence climbing.
func evaluate(expr string) (float64, error) {
	p := &exprParser{input: expr}
	v, err := p.parseExpr(0)
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q", p.input[p.pos:])
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

// binding powers for the binary operators.
var precedence = map[byte]int{'+': 1, '-': 1, '*': 2, '/': 2}

func (p *exprParser) parseExpr(minPrec int) (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return left, nil
		}
		op := p.input[p.pos]
		prec, ok := precedence[op]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.pos++

		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return 0, err
		}

		switch op {
		case '+':
			left += right
		case '-':
			left -= right
		case '*':
			left *= right
		case '/':
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	if p.input[p.pos] == '(' {
		p.pos++
		v, err := p.parseExpr(0)
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("unexpected %q", p.input[p.pos:])
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
