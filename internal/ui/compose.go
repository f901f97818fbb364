package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dashy/dashy/internal/theme"
)

// WallpaperFill renders the surface background: the wallpaper's rune
// pattern tiled across the full viewport.
func WallpaperFill(width, height int, wp theme.Wallpaper) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	pattern := wp.Pattern
	if pattern == "" {
		pattern = " "
	}
	row := strings.Repeat(pattern, width/len([]rune(pattern))+1)
	row = string([]rune(row)[:width])
	styled := wp.Style.Render(row)

	rows := make([]string, height)
	for i := range rows {
		rows[i] = styled
	}
	return strings.Join(rows, "\n")
}

// Overlay splices fg into bg at cell position (x, y). Both strings may
// carry ANSI styling; rows of fg replace the covered cells of bg while
// the uncovered left and right remnants keep their own styling.
func Overlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for i, fgLine := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLine := bgLines[row]

		left := ansi.Truncate(bgLine, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bgLine, x+ansi.StringWidth(fgLine), "")

		bgLines[row] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// OverlayCentered places fg in the middle of a viewport-sized bg.
func OverlayCentered(vpWidth, vpHeight int, fg, bg string) string {
	w := lipgloss.Width(fg)
	h := lipgloss.Height(fg)
	return Overlay(max(0, (vpWidth-w)/2), max(0, (vpHeight-h)/2), fg, bg)
}

// RenderWindow draws one floating window: a full-width header row with
// the close control and title, then the body framed by the side and
// bottom borders. The header is the top row of the footprint, so the
// drag and close hit-tests line up with what is drawn.
func RenderWindow(title, body string, spec Spec, focused bool) string {
	innerW := spec.Width - 2

	headerText := ""
	if !spec.HideControls {
		headerText = theme.CloseControlStyle.Render("[x]") + " "
	}
	headerText += ansi.Truncate(title, spec.Width-lipgloss.Width(headerText)-1, "…")
	header := theme.WindowHeaderStyle.
		Width(spec.Width).
		MaxHeight(1).
		Render(headerText)

	borderColor := theme.ColorBorder
	if focused {
		borderColor = theme.ColorBlue
	}
	framed := theme.WindowBorderStyle.
		BorderForeground(borderColor).
		BorderTop(false).
		Width(innerW).
		Height(spec.Height - 2).
		MaxHeight(spec.Height - 1).
		Render(theme.WindowBodyStyle.MaxWidth(innerW).Render(body))

	return lipgloss.JoinVertical(lipgloss.Left, header, framed)
}
