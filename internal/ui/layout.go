package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// sourcesPaneMax caps the width of the sources pane on wide terminals.
	sourcesPaneMax = 44
)

// contentHeight returns the height available to the split panes: total minus
// header, command bar and status bar.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 3 {
		return 3
	}
	return h
}

// sourcesPaneWidth returns the width of the left pane.
func (m Model) sourcesPaneWidth() int {
	w := m.width / 3
	if w > sourcesPaneMax {
		w = sourcesPaneMax
	}
	if w < 20 {
		w = 20
	}
	return w
}

// logPaneWidth returns the width of the right pane.
func (m Model) logPaneWidth() int {
	w := m.width - m.sourcesPaneWidth()
	if w < 20 {
		return 20
	}
	return w
}

// renderContent renders the sources and log panes side by side.
func (m Model) renderContent() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSourcesPane(), m.renderLogPane())
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. When focused, the focus border color and
// background are used.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2 // Account for left and right border chars
	if len(title) > innerWidth-2 {
		title = truncate(title, innerWidth-2)
	}
	titleLen := len(title)
	leftPad := (innerWidth - titleLen - 2) / 2 // -2 for spaces around title
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
