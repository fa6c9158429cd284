package ui

import (
	"fmt"
	"strings"
)

// renderSourcesPane renders the log source list for the left side of the
// split.
func (m Model) renderSourcesPane() string {
	focused := m.focusedPane == PaneSources
	width := m.sourcesPaneWidth()

	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	innerWidth := width - 2

	title := fmt.Sprintf("Sources (%d)", len(m.snapshot.Paths))
	content := m.renderSourcesContent(styles, bg, innerWidth)
	return m.renderTitledBox(title, content, width, m.contentHeight(), focused)
}

func (m Model) renderSourcesContent(styles Styles, bg BgStyle, width int) string {
	if m.snapshot.PathsErr != nil && len(m.snapshot.Paths) == 0 {
		return bg.FillLine(bg.Render(truncate(m.snapshot.PathsErr.Error(), width), styles.DangerText), width)
	}
	if len(m.snapshot.Paths) == 0 {
		return bg.FillLine(bg.Render("no log sources", styles.MutedText), width)
	}

	var b strings.Builder
	for i, src := range m.snapshot.Paths {
		name := src.Name
		if name == "" {
			name = src.Path
		}
		name = truncate(name, width-4)

		marker := "  "
		if src.Path == m.snapshot.SelectedPath {
			marker = "▸ "
		}

		var line string
		if i == m.cursor {
			line = m.renderCursorRow(marker+name, width)
		} else {
			nameStyle := styles.Text
			if src.Path == m.snapshot.SelectedPath {
				nameStyle = styles.AccentText
			}
			line = bg.FillLine(bg.Render(marker, styles.FaintText)+bg.Render(name, nameStyle), width)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if desc := strings.TrimSpace(src.Description); desc != "" {
			b.WriteString(bg.FillLine(bg.Spaces(2)+bg.Render(truncate(desc, width-4), styles.FaintText), width))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderCursorRow renders the row under the cursor with the selection colors.
func (m Model) renderCursorRow(text string, width int) string {
	sel := NewBgStyle(m.theme.SelectionBg)
	styles := m.theme.Styles()
	return sel.FillLine(sel.Render(text, styles.Selected), width)
}
