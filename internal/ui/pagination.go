package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderPagination renders the Back/Next controls around the page
// indicator. A control that cannot act is drawn disabled.
func (m Model) renderPagination() string {
	styles := m.theme.Styles()

	back := m.renderControl(ternary(m.view.CanPrev, "◀ Back", "◁ Back"), m.view.CanPrev)
	next := m.renderControl(ternary(m.view.CanNext, "Next ▶", "Next ▷"), m.view.CanNext)

	pager := m.pager
	pager.ActiveDot = styles.AccentText.Render("●")
	pager.InactiveDot = styles.FaintText.Render("○")

	label := "Page –"
	if m.view.TotalPages > 0 {
		label = fmt.Sprintf("Page %d/%d", m.view.CurrentPage, m.view.TotalPages)
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Center,
		"  ", pager.View(), "  ", styles.MutedText.Render(label), "  ")

	row := lipgloss.JoinHorizontal(lipgloss.Center, back, middle, next)
	return lipgloss.PlaceHorizontal(m.tableWidth(), lipgloss.Center, row)
}

// renderControl draws a button-like control, muted when disabled. Disabled
// labels use hollow arrows so the state survives colorless terminals.
func (m Model) renderControl(label string, enabled bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if enabled {
		return style.
			Background(lipgloss.Color(m.theme.Accent)).
			Foreground(lipgloss.Color(m.theme.Background)).
			Bold(true).
			Render(label)
	}
	return style.
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Foreground(lipgloss.Color(m.theme.Faint)).
		Strikethrough(true).
		Render(label)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
