package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderSearchBar renders the search box. While not focused it shows the
// active term, or a hint when there is none. The bar is highlighted while
// it has focus.
func (m Model) renderSearchBar() string {
	surface := m.theme.SurfaceAlt
	if m.searching {
		surface = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(surface)
	bg := NewBgStyle(surface)

	var content string
	switch {
	case m.searching:
		m.search.PromptStyle = styles.AccentText.Bold(true)
		m.search.TextStyle = styles.Text
		m.search.PlaceholderStyle = styles.FaintText
		content = m.search.View()
	case m.view.SearchTerm != "":
		content = bg.Render("Search:", styles.AccentText.Bold(true)) + bg.Space() +
			bg.Render(m.view.SearchTerm, styles.Text) + bg.Spaces(2) +
			bg.Render("(esc clears)", styles.FaintText)
	default:
		content = bg.Render("Search", styles.MutedText) + bg.Space() +
			bg.Render("press / to filter clubs", styles.FaintText)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(surface)).
		Padding(0, 1).
		Width(m.width).
		Render(content)
}
