package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "FOOTBALL TEAMS"
	appSubtitle = "in top 6 leagues of Europe"
)

// renderHeader renders the title bar with the result count on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("⚽", styles.Logo) + bg.Space() +
		bg.Render(appTitle, styles.Text.Bold(true)) + bg.Space() +
		bg.Render(appSubtitle, styles.AccentText.Bold(true))

	total := len(m.browser.Teams())
	count := fmt.Sprintf("%d clubs", total)
	if m.view.SearchTerm != "" {
		count = fmt.Sprintf("%d/%d clubs", len(m.view.Filtered), total)
	}
	right := bg.Render(count, styles.InfoText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // header padding
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderCommandBar renders key hints, or the pending notice.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.notice.text != "" {
		return styles.Footer.Width(m.width).Render(bg.Render(m.notice.text, m.notice.style(styles)))
	}

	bindings := m.keys.ShortHelp()
	if m.searching {
		bindings = []key.Binding{m.keys.Confirm, m.keys.Escape}
	}
	return styles.Footer.Width(m.width).Render(m.renderHints(bindings, styles, bg))
}

func (m Model) renderHints(bindings []key.Binding, styles Styles, bg BgStyle) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	return bg.Join(parts, "  ")
}
