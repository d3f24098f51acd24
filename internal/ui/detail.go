package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/pitchside/internal/clubs"
)

type linkCopiedMsg struct{ err error }

func copyLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return linkCopiedMsg{err: clipboard.WriteAll(url)}
	}
}

// hyperlink wraps label in an OSC 8 link; terminals that support it open the
// target in the browser. Without a target the label is returned as is.
func hyperlink(url, label string) string {
	if strings.TrimSpace(url) == "" {
		return label
	}
	return termenv.Hyperlink(url, label)
}

// renderDetail renders the overlay for the selected club: stats on the
// left, history and link on the right. Narrow terminals stack the two.
func (m Model) renderDetail(team clubs.Team) string {
	styles := m.theme.Styles()

	modalWidth := min(DetailModalWidth, max(m.width-2, 20))
	inner := modalWidth - 6 // border + padding
	stacked := inner < 60

	colWidth := inner
	if !stacked {
		colWidth = (inner - 3) / 2
	}

	stats := m.renderDetailStats(team, colWidth, styles)
	history := m.renderDetailHistory(team, colWidth, styles)

	var body string
	if stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, stats, "", history)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, stats, "   ", history)
	}

	footer := m.renderHints([]key.Binding{m.keys.Close, m.keys.CopyLink}, styles, NewBgStyle(m.theme.Background))
	if m.notice.text != "" {
		footer = m.notice.style(styles).Render(m.notice.text)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, body, "", footer)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) renderDetailStats(team clubs.Team, width int, styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(truncate(team.Club+" Stats", width)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 30))))
	b.WriteString("\n")

	logo := styles.FaintText.Render("○ no crest")
	if strings.TrimSpace(team.Logo) != "" {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.LeagueColor(team.League))).Render("◆")
		logo = marker + " " + hyperlink(team.Logo, styles.AccentText.Underline(true).Render("crest"))
	}
	b.WriteString(logo)
	b.WriteString("  ")
	b.WriteString(styles.LeagueStyle(team.League).Render(truncate(team.League, max(width-16, 4))))
	b.WriteString("\n\n")

	labelStyle := styles.MutedText.Width(20)
	for _, stat := range team.Stats() {
		b.WriteString(labelStyle.Render(stat.Label + ":"))
		b.WriteString(styles.Text.Render(truncate(stat.Value, max(width-20, 4))))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDetailHistory(team clubs.Team, width int, styles Styles) string {
	title := styles.AccentText.Bold(true).Render("Club History")
	rule := styles.FaintText.Render(strings.Repeat("─", min(width, 30)))

	description := strings.TrimSpace(team.Description)
	if description == "" {
		description = "No description available."
	}
	text := styles.Text.Width(width).Render(description)

	link := styles.FaintText.Render("No details link")
	if strings.TrimSpace(team.URL) != "" {
		link = hyperlink(team.URL, styles.AccentText.Underline(true).Render("More details ↗"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, rule, text, "", link)
}
