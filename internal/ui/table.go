package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pitchside/internal/clubs"
)

// tableWidth returns the width of the table box.
func (m Model) tableWidth() int {
	return min(m.width, LayoutMaxTableWidth)
}

// renderTable renders the visible page inside a titled box. The box always
// has room for a full page so the controls below it do not jump.
func (m Model) renderTable() string {
	width := m.tableWidth()
	inner := width - 2 // borders
	bg := m.theme.SurfaceAlt

	lines := []string{m.renderTableHeader(inner, bg)}
	if m.view.Empty() {
		lines = append(lines, m.renderEmptyRow(inner, bg))
	}
	for i, team := range m.view.Page {
		selected := i == m.cursor
		rowBg := bg
		if selected {
			rowBg = m.theme.SelectionBg
		}
		line := lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Width(inner).
			Render(m.formatTeamRow(team, inner, rowBg, selected))
		lines = append(lines, line)
	}

	height := m.browser.PageSize() + 3 // header row + borders
	return m.renderTitledBox(m.tableTitle(), strings.Join(lines, "\n"), width, height)
}

// tableTitle returns "Clubs (N)" or "Clubs (visible/total)" when filtered.
func (m Model) tableTitle() string {
	total := len(m.browser.Teams())
	if m.view.SearchTerm == "" {
		return fmt.Sprintf("Clubs (%d)", len(m.view.Filtered))
	}
	return fmt.Sprintf("Clubs (%d/%d) %q", len(m.view.Filtered), total, m.view.SearchTerm)
}

// columnWidths splits the inner width between the table columns. The club
// column takes what is left; narrow terminals lose the league column.
func columnWidths(inner int) (club, league int) {
	fixed := colLogo + colSquad + colForeigners + 4 // separating spaces
	if inner < LayoutCompactWidth {
		return max(inner-fixed, 8), 0
	}
	return max(inner-fixed-colLeague-1, 8), colLeague
}

func (m Model) renderTableHeader(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)
	head := styles.MutedText.Bold(true)

	club, league := columnWidths(width)
	parts := []string{
		bg.Render(cell("", colLogo), head),
		bg.Render(cell("Club", club), head),
	}
	if league > 0 {
		parts = append(parts, bg.Render(cell("League", league), head))
	}
	parts = append(parts,
		bg.Render(padLeft("Squad", colSquad), head),
		bg.Render(padLeft("Foreigners", colForeigners), head),
	)
	return bg.FillLine(bg.Join(parts, " "), width)
}

func (m Model) renderEmptyRow(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)
	msg := "No clubs"
	if m.view.SearchTerm != "" {
		msg = fmt.Sprintf("No clubs match %q", m.view.SearchTerm)
	}
	return bg.FillLine(bg.Spaces(colLogo+1)+bg.Render(msg, styles.MutedText), width)
}

// formatTeamRow formats one club row. When selected is true, every part uses
// SelectionText so the row stays readable on the selection background.
func (m Model) formatTeamRow(team clubs.Team, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	var logoStyle, clubStyle, leagueStyle, numStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		logoStyle, clubStyle, leagueStyle, numStyle = selText, selText.Bold(true), selText, selText
	} else {
		logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.LeagueColor(team.League)))
		clubStyle = styles.Text
		leagueStyle = styles.MutedText
		numStyle = styles.Text
	}

	club, league := columnWidths(width)
	parts := []string{
		bg.Render(cell(logoMarker(team), colLogo), logoStyle),
		bg.Render(cell(team.Club, club), clubStyle),
	}
	if league > 0 {
		parts = append(parts, bg.Render(cell(team.League, league), leagueStyle))
	}
	parts = append(parts,
		bg.Render(padLeft(team.Squad.String(), colSquad), numStyle),
		bg.Render(padLeft(team.Foreigners.String(), colForeigners), numStyle),
	)
	return bg.Join(parts, " ")
}

// logoMarker stands in for the crest image, which a terminal cannot show.
func logoMarker(team clubs.Team) string {
	if strings.TrimSpace(team.Logo) == "" {
		return "○"
	}
	return "◆"
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Frame style: ┌─── Title ───┐
// The border is muted while the search box has focus.
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderColor := m.theme.Border
	if m.searching {
		borderColor = m.theme.BorderMuted
	}
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := width - 2 // Account for left and right border chars
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0) // -2 for spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(m.theme.SurfaceAlt))

	// Pad or truncate content lines to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	paddedLines := make([]string, 0, boxHeight)
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
