package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"agentdash/internal/state"
)

// Card geometry, matched to a three-line body plus border.
const (
	cardMinWidth = 30
	cardMaxWidth = 52
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	} else if len(m.cards) == 0 {
		b.WriteString(emptyStyle.Width(m.width - 2).Render(dimStyle.Render(m.msgs.NoSessions)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderCards())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	active := 0
	for _, c := range m.cards {
		if !c.dim {
			active++
		}
	}
	title := titleStyle.Render("🤖 " + m.msgs.PanelTitle)
	subtitle := subtitleStyle.Render(fmt.Sprintf(m.msgs.SessionsSubtitle, len(m.cards), active))
	return title + "  " + subtitle
}

func (m Model) renderCards() string {
	width := calcCardWidth(len(m.cards), m.width)
	perRow := (m.width - 2) / width
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(m.cards); start += perRow {
		end := min(start+perRow, len(m.cards))
		row := make([]string, 0, end-start)
		for _, c := range m.cards[start:end] {
			row = append(row, m.renderCard(c, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one bordered session card: project name, state badge,
// status detail and model, with the border colored by state.
func (m Model) renderCard(c card, width int) string {
	color := stateColor(c.state.Kind)
	if c.dim {
		color = colorGray
	}

	labelStyle := lipgloss.NewStyle().Foreground(color)
	label := stateIcon(c.state.Kind) + " " + state.Label(c.state.Kind, m.msgs)
	if !c.dim && (c.state.Kind == state.Working || c.state.Kind == state.Thinking) {
		label += " " + spinnerFrames[m.frame%len(spinnerFrames)]
	}

	inner := width - 4 // border and padding
	lines := []string{
		nameStyle.Render(runewidth.Truncate(c.name, inner, "...")),
		labelStyle.Render(label),
	}
	if c.state.Status != "" {
		lines = append(lines, dimStyle.Render(runewidth.Truncate(c.state.Status, inner, "...")))
	}
	if c.model != "" {
		lines = append(lines, modelStyle.Render(c.model))
	}

	return cardStyle.
		BorderForeground(color).
		Width(width - 2).
		Height(4).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	help := fmt.Sprintf(
		"%s: %s  %s: %s",
		m.keys.Refresh.Help().Key, m.keys.Refresh.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
	)
	footer := fmt.Sprintf(m.msgs.Footer, m.cfg.RefreshSeconds)
	return dimStyle.Render("  " + footer + " | " + help)
}

// calcCardWidth spreads the cards across the terminal, clamped to keep
// the three-line body readable.
func calcCardWidth(numCards, consoleWidth int) int {
	if numCards <= 0 {
		return cardMinWidth
	}

	width := (consoleWidth - 4) / numCards
	if width < cardMinWidth {
		width = cardMinWidth
	}
	if width > cardMaxWidth {
		width = cardMaxWidth
	}
	return width
}
