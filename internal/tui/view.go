package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/coalition/internal/calculator"
)

const barWidth = 24

// View implements tea.Model.
func (a *App) View() string {
	cat := a.sim.Catalog()
	s := a.styles

	var b strings.Builder
	b.WriteString(s.title.Render(cat.Title()+" · Government Formation Simulator") + "\n")
	b.WriteString(s.subtitle.Render(fmt.Sprintf("%d seats · majority %d", cat.TotalSeats(), cat.Majority())) + "\n\n")

	if a.searching || a.search.Value() != "" {
		b.WriteString(a.search.View() + "\n\n")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderParties(),
		a.renderStatus(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderChart(),
		a.renderSuggestions(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.panel.Render(left), " ", s.panel.Render(right)))
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(s.errorMsg.Render("Error: "+a.err.Error()) + "\n")
	case a.statusMsg != "":
		b.WriteString(s.statusMsg.Render(a.statusMsg) + "\n")
	}
	if a.exported != "" {
		b.WriteString("\n" + s.text.Render(a.exported) + "\n")
	}

	b.WriteString(s.muted.Render(a.help()))
	return b.String()
}

func (a *App) renderParties() string {
	s := a.styles
	var b strings.Builder
	b.WriteString(s.section.Render("Parties") + "\n")

	if len(a.visible) == 0 {
		b.WriteString(s.muted.Render("No parties match your search") + "\n")
		return b.String()
	}

	for i, p := range a.visible {
		marker := "  "
		if i == a.cursor {
			marker = s.cursor.Render("> ")
		}
		box := "[ ]"
		style := s.text
		if a.sim.IsSelected(p.ID) {
			box = "[x]"
			style = s.selected
		}
		line := fmt.Sprintf("%s %-10s %3d  %s", box, p.Abbr, p.Seats, p.Name)
		b.WriteString(marker + style.Render(line) + "\n")
	}
	return b.String()
}

func (a *App) renderStatus() string {
	s := a.styles
	st := a.sim.Status()

	var b strings.Builder
	b.WriteString(s.section.Render("Coalition") + "\n")
	b.WriteString(s.text.Render(fmt.Sprintf("Seats: %d / %d", st.Seats, st.Majority)) + "\n")

	switch st.State {
	case calculator.StateEmpty:
		b.WriteString(s.muted.Render("Select parties to form a coalition"))
	case calculator.StateMajority:
		b.WriteString(s.majority.Render("✅ Majority reached!"))
	default:
		b.WriteString(s.minority.Render(fmt.Sprintf("❌ Need %d more seats", st.Needed)))
	}
	return b.String()
}

func (a *App) renderChart() string {
	s := a.styles
	var b strings.Builder
	b.WriteString(s.section.Render("Seats") + "\n")

	for _, bar := range a.sim.Chart() {
		n := int(bar.Percent / 100 * barWidth)
		if n == 0 && bar.Party.Seats > 0 {
			n = 1
		}
		fill := s.barFill
		if bar.Selected {
			fill = s.barPick
		}
		cells := fill.Render(strings.Repeat("█", n)) + strings.Repeat(" ", barWidth-n)
		fmt.Fprintf(&b, "%-10s %s %3d\n", bar.Party.Abbr, cells, bar.Party.Seats)
	}
	return b.String()
}

func (a *App) renderSuggestions() string {
	s := a.styles
	var b strings.Builder
	b.WriteString(s.section.Render("Possible Majority Coalitions") + "\n")

	if len(a.suggestions) == 0 {
		b.WriteString(s.muted.Render("No combination reaches majority"))
		return b.String()
	}
	for i, c := range a.suggestions {
		if i >= maxQuickPicks {
			break
		}
		fmt.Fprintf(&b, "%s %s = %d seats\n",
			s.cursor.Render(fmt.Sprintf("%d.", i+1)),
			s.text.Render(a.sim.Label(c.PartyIDs)),
			c.Seats,
		)
	}
	return b.String()
}

func (a *App) help() string {
	if a.searching {
		return "type to filter · enter keep filter · esc clear"
	}
	return "↑/↓ move · space toggle · / search · 1-5 apply suggestion · r reset · d theme · e export · q quit"
}
