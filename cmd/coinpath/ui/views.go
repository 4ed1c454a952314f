package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/coinpath/grade"
)

var tabTitles = [tabCount]string{"Play Game", "Learn Kadane", "About"}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Maximum Subarray Game - Coin Path"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.active {
	case tabPlay:
		b.WriteString(m.viewPlay())
	case tabLearn:
		b.WriteString(m.viewLearn())
	default:
		b.WriteString(m.viewAbout())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := m.styles.TabInactive
		if t == m.active {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(tabTitles[t]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// viewPlay renders the guessing game: the board with the player's chosen
// path highlighted, the running total of the choice, and the verdict once
// an answer has been checked.
func (m Model) viewPlay() string {
	var b strings.Builder

	b.WriteString(m.styles.Text.Render(
		"Each number is a tile on the ground. Positive = you gain coins, negative = you lose coins."))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(
		"Pick one continuous stretch of tiles so your total coins is as big as possible."))
	b.WriteString("\n\n")

	guess := m.guess
	b.WriteString(m.styles.renderTiles(m.seq, &guess, nil))
	b.WriteString("\n\n")

	picked, err := m.seq.Slice(m.guess)
	if err == nil {
		sum := 0
		for _, v := range picked {
			sum += v
		}
		b.WriteString(m.styles.Text.Render(fmt.Sprintf("Your path %s picks %v for a total of %d coins.", m.guess, picked, sum)))
		b.WriteString("\n")
	}

	if m.report != nil {
		b.WriteString("\n")
		b.WriteString(m.renderVerdict(*m.report))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(
			"Hint: if a number makes your total go too low, it might be better to start a new path after it."))
	} else {
		b.WriteString(m.styles.Muted.Render("Press enter to check your answer."))
	}

	return b.String()
}

// renderVerdict maps the grade outcome to the three message tones.
func (m Model) renderVerdict(rep grade.Report) string {
	ref := rep.Reference
	best, _ := m.seq.Slice(ref.Range)

	switch rep.Outcome {
	case grade.ExactMatch:
		return m.styles.Success.Render(fmt.Sprintf(
			"Perfect! You picked the best path: %v with total coins %d.", best, ref.Sum))
	case grade.TiedSum:
		return m.styles.Info.Render(fmt.Sprintf(
			"Nice! Your path has the best total %d. One best path is %v (indexes %d-%d).",
			rep.UserSum, best, ref.Range.Start, ref.Range.End))
	default:
		return m.styles.Error.Render(fmt.Sprintf(
			"Not quite. Your path gives %d coins, but the best path gives %d coins from %v (indexes %d-%d).",
			rep.UserSum, ref.Sum, best, ref.Range.Start, ref.Range.End))
	}
}

// viewLearn renders the step-by-step walkthrough: legend, board with the
// walking and best paths highlighted, the numeric stats, and the
// narrative for the latest transition.
func (m Model) viewLearn() string {
	var b strings.Builder

	b.WriteString(m.styles.renderLegend())
	b.WriteString("\n\n")

	current := m.state.Current()
	best := m.state.Best()
	b.WriteString(m.styles.renderTiles(m.seq, &current, &best))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Current index: %d", m.state.Position)))
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Current path sum: %d", m.state.CurrentSum)))
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Best sum so far: %d", m.state.BestSum)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Narrative.Render(m.state.Narrative))

	return b.String()
}

// viewAbout renders the static explainer.
func (m Model) viewAbout() string {
	lines := []string{
		"You are learning the Maximum Subarray Problem:",
		"  find a continuous slice of numbers with the largest total.",
		"",
		"Computers solve it quickly with Kadane's Algorithm:",
		"  walk the numbers left to right, and at each step decide:",
		"  \"should I continue my current path?\" or \"should I start fresh here?\"",
		"",
		"This is a tiny example of dynamic programming: you use what you",
		"already know (previous best sums) to make the next decision smarter.",
	}

	return m.styles.Text.Render(strings.Join(lines, "\n"))
}
