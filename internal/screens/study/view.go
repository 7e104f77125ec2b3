package study

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.ctrl.Phase() {
	case session.PhaseLoading:
		return center(width, height, theme.Hint.Render("Loading vocabulary…"))
	case session.PhaseFailed:
		return s.renderFailed(width, height)
	case session.PhaseCompleted:
		return s.renderCompleted(width, height)
	}
	return s.renderCard(width, height)
}

func (s *StudyScreen) renderFailed(width, height int) string {
	msg := theme.Incorrect.Render("Could not load vocabulary") + "\n\n" +
		theme.Body.Render(s.ctrl.FailureMessage()) + "\n\n" +
		theme.Hint.Render("Press R to retry")
	return center(width, height, msg)
}

func (s *StudyScreen) renderCompleted(width, height int) string {
	msg := theme.Correct.Render("No cards match the current filters") + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("Deck: %s · Level: %s", s.ctrl.SelectedDeckTitle(), s.ctrl.SelectedLevelTitle())) + "\n" +
		theme.Hint.Render("Relax a filter (Ctrl+D decks, Ctrl+L level) or come back later.")
	return center(width, height, msg)
}

func (s *StudyScreen) renderCard(width, height int) string {
	card := s.ctrl.Current()
	if card == nil {
		return center(width, height, theme.Hint.Render("Nothing to study."))
	}

	now := time.Now()
	var b strings.Builder

	// Context line: deck, level filter, position, due count.
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"%s · %s · card %d of %d · %d due",
		s.ctrl.SelectedDeckTitle(),
		s.ctrl.SelectedLevelTitle(),
		s.ctrl.Position(),
		s.ctrl.TotalCount(),
		s.ctrl.DueCount(now),
	)))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(capitalize(card.Word)))
	b.WriteString("  ")
	b.WriteString(levelBadge(card.Level))
	b.WriteString("\n\n")

	if !s.ctrl.Revealed() {
		b.WriteString(theme.Body.Render("Your translation:"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Enter to check · Tab to reveal"))
	} else {
		b.WriteString(s.renderBack(card.Definition, card.Example, card.Translation))
	}

	content := theme.Card.Width(cardWidth(width)).Render(b.String())
	return center(width, height, content)
}

func (s *StudyScreen) renderBack(definition, example, translation string) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render(definition))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("“" + example + "”"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(translation))
	b.WriteString("\n\n")

	if s.ctrl.Checked() {
		if s.ctrl.DraftMatches() {
			b.WriteString(theme.Correct.Render("Correct: " + s.ctrl.Draft()))
		} else if strings.TrimSpace(s.ctrl.Draft()) == "" {
			b.WriteString(theme.Hint.Render("No answer given"))
		} else {
			b.WriteString(theme.Incorrect.Render("Your answer: " + s.ctrl.Draft()))
		}
		b.WriteString("\n\n")
		b.WriteString(outcomeBar())
	} else {
		b.WriteString(theme.Hint.Render("Enter to check your answer first"))
	}

	return b.String()
}

func outcomeBar() string {
	return theme.OutcomeAgain.Render("[1] Again 10m") + "   " +
		theme.OutcomeGood.Render("[2] Good") + "   " +
		theme.OutcomeEasy.Render("[3] Easy")
}

func levelBadge(level string) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Padding(0, 1).
		Render(level)
}

func cardWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
