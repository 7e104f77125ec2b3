package decks

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmoretti/wordflow/internal/router"
	"github.com/dmoretti/wordflow/internal/screen"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/ui/components"
	"github.com/dmoretti/wordflow/internal/ui/theme"
)

// DeckScreen lets the learner pick the deck filter.
type DeckScreen struct {
	ctrl *session.Controller
	menu components.Menu
}

var _ screen.Screen = (*DeckScreen)(nil)

// New creates a DeckScreen listing every available deck plus "All decks".
func New(ctrl *session.Controller) *DeckScreen {
	decks := ctrl.AvailableDecks()

	items := make([]components.MenuItem, 0, len(decks)+1)
	items = append(items, components.MenuItem{
		Label:  fmt.Sprintf("%s (%d)", session.AllDecksLabel, totalCards(decks)),
		Action: selectAction(ctrl, session.AllDecks),
	})
	for _, d := range decks {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s (%d)", d.Name, d.CardCount),
			Action: selectAction(ctrl, d.ID),
		})
	}

	s := &DeckScreen{
		ctrl: ctrl,
		menu: components.NewMenu(items),
	}
	s.preselect(decks)
	return s
}

// selectAction applies the deck filter and pops back to the caller.
func selectAction(ctrl *session.Controller, deckID string) func() tea.Cmd {
	return func() tea.Cmd {
		ctrl.SetDeck(deckID, time.Now())
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
}

// preselect moves the cursor to the currently active deck.
func (s *DeckScreen) preselect(decks []session.Deck) {
	selected := s.ctrl.SelectedDeck()
	if selected == session.AllDecks {
		return
	}
	for i, d := range decks {
		if d.ID == selected {
			s.menu.Selected = i + 1 // offset for the "All decks" entry
			return
		}
	}
}

func (s *DeckScreen) Init() tea.Cmd {
	return nil
}

func (s *DeckScreen) Title() string {
	return "Decks"
}

func (s *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DeckScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Choose a deck"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Levels are scoped to the selected deck"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(s.menu.View())))

	if desc := s.selectedDescription(); desc != "" {
		sections = append(sections, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(desc)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// selectedDescription returns the highlighted deck's description.
func (s *DeckScreen) selectedDescription() string {
	if s.menu.Selected == 0 {
		return ""
	}
	decks := s.ctrl.AvailableDecks()
	idx := s.menu.Selected - 1
	if idx < 0 || idx >= len(decks) {
		return ""
	}
	return decks[idx].Description
}

func totalCards(decks []session.Deck) int {
	total := 0
	for _, d := range decks {
		total += d.CardCount
	}
	return total
}
