package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmoretti/wordflow/internal/router"
	"github.com/dmoretti/wordflow/internal/screen"
	"github.com/dmoretti/wordflow/internal/screens/decks"
	"github.com/dmoretti/wordflow/internal/screens/study"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/ui/components"
	"github.com/dmoretti/wordflow/internal/ui/layout"
	"github.com/dmoretti/wordflow/internal/ui/theme"
)

// resetRequestMsg asks the screen to show the reset confirmation.
type resetRequestMsg struct{}

// resetDoneMsg signals that the durable reset finished.
type resetDoneMsg struct{}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	ctrl         *session.Controller
	menu         components.Menu
	confirmReset bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctrl *session.Controller) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(ctrl)}
			}
		}},
		{Label: "DECKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(ctrl)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg { return resetRequestMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ctrl: ctrl,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return screen.BeginLoad(h.ctrl)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset all progress"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		h.ctrl.FinishReset(time.Now())
		return h, nil

	case resetRequestMsg:
		h.confirmReset = true
		return h, nil

	case tea.KeyMsg:
		if h.confirmReset {
			switch msg.String() {
			case "y", "Y":
				h.confirmReset = false
				reset := h.ctrl.StartReset()
				return h, func() tea.Msg {
					_ = reset(context.Background())
					return resetDoneMsg{}
				}
			case "n", "N", "esc":
				h.confirmReset = false
				return h, nil
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("WORDFLOW"))
	sections = append(sections, theme.Subtitle.Width(width).Render("IELTS vocabulary, spaced out"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.statusLine()))
	if bar := h.scheduleBar(); bar != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	}
	sections = append(sections, "")

	menu := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if h.confirmReset {
		prompt := theme.Incorrect.Render("Reset all progress? ") +
			theme.Hint.Render("This clears every card's schedule. [y/n]")
		sections = append(sections, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// scheduleBar shows how much of the queue is already scheduled into the
// future, i.e. not waiting right now.
func (h *HomeScreen) scheduleBar() string {
	if h.ctrl.Phase() == session.PhaseLoading || h.ctrl.Phase() == session.PhaseFailed {
		return ""
	}
	total := h.ctrl.TotalCount()
	if total == 0 {
		return ""
	}
	due := h.ctrl.DueCount(time.Now())
	done := float64(total-due) / float64(total)
	return components.NewProgressBar("Scheduled", done, true, 24).View()
}

func (h *HomeScreen) statusLine() string {
	switch h.ctrl.Phase() {
	case session.PhaseLoading:
		return theme.Hint.Render("Loading vocabulary…")
	case session.PhaseFailed:
		return theme.Incorrect.Render("Could not load vocabulary: " + h.ctrl.FailureMessage())
	default:
		now := time.Now()
		return theme.Body.Render(fmt.Sprintf(
			"%d due · %d cards · %s · %s",
			h.ctrl.DueCount(now),
			h.ctrl.TotalCount(),
			h.ctrl.SelectedDeckTitle(),
			h.ctrl.SelectedLevelTitle(),
		))
	}
}
