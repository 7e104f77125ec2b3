package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dmoretti/wordflow/internal/router"
	"github.com/dmoretti/wordflow/internal/screen"
	"github.com/dmoretti/wordflow/internal/screens/decks"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/srs"
	"github.com/dmoretti/wordflow/internal/ui/components"
	"github.com/dmoretti/wordflow/internal/ui/layout"
)

// StudyScreen presents the current card and commits review outcomes.
type StudyScreen struct {
	ctrl  *session.Controller
	input components.TextInput
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen around the shared session controller.
func New(ctrl *session.Controller) *StudyScreen {
	return &StudyScreen{
		ctrl:  ctrl,
		input: newInput(),
	}
}

func newInput() components.TextInput {
	return components.NewTextInput("Type the translation…", 60)
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(
		screen.BeginLoad(s.ctrl),
		s.input.Init(),
	)
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Phase() {
	case session.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case session.PhaseReady:
		if s.ctrl.CanReview() {
			return []layout.KeyHint{
				{Key: "1", Description: "Again"},
				{Key: "2", Description: "Good"},
				{Key: "3", Description: "Easy"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check answer"},
			{Key: "Tab", Description: "Reveal"},
			{Key: "Ctrl+L", Description: "Level"},
			{Key: "Ctrl+D", Description: "Decks"},
		}
	}
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// acceptingInput reports whether keystrokes should go to the answer field.
func (s *StudyScreen) acceptingInput() bool {
	return s.ctrl.Phase() == session.PhaseReady && !s.ctrl.Checked()
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.ctrl.Phase() {
	case session.PhaseFailed:
		if key == "r" || key == "R" {
			return s, screen.BeginLoad(s.ctrl)
		}
		return s, nil

	case session.PhaseCompleted:
		return s, nil

	case session.PhaseReady:
		// Filter and navigation chords work in every card state.
		switch key {
		case "ctrl+l":
			s.cycleLevel()
			return s, nil
		case "ctrl+d":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(s.ctrl)}
			}
		}

		if s.ctrl.CanReview() {
			if outcome, ok := outcomeForKey(key); ok {
				s.ctrl.Review(context.Background(), outcome, time.Now())
				s.input = newInput()
				return s, s.input.Init()
			}
			return s, nil
		}

		switch key {
		case "enter":
			s.ctrl.SetDraft(s.input.Value())
			s.ctrl.SubmitAnswerCheck()
			s.input.Submit(s.ctrl.DraftMatches())
			return s, nil
		case "tab":
			s.ctrl.Reveal()
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// cycleLevel advances the level filter through All → each level → All.
func (s *StudyScreen) cycleLevel() {
	levels := s.ctrl.AvailableLevels()
	if len(levels) == 0 {
		return
	}

	current := s.ctrl.SelectedLevel()
	next := session.AllLevels
	if current == session.AllLevels {
		next = levels[0]
	} else {
		for i, lvl := range levels {
			if lvl == current && i+1 < len(levels) {
				next = levels[i+1]
				break
			}
		}
	}

	s.ctrl.SetLevel(next, time.Now())
	s.input = newInput()
}

func outcomeForKey(key string) (srs.Outcome, bool) {
	switch key {
	case "1", "a":
		return srs.OutcomeAgain, true
	case "2", "g":
		return srs.OutcomeGood, true
	case "3", "e":
		return srs.OutcomeEasy, true
	}
	return "", false
}
