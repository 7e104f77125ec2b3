package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmoretti/wordflow/internal/router"
	"github.com/dmoretti/wordflow/internal/screen"
	"github.com/dmoretti/wordflow/internal/screens/home"
	"github.com/dmoretti/wordflow/internal/screens/study"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Controller *session.Controller

	// StartInStudy opens the study screen immediately instead of the
	// home menu. Esc still pops back to home.
	StartInStudy bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router       *router.Router
	ctrl         *session.Controller
	startInStudy bool
	width        int
	height       int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Controller)
	return AppModel{
		router:       router.New(homeScreen),
		ctrl:         opts.Controller,
		startInStudy: opts.StartInStudy,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.startInStudy {
		cmds = append(cmds, m.router.Push(study.New(m.ctrl)))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.CatalogLoadedMsg:
		m.ctrl.FinishLoad(msg.Result, time.Now())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	due, total := 0, 0
	if m.ctrl != nil && m.ctrl.Phase() != session.PhaseLoading {
		due = m.ctrl.DueCount(time.Now())
		total = m.ctrl.TotalCount()
	}
	header := layout.RenderHeader(title, due, total, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
