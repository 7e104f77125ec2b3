package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/ui/layout"
)

// CatalogLoadedMsg delivers a finished catalog fetch back to the update
// loop. Any screen may start the fetch; the root model installs the
// result regardless of which screen is active when it arrives.
type CatalogLoadedMsg struct {
	Result session.LoadResult
}

// BeginLoad starts a catalog fetch as a background command, or returns
// nil when a load is already in flight or the catalog is loaded. The
// controller itself is only touched here, on the update loop.
func BeginLoad(ctrl *session.Controller) tea.Cmd {
	fetch := ctrl.StartLoad()
	if fetch == nil {
		return nil
	}
	return func() tea.Msg {
		return CatalogLoadedMsg{Result: fetch(context.Background())}
	}
}

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
