package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/app"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/dmoretti/wordflow/internal/vocab"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The review log is informational; the app still works without it.
	var logger session.ReviewLogger
	if logRepo, err := st.ReviewLogRepo(); err == nil {
		logger = logRepo
	} else {
		fmt.Fprintln(os.Stderr, "review history unavailable:", err)
	}

	ctrl := session.NewController(
		vocab.NewRepository().LoadAll,
		st.ProgressRepo(),
		logger,
	)

	// Preselect a deck filter. An unknown id falls back to all decks when
	// the catalog loads.
	if deck, _ := cmd.Flags().GetString("deck"); deck != "" {
		ctrl.SetDeck(deck, time.Now())
	}

	return app.Run(app.Options{Controller: ctrl})
}
