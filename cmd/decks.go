package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/dmoretti/wordflow/internal/vocab"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks with card and due counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctrl := session.NewController(vocab.NewRepository().LoadAll, st.ProgressRepo(), nil)
		now := time.Now()
		ctrl.Load(context.Background(), now)
		if ctrl.Phase() == session.PhaseFailed {
			return fmt.Errorf("load vocabulary: %s", ctrl.FailureMessage())
		}

		for _, d := range ctrl.AvailableDecks() {
			due := deckDueCount(ctrl, d.ID, now)
			fmt.Printf("%-14s %-24s %3d cards  %3d due\n", d.ID, d.Name, d.CardCount, due)
			if d.Description != "" {
				fmt.Printf("%-14s %s\n", "", d.Description)
			}
		}
		return nil
	},
}

// deckDueCount narrows the controller to one deck, reads the due count,
// then restores the previous filter.
func deckDueCount(ctrl *session.Controller, deckID string, now time.Time) int {
	prev := ctrl.SelectedDeck()
	ctrl.SetDeck(deckID, now)
	due := ctrl.DueCount(now)
	ctrl.SetDeck(prev, now)
	return due
}
