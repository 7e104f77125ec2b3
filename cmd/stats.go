package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/srs"
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/dmoretti/wordflow/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and review history",
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

		ctx := context.Background()
		now := time.Now()

		ctrl := session.NewController(vocab.NewRepository().LoadAll, st.ProgressRepo(), nil)
		ctrl.Load(ctx, now)
		if ctrl.Phase() == session.PhaseFailed {
			return fmt.Errorf("load vocabulary: %s", ctrl.FailureMessage())
		}

		fmt.Printf("Cards:        %d\n", ctrl.TotalCount())
		fmt.Printf("Due now:      %d\n", ctrl.DueCount(now))

		logRepo, err := st.ReviewLogRepo()
		if err != nil {
			fmt.Println("\nReview history unavailable:", err)
			return nil
		}
		stats, err := logRepo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("read review log: %w", err)
		}
		if stats.Total == 0 {
			fmt.Println("\nNo reviews recorded yet.")
			return nil
		}

		fmt.Printf("\nReviews:      %d\n", stats.Total)
		fmt.Printf("Cards seen:   %d\n", stats.CardsSeen)
		fmt.Printf("  again:      %d\n", stats.ByOutcome[srs.OutcomeAgain])
		fmt.Printf("  good:       %d\n", stats.ByOutcome[srs.OutcomeGood])
		fmt.Printf("  easy:       %d\n", stats.ByOutcome[srs.OutcomeEasy])
		fmt.Printf("First review: %s\n", stats.FirstReview.Local().Format("2006-01-02 15:04"))
		fmt.Printf("Last review:  %s\n", stats.LastReview.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
