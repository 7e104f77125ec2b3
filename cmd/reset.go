package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all study progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		history, _ := cmd.Flags().GetBool("history")

		if !yes {
			fmt.Print("This erases all study progress. Continue? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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
		if err := st.ProgressRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress erased.")

		if history {
			logRepo, err := st.ReviewLogRepo()
			if err != nil {
				return fmt.Errorf("open review log: %w", err)
			}
			if err := logRepo.Reset(ctx); err != nil {
				return fmt.Errorf("reset review log: %w", err)
			}
			fmt.Println("Review history erased.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("history", false, "Also erase the review history")
}
