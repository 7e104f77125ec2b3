package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/app"
	"github.com/dmoretti/wordflow/internal/session"
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/dmoretti/wordflow/internal/vocab"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Jump straight into a study session",
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

		var logger session.ReviewLogger
		if logRepo, err := st.ReviewLogRepo(); err == nil {
			logger = logRepo
		}

		ctrl := session.NewController(
			vocab.NewRepository().LoadAll,
			st.ProgressRepo(),
			logger,
		)

		return app.Run(app.Options{Controller: ctrl, StartInStudy: true})
	},
}
