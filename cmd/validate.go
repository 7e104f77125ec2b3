package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmoretti/wordflow/internal/vocab"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate the vocabulary dataset",
	Long:  "Validates the embedded vocabulary dataset, or an external JSON file when given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := vocab.NewRepository()
		label := "embedded dataset"
		if len(args) == 1 {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
			repo = vocab.NewRepositoryFromJSON(raw)
			label = args[0]
		}

		problems, err := repo.Check()
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintln(os.Stderr, "✗", p)
			}
			return fmt.Errorf("%s: %d problem(s) found", label, len(problems))
		}
		fmt.Println("✓", label, "is valid")
		return nil
	},
}
