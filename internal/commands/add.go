package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayfin-dev/rayfin/internal/model"
)

func newAddCommand() *cobra.Command {
	var dateStr, amountStr, categoryStr, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}

			svc, closeStore, err := loadService(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			created, err := svc.Add(cmd.Context(), date, amount, model.CategoryFromString(categoryStr), note)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", created)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 12.50")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&categoryStr, "category", "", "category (unrecognized values become OTHER)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")

	return cmd
}
