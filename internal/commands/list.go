package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayfin-dev/rayfin/internal/model"
)

func newListCommand() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeStore, err := loadService(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			var expenses []model.Expense
			if monthStr != "" {
				month, err := model.ParseMonth(monthStr)
				if err != nil {
					return err
				}
				expenses, err = svc.ListMonth(cmd.Context(), month)
				if err != nil {
					return err
				}
			} else {
				expenses, err = svc.ListAll(cmd.Context())
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses yet.")
				return nil
			}
			for _, e := range expenses {
				fmt.Fprintln(out, e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "restrict to a month (YYYY-MM)")

	return cmd
}
