package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rayfin-dev/rayfin/internal/expense"
	"github.com/rayfin-dev/rayfin/internal/model"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <month>",
		Short: "Show the total and per-category breakdown for a month (YYYY-MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := model.ParseMonth(args[0])
			if err != nil {
				return err
			}

			svc, closeStore, err := loadService(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			return renderSummary(cmd.Context(), svc, month, cmd.OutOrStdout())
		},
	}
}

// renderSummary prints a month's total, per-category sums, and the
// month's expenses newest first. Shared by the summary command and the
// console shell.
func renderSummary(ctx context.Context, svc *expense.Service, month model.Month, out io.Writer) error {
	total, err := svc.MonthlyTotal(ctx, month)
	if err != nil {
		return err
	}
	byCategory, err := svc.MonthlyByCategory(ctx, month)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "--- Summary for %s ---\n", month)
	fmt.Fprintf(out, "Total: $%s\n", total.StringFixed(2))

	if len(byCategory) == 0 {
		fmt.Fprintln(out, "No expenses for this month.")
		return nil
	}

	fmt.Fprintln(out, "\nBy Category:")
	for _, c := range model.Categories() {
		if sum, ok := byCategory[c]; ok {
			fmt.Fprintf(out, "%s: $%s\n", c, sum.StringFixed(2))
		}
	}

	expenses, err := svc.ListMonth(ctx, month)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nRecent Expenses:")
	for _, e := range expenses {
		fmt.Fprintln(out, e)
	}
	return nil
}
