package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rayfin-dev/rayfin/internal/expense"
	"github.com/rayfin-dev/rayfin/internal/model"
)

func newConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive expense console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeStore, err := loadService(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			return runConsole(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runConsole drives the menu loop. Errors from a user action are
// printed and the session keeps running; only exhausted input or an
// explicit quit ends the loop.
func runConsole(ctx context.Context, svc *expense.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n=== Rayfin ===\n1) Add expense\n2) List all expenses\n3) Monthly summary\nQ) Quit\nChoose: ")
		line, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch strings.ToLower(line) {
		case "1":
			addFlow(ctx, svc, scanner, out)
		case "2":
			listFlow(ctx, svc, out)
		case "3":
			summaryFlow(ctx, svc, scanner, out)
		case "q":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Try again.")
		}
	}
}

func addFlow(ctx context.Context, svc *expense.Service, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Date (YYYY-MM-DD): ")
	dateStr, ok := readLine(scanner)
	if !ok {
		return
	}
	date, err := parseDate(dateStr)
	if err != nil {
		reportError(out, err)
		return
	}

	fmt.Fprint(out, "Amount (e.g., 12.50): ")
	amountStr, ok := readLine(scanner)
	if !ok {
		return
	}
	amount, err := parseAmount(amountStr)
	if err != nil {
		reportError(out, err)
		return
	}

	fmt.Fprintf(out, "Category %v: ", model.Categories())
	categoryStr, ok := readLine(scanner)
	if !ok {
		return
	}

	fmt.Fprint(out, "Note (optional): ")
	note, ok := readLine(scanner)
	if !ok {
		return
	}

	created, err := svc.Add(ctx, date, amount, model.CategoryFromString(categoryStr), note)
	if err != nil {
		reportError(out, err)
		return
	}
	fmt.Fprintf(out, "Saved: %s\n", created)
}

func listFlow(ctx context.Context, svc *expense.Service, out io.Writer) {
	expenses, err := svc.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses yet.")
		return
	}
	fmt.Fprintln(out, "\n--- All Expenses ---")
	for _, e := range expenses {
		fmt.Fprintln(out, e)
	}
}

func summaryFlow(ctx context.Context, svc *expense.Service, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Month (YYYY-MM): ")
	monthStr, ok := readLine(scanner)
	if !ok {
		return
	}
	month, err := model.ParseMonth(monthStr)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	if err := renderSummary(ctx, svc, month, out); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func reportError(out io.Writer, err error) {
	fmt.Fprintf(out, "Error: %v\n", err)
	fmt.Fprintln(out, "Expense not saved.")
}
