package repo

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rayfin-dev/rayfin/internal/model"
)

// Header is the first line of every expense CSV file.
const Header = "id,date,amount,category,note"

const numFields = 5

// CSVRepository stores expenses as delimited lines in a single UTF-8
// text file, one record per line after the header.
//
// The note is the only field that may contain commas or quotes; it is
// always written wrapped in double quotes with embedded quotes doubled.
// The other four fields are written bare and must stay comma-free
// (ISO date, plain decimal, category name, alphanumeric id). Reads
// tolerate commas inside the note by splitting only the text before the
// first quote. This limitation is kept for compatibility with existing
// data files.
type CSVRepository struct {
	path string
}

// NewCSVRepository creates a CSV-backed repository at path. The file is
// not touched until the first read or write.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// FindAll reads every expense from the file, creating it with just the
// header if it does not exist. Blank lines and lines with fewer than
// five resolved fields are skipped.
func (r *CSVRepository) FindAll(ctx context.Context) ([]model.Expense, error) {
	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening expense file %s: %w", r.path, err)
	}
	defer f.Close()

	var expenses []model.Expense
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first { // header
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitLine(line)
		if len(fields) < numFields {
			slog.WarnContext(ctx, "skipping malformed expense line", "file", r.path, "fields", len(fields))
			continue
		}

		expense, err := UnmarshalExpense(fields)
		if err != nil {
			return nil, fmt.Errorf("reading expense file %s: %w", r.path, err)
		}
		expenses = append(expenses, expense)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expense file %s: %w", r.path, err)
	}
	return expenses, nil
}

// SaveAll rewrites the whole file (header plus one line per expense) in
// a single pass.
func (r *CSVRepository) SaveAll(ctx context.Context, expenses []model.Expense) error {
	if err := r.ensureFile(); err != nil {
		return err
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating expense file %s: %w", r.path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, Header)
	for _, e := range expenses {
		fmt.Fprintln(w, MarshalExpense(e))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing expense file %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing expense file %s: %w", r.path, err)
	}

	slog.DebugContext(ctx, "expense file rewritten", "file", r.path, "count", len(expenses))
	return nil
}

// ensureFile creates the file (and parent directories) with just the
// header when it does not exist yet.
func (r *CSVRepository) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking expense file %s: %w", r.path, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating expense directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("creating expense file %s: %w", r.path, err)
	}
	return nil
}

// MarshalExpense converts an expense to one CSV line. The note is
// always quoted, with embedded quotes doubled. The amount is written as
// exact decimal text; rounding it here would corrupt amounts with more
// than two decimal places.
func MarshalExpense(e model.Expense) string {
	note := strings.ReplaceAll(e.Note, `"`, `""`)
	return strings.Join([]string{
		e.ID,
		e.Date.Format(model.DateFormat),
		e.Amount.String(),
		string(e.Category),
		`"` + note + `"`,
	}, ",")
}

// SplitLine splits a CSV line into its five fields. Everything before
// the first quote splits on commas; everything from the quote onward is
// the note, unwrapped and unescaped. A line without quotes splits
// plainly.
func SplitLine(line string) []string {
	q := strings.IndexByte(line, '"')
	if q == -1 {
		return strings.Split(line, ",")
	}

	prefix := strings.TrimSuffix(line[:q], ",")
	fields := strings.Split(prefix, ",")

	note := line[q:]
	if len(note) >= 2 && strings.HasPrefix(note, `"`) && strings.HasSuffix(note, `"`) {
		note = note[1 : len(note)-1]
	}
	note = strings.ReplaceAll(note, `""`, `"`)

	return append(fields, note)
}

// UnmarshalExpense converts a split CSV line to an expense.
func UnmarshalExpense(fields []string) (model.Expense, error) {
	if len(fields) < numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	date, err := time.Parse(model.DateFormat, fields[1])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", fields[1], err)
	}

	amount, err := decimal.NewFromString(fields[2])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", fields[2], err)
	}

	return model.NewExpense(fields[0], date, amount, model.CategoryFromString(fields[3]), fields[4])
}
