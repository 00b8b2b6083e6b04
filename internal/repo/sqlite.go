package repo

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rayfin-dev/rayfin/internal/model"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
  id TEXT PRIMARY KEY,
  date TEXT NOT NULL,
  amount TEXT NOT NULL,
  category TEXT NOT NULL,
  note TEXT NOT NULL
);`

// SQLiteRepository stores expenses as rows in a single table. Every
// column is text; amounts are stored as exact decimal strings, never as
// binary floats.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath, creating the file
// and the schema when absent.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// FindAll returns every stored expense, newest date first.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, amount, category, note FROM expenses ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var id, dateText, amountText, categoryText, note string
		if err := rows.Scan(&id, &dateText, &amountText, &categoryText, &note); err != nil {
			return nil, fmt.Errorf("scanning expense row: %w", err)
		}

		date, err := time.Parse(model.DateFormat, dateText)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", dateText, err)
		}

		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amountText, err)
		}

		expense, err := model.NewExpense(id, date, amount, model.CategoryFromString(categoryText), note)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", id, err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading expense rows: %w", err)
	}
	return expenses, nil
}

// SaveAll replaces the stored collection in one transaction: delete all
// rows, then insert every given expense. Any failure rolls back, so a
// half-deleted store is never observable.
func (r *SQLiteRepository) SaveAll(ctx context.Context, expenses []model.Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() // no-op after a successful commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO expenses (id, date, amount, category, note) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range expenses {
		_, err := stmt.ExecContext(ctx,
			e.ID, e.Date.Format(model.DateFormat), e.Amount.String(), string(e.Category), e.Note)
		if err != nil {
			return fmt.Errorf("inserting expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing expenses: %w", err)
	}

	slog.DebugContext(ctx, "expense table replaced", "count", len(expenses))
	return nil
}
