// Package repo persists the expense collection.
//
// Two backings implement the same contract: a delimited text file and
// an embedded SQLite database, selected at construction time. Writes
// are replace-all: SaveAll makes the stored collection exactly the
// given slice, never an incremental append.
package repo

import (
	"context"

	"github.com/rayfin-dev/rayfin/internal/model"
)

// Repository loads and replaces the full expense collection.
type Repository interface {
	// FindAll returns every persisted expense.
	FindAll(ctx context.Context) ([]model.Expense, error)
	// SaveAll replaces the entire persisted collection with expenses.
	// Implementations must not leave a partially-written store visible
	// to a subsequent FindAll.
	SaveAll(ctx context.Context, expenses []model.Expense) error
}
