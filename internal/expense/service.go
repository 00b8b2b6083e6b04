// Package expense provides the business logic over a persisted expense
// collection: input validation, id assignment, and monthly aggregation.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rayfin-dev/rayfin/internal/id"
	"github.com/rayfin-dev/rayfin/internal/model"
	"github.com/rayfin-dev/rayfin/internal/repo"
)

// Validation errors, raised before any storage access.
var (
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrMissingCategory = errors.New("category is required")
)

// Service validates new expenses and derives monthly aggregates. It
// holds no state between calls; every operation re-reads the backing
// store, which is fine for a single-user collection of this size.
type Service struct {
	repo repo.Repository
}

// NewService creates a Service over the given repository.
func NewService(r repo.Repository) *Service {
	return &Service{repo: r}
}

// ListAll returns every persisted expense.
func (s *Service) ListAll(ctx context.Context) ([]model.Expense, error) {
	return s.repo.FindAll(ctx)
}

// Add validates the input, assigns a fresh id, appends the expense to
// the loaded collection, and persists the whole collection back. The
// store is untouched when validation fails.
func (s *Service) Add(ctx context.Context, date time.Time, amount decimal.Decimal, category model.Category, note string) (model.Expense, error) {
	if date.IsZero() {
		return model.Expense{}, ErrMissingDate
	}
	if amount.Sign() <= 0 {
		return model.Expense{}, ErrInvalidAmount
	}
	if category == "" {
		return model.Expense{}, ErrMissingCategory
	}

	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.Expense{}, err
	}

	created, err := model.NewExpense(id.New(), date, amount, category, note)
	if err != nil {
		return model.Expense{}, fmt.Errorf("constructing expense: %w", err)
	}

	expenses = append(expenses, created)
	if err := s.repo.SaveAll(ctx, expenses); err != nil {
		return model.Expense{}, err
	}

	slog.InfoContext(ctx, "expense added",
		"id", created.ID,
		"date", created.Date.Format(model.DateFormat),
		"amount", created.Amount.StringFixed(2),
		"category", string(created.Category))
	return created, nil
}

// MonthlyTotal returns the exact decimal sum of all amounts in the
// given month, zero when none match.
func (s *Service) MonthlyTotal(ctx context.Context, month model.Month) (decimal.Decimal, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		if month.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// MonthlyByCategory returns per-category sums for the given month.
// Categories with no matching expenses are absent from the result.
func (s *Service) MonthlyByCategory(ctx context.Context, month model.Month) (map[model.Category]decimal.Decimal, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[model.Category]decimal.Decimal)
	for _, e := range expenses {
		if !month.Contains(e.Date) {
			continue
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	return sums, nil
}

// ListMonth returns the month's expenses sorted newest date first.
func (s *Service) ListMonth(ctx context.Context, month model.Month) ([]model.Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Expense
	for _, e := range expenses {
		if month.Contains(e.Date) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched, nil
}
