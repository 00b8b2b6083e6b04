package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used everywhere an expense
// date is rendered or persisted.
const DateFormat = "2006-01-02"

// Expense is a single recorded expense. It is constructed once via
// NewExpense and never mutated; the stored collection changes only by
// loading it, appending, and saving it back whole.
type Expense struct {
	ID       string
	Date     time.Time // calendar date, midnight UTC
	Amount   decimal.Decimal
	Category Category
	Note     string
}

// NewExpense constructs an Expense. The id, date, and category must be
// present; the note is normalized (trimmed, empty when absent). Amount
// positivity is the service's concern, not the entity's.
func NewExpense(id string, date time.Time, amount decimal.Decimal, category Category, note string) (Expense, error) {
	if id == "" {
		return Expense{}, errors.New("expense id is required")
	}
	if date.IsZero() {
		return Expense{}, errors.New("expense date is required")
	}
	if category == "" {
		return Expense{}, errors.New("expense category is required")
	}
	return Expense{
		ID:       id,
		Date:     date,
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(note),
	}, nil
}

// String renders the expense as a single display line.
func (e Expense) String() string {
	return fmt.Sprintf("%s | %s | $%s | %s | %s",
		e.ID, e.Date.Format(DateFormat), e.Amount.StringFixed(2), e.Category, e.Note)
}
