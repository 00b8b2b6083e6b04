package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rayfin-dev/rayfin/internal/model"
)

// parseDate parses a raw YYYY-MM-DD input.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", strings.TrimSpace(s))
	}
	return t, nil
}

// parseAmount parses a raw decimal amount input.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q (want a decimal like 12.50)", strings.TrimSpace(s))
	}
	return d, nil
}
