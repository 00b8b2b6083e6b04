package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("  2024-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), d)

	badInputs := []string{"", "03/01/2024", "2024-3-1", "yesterday"}
	for _, input := range badInputs {
		_, err := parseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	a, err := parseAmount(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.50", a.StringFixed(2))

	badInputs := []string{"", "twelve", "12,50", "$12.50"}
	for _, input := range badInputs {
		_, err := parseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}
