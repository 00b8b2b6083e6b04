package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Length(t *testing.T) {
	got := New()
	assert.Len(t, got, 8)
}

func TestNew_HexCharacters(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := New()
		for _, r := range got {
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
			assert.True(t, isHex, "unexpected character %q in id %q", r, got)
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := New()
		assert.False(t, seen[got], "duplicate id %q", got)
		seen[got] = true
	}
}
