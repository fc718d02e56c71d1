package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	for _, raw := range []string{
		"2026-08-31",
		"2026-08-31T10:30:00Z",
		"2026-08-31T10:30:00-03:00",
	} {
		parsed, ok := ParseDate(raw)
		assert.True(t, ok, raw)
		assert.False(t, parsed.IsZero())
	}

	for _, raw := range []string{"", "31/08/2026", "ontem"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, raw)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-08-31"))
	assert.False(t, IsValidDate("não é data"))
}
