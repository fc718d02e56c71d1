package utils

import (
	"time"
)

func IsValidDate(dateStr string) bool {
	_, ok := ParseDate(dateStr)
	return ok
}

// ParseDate aceita os formatos de data usados nos filtros de consulta.
func ParseDate(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
