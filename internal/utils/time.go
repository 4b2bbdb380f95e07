package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutMonth = "2006-01"
)

// ParseDate parses a stored YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ParseMonth parses a YYYY-MM pay period.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(layoutMonth, strings.TrimSpace(s))
}
