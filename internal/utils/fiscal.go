package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var fiscalYearRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FinancialYear returns the April-to-March financial year containing t,
// rendered as "2025-26".
func FinancialYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// ParseFinancialYear validates a "2025-26" string and returns the starting
// calendar year.
func ParseFinancialYear(s string) (int, error) {
	m := fiscalYearRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid financial year %q, want YYYY-YY", s)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return 0, fmt.Errorf("financial year %q is not consecutive", s)
	}
	return start, nil
}

// NextFinancialYear rolls "2025-26" forward to "2026-27".
func NextFinancialYear(s string) (string, error) {
	start, err := ParseFinancialYear(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%02d", start+1, (start+2)%100), nil
}
