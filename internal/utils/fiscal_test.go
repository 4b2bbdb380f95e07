package utils

import (
	"testing"
	"time"
)

func TestFinancialYear(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "2026-27"},
		{time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), "2026-27"},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "1999-00"},
	}
	for _, tc := range cases {
		if got := FinancialYear(tc.date); got != tc.want {
			t.Fatalf("FinancialYear(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestNextFinancialYear(t *testing.T) {
	next, err := NextFinancialYear("2025-26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "2026-27" {
		t.Fatalf("next year wrong: %q", next)
	}

	if _, err := NextFinancialYear("2025-27"); err == nil {
		t.Fatalf("non-consecutive year should be rejected")
	}
	if _, err := NextFinancialYear("25-26"); err == nil {
		t.Fatalf("short year should be rejected")
	}
}

func TestNextFinancialYearCenturyRollover(t *testing.T) {
	next, err := NextFinancialYear("2098-99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "2099-00" {
		t.Fatalf("century rollover wrong: %q", next)
	}
}
