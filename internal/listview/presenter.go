package listview

import (
	"strings"
	"time"

	"staffdesk/internal/utils"
)

// Badge color tokens consumed by the table UI.
const (
	BadgeGreen  = "green"
	BadgeBlue   = "blue"
	BadgeAmber  = "amber"
	BadgeRed    = "red"
	BadgePurple = "purple"
	BadgeGray   = "gray"
)

// BadgeClass picks the status badge color. Total over all inputs: unknown,
// empty and mixed-case statuses fall back to neutral gray.
func BadgeClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available", "paid", "approved", "active":
		return BadgeGreen
	case "assigned":
		return BadgeBlue
	case "maintenance", "pending":
		return BadgeAmber
	case "cancelled", "disposed":
		return BadgeRed
	case "reserved":
		return BadgePurple
	case "retired":
		return BadgeGray
	default:
		return BadgeGray
	}
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// CurrencySymbol maps an ISO code to its display symbol, defaulting to "$".
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return sym
	}
	return "$"
}

// FormatAmount renders symbol plus amount fixed to two decimals.
func FormatAmount(amount float64, currency string) string {
	return CurrencySymbol(currency) + utils.FormatMoney(amount)
}

// Payment status labels derived from paid vs total amounts.
const (
	PaymentUnpaid    = "Unpaid"
	PaymentPartially = "Partially Paid"
	PaymentFully     = "Fully Paid"
)

// PaymentStatusText derives the payment label: Unpaid when nothing is paid,
// Fully Paid once paid covers the total, Partially Paid in between.
func PaymentStatusText(paid, total float64) string {
	switch {
	case paid <= 0:
		return PaymentUnpaid
	case paid >= total:
		return PaymentFully
	default:
		return PaymentPartially
	}
}

// FormatDate renders a stored YYYY-MM-DD date for display. Unparseable
// input is passed through untouched rather than erased.
func FormatDate(s string) string {
	t, err := utils.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006")
}

// Overdue reports whether an invoice is past due: dueDate before now and
// status anything but paid. A paid invoice is never overdue regardless of
// date; an unparseable date is never overdue.
func Overdue(dueDate, status string, now time.Time) bool {
	if strings.EqualFold(strings.TrimSpace(status), "paid") {
		return false
	}
	due, err := utils.ParseDate(dueDate)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}
