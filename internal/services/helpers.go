package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// fmtDate renders a date column the way the dashboard expects it.
func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

// isFutureDate compares calendar dates, so a timestamp later today is not
// "future".
func isFutureDate(t time.Time) bool {
	return t.Format(dateLayout) > time.Now().Format(dateLayout)
}

// normalizeTicker upper-cases and trims a ticker symbol.
func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// nullDecimal wraps an optional decimal for a nullable column.
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
