// Package format renders numbers, prices and dates for display.
package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// USD formats a whole-dollar amount with thousands separators, e.g. 12345 => "$12,345".
func USD(dollars int64) string {
	if dollars < 0 {
		return "-$" + printer.Sprintf("%d", -dollars)
	}
	return "$" + printer.Sprintf("%d", dollars)
}

// Rating formats a 0-5 score with one decimal.
func Rating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Plural picks singular when n == 1.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Date formats t for lang; the zero time renders empty.
func Date(t time.Time, lang string) string {
	switch {
	case t.IsZero():
		return ""
	case strings.EqualFold(lang, "ja"):
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}
