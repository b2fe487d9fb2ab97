package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyPrinter formats amounts with English locale grouping ($850,000.00).
var currencyPrinter = message.NewPrinter(language.English)

// SplitName splits a full name on whitespace into first, middle and last
// parts. A single token is a first name only; with two tokens the second is
// the surname; with more, everything between first and last joins into the
// middle name(s).
func SplitName(full string) (first, middle, last string) {
	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return "", "", ""
	case 1:
		return tokens[0], "", ""
	case 2:
		return tokens[0], "", tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:len(tokens)-1], " "), tokens[len(tokens)-1]
	}
}

// FormatCurrency renders a dollar amount with two decimal places, thousands
// grouping and an explicit currency symbol. The amount stays in exact decimal
// form throughout; only the integer dollars pass through the locale printer
// for grouping, so values past float64's integer range render correctly.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	dollars, cents, _ := strings.Cut(fixed, ".")
	if whole, err := strconv.ParseInt(dollars, 10, 64); err == nil {
		return sign + currencyPrinter.Sprintf("$%v.%s", number.Decimal(whole), cents)
	}
	// Past int64 dollars: keep the exact digits, forgo grouping.
	return sign + "$" + fixed
}

// FormatPercent renders a share percentage at two decimal places with a
// trailing percent sign.
func FormatPercent(share decimal.Decimal) string {
	return share.StringFixed(2) + "%"
}

// FormatDate renders a date as an ISO calendar date. A zero time maps to the
// empty string so templates never see placeholder text for a missing date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
