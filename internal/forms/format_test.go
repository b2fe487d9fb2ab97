package forms

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		full       string
		wantFirst  string
		wantMiddle string
		wantLast   string
	}{
		{
			name:       "first middle last",
			full:       "Robert James Smith",
			wantFirst:  "Robert",
			wantMiddle: "James",
			wantLast:   "Smith",
		},
		{
			name:      "single name",
			full:      "Cher",
			wantFirst: "Cher",
		},
		{
			name:      "first and last",
			full:      "Robert Smith",
			wantFirst: "Robert",
			wantLast:  "Smith",
		},
		{
			name:       "multiple middle names",
			full:       "Mary Anne Louise van Dorn",
			wantFirst:  "Mary",
			wantMiddle: "Anne Louise van",
			wantLast:   "Dorn",
		},
		{
			name: "empty",
			full: "",
		},
		{
			name:      "extra whitespace",
			full:      "  Robert   Smith  ",
			wantFirst: "Robert",
			wantLast:  "Smith",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, middle, last := SplitName(tc.full)

			assert.Equal(t, tc.wantFirst, first)
			assert.Equal(t, tc.wantMiddle, middle)
			assert.Equal(t, tc.wantLast, last)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "grouped thousands", amount: decimal.NewFromInt(850000), want: "$850,000.00"},
		{name: "cents preserved", amount: decimal.NewFromFloat(1234.5), want: "$1,234.50"},
		{name: "zero", amount: decimal.Zero, want: "$0.00"},
		{name: "small amount", amount: decimal.NewFromFloat(0.99), want: "$0.99"},
		{name: "millions", amount: decimal.NewFromInt(2500000), want: "$2,500,000.00"},
		{name: "negative", amount: decimal.RequireFromString("-1234.56"), want: "-$1,234.56"},
		{
			// Exceeds float64's exact integer range; every digit must survive.
			name:   "beyond float64 precision",
			amount: decimal.RequireFromString("9007199254740993.12"),
			want:   "$9,007,199,254,740,993.12",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCurrency(tc.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.00%", FormatPercent(decimal.NewFromInt(50)))
	assert.Equal(t, "16.67%", FormatPercent(decimal.NewFromFloat(16.6667)))
}

func TestFormatDate(t *testing.T) {
	// Zero time maps to an empty string, never placeholder text.
	assert.Equal(t, "", FormatDate(time.Time{}))

	d := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15", FormatDate(d))
}
