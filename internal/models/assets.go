package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AssetCategory is the closed set of property buckets used by the asset
// affidavits. Categories are assigned once at intake; downstream mapping
// never re-classifies free text.
type AssetCategory string

const (
	AssetRealProperty AssetCategory = "real"
	AssetTangible     AssetCategory = "tangible"
	AssetIntangible   AssetCategory = "intangible"
)

// realPropertyKeywords and tangibleKeywords drive intake classification of a
// declared asset kind. Anything that matches neither vocabulary is intangible.
var (
	realPropertyKeywords = []string{"real", "property", "land", "house"}
	tangibleKeywords     = []string{"vehicle", "furniture", "jewelry", "tangible"}
)

// ParseAssetCategory classifies a free-text asset kind into a category by
// substring matching against the fixed keyword vocabulary. It is called at
// intake so each AssetItem carries an authoritative category from then on.
func ParseAssetCategory(kind string) AssetCategory {
	k := strings.ToLower(kind)
	// "intangible" would otherwise substring-match the tangible vocabulary.
	if strings.Contains(k, "intangible") {
		return AssetIntangible
	}
	for _, kw := range realPropertyKeywords {
		if strings.Contains(k, kw) {
			return AssetRealProperty
		}
	}
	for _, kw := range tangibleKeywords {
		if strings.Contains(k, kw) {
			return AssetTangible
		}
	}
	return AssetIntangible
}

// AssetItem is a single entry on an asset schedule.
type AssetItem struct {
	Description      string          `json:"description"`
	Location         string          `json:"location,omitempty"`
	LegalDescription string          `json:"legalDescription,omitempty"`
	Institution      string          `json:"institution,omitempty"`
	Value            decimal.Decimal `json:"value"`
	Category         AssetCategory   `json:"category"`
}

// AssetTotals aggregates schedule values per category plus a grand total.
type AssetTotals struct {
	Real       decimal.Decimal
	Tangible   decimal.Decimal
	Intangible decimal.Decimal
	Grand      decimal.Decimal
}

// TotalAssets sums schedule values into per-category running totals.
// The grand total is always the sum of the three buckets.
func TotalAssets(items []AssetItem) AssetTotals {
	var t AssetTotals
	for _, item := range items {
		switch item.Category {
		case AssetRealProperty:
			t.Real = t.Real.Add(item.Value)
		case AssetTangible:
			t.Tangible = t.Tangible.Add(item.Value)
		default:
			t.Intangible = t.Intangible.Add(item.Value)
		}
	}
	t.Grand = t.Real.Add(t.Tangible).Add(t.Intangible)
	return t
}
