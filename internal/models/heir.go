package models

import "github.com/shopspring/decimal"

// HeirEntry is one line of the computed intestate distribution: who inherits,
// how they relate to the deceased, and their percentage share of the estate.
// The list is a derived view until the applicant confirms it; only then is it
// written to the case as the authoritative heir list.
type HeirEntry struct {
	Name         string           `json:"name"`
	Relationship RelationshipTier `json:"relationship"`
	SharePercent decimal.Decimal  `json:"sharePercent"`
	IsApplicant  bool             `json:"isApplicant"`
	Address      Address          `json:"address,omitempty"`
}

// ShareSum returns the total of all share percentages in the list.
func ShareSum(heirs []HeirEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, h := range heirs {
		sum = sum.Add(h.SharePercent)
	}
	return sum
}
