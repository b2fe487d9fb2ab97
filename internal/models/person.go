package models

import (
	"strings"
	"time"
)

// Address holds the components of a mailing address. Blank components are
// omitted when the address is composed into a single line for a form.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
}

// OneLine joins the non-empty address components with ", ".
func (a Address) OneLine() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.Province, a.PostalCode, a.Country} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

// IsZero reports whether no component of the address is set.
func (a Address) IsZero() bool {
	return a.OneLine() == ""
}

// Person is any named party on a case: an applicant, an heir, a spouse or
// another relative. Role flags distinguish how the person participates.
type Person struct {
	FullName     string           `json:"fullName"`
	Address      Address          `json:"address"`
	Relationship string           `json:"relationship"`
	Tier         RelationshipTier `json:"tier"`
	IsDeceased   bool             `json:"isDeceased"`
	IsRenouncing bool             `json:"isRenouncing"`
	IsApplicant  bool             `json:"isApplicant"`
	IsMinor      bool             `json:"isMinor"`
	IsPrimary    bool             `json:"isPrimary"`
}

// Deceased identifies the person whose estate the case administers.
// FullName and DateOfDeath are the minimum identifying data every form needs.
type Deceased struct {
	FullName            string    `json:"fullName"`
	Address             Address   `json:"address"`
	DateOfBirth         time.Time `json:"dateOfBirth,omitempty"`
	DateOfDeath         time.Time `json:"dateOfDeath"`
	DomiciledInProvince bool      `json:"domiciledInProvince"`
	DomicileCountry     string    `json:"domicileCountry,omitempty"`
}
