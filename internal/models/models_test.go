package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationship(t *testing.T) {
	tests := []struct {
		tag  string
		want RelationshipTier
	}{
		{"spouse", TierSpouse},
		{"Wife", TierSpouse},
		{"HUSBAND", TierSpouse},
		{"common-law spouse", TierSpouse},
		{"daughter", TierChild},
		{"son", TierChild},
		{" child ", TierChild},
		{"granddaughter", TierGrandchild},
		{"mother", TierParent},
		{"brother", TierSibling},
		{"niece", TierNieceNephew},
		{"cousin", TierOther},
		{"friend", TierOther},
		{"", TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRelationship(tt.tag))
		})
	}
}

func TestHigherPriorityThan(t *testing.T) {
	assert.True(t, TierSpouse.HigherPriorityThan(TierChild))
	assert.True(t, TierChild.HigherPriorityThan(TierSibling))
	assert.True(t, TierSibling.HigherPriorityThan(TierUnknown))
	assert.False(t, TierChild.HigherPriorityThan(TierSpouse))
	assert.False(t, TierUnknown.HigherPriorityThan(TierSpouse))
}

func TestParseAssetCategory(t *testing.T) {
	tests := []struct {
		kind string
		want AssetCategory
	}{
		{"real property", AssetRealProperty},
		{"Land", AssetRealProperty},
		{"family house", AssetRealProperty},
		{"motor vehicle", AssetTangible},
		{"antique furniture", AssetTangible},
		{"jewelry collection", AssetTangible},
		{"bank account", AssetIntangible},
		{"intangible", AssetIntangible},
		{"shares in BC Hydro", AssetIntangible},
		{"", AssetIntangible},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAssetCategory(tt.kind))
		})
	}
}

func TestTotalAssets(t *testing.T) {
	items := []AssetItem{
		{Description: "Family home", Value: decimal.NewFromInt(850000), Category: AssetRealProperty},
		{Description: "Car", Value: decimal.NewFromInt(18000), Category: AssetTangible},
		{Description: "Savings", Value: decimal.RequireFromString("42350.75"), Category: AssetIntangible},
	}

	totals := TotalAssets(items)

	assert.True(t, totals.Real.Equal(decimal.NewFromInt(850000)))
	assert.True(t, totals.Tangible.Equal(decimal.NewFromInt(18000)))
	assert.True(t, totals.Intangible.Equal(decimal.RequireFromString("42350.75")))
	assert.True(t, totals.Grand.Equal(decimal.RequireFromString("910350.75")))
}

func TestTotalAssets_Empty(t *testing.T) {
	totals := TotalAssets(nil)
	assert.True(t, totals.Grand.IsZero())
}

func TestAddressOneLine(t *testing.T) {
	addr := Address{
		Line1:      "123 Main St",
		City:       "Vancouver",
		Province:   "BC",
		PostalCode: "V6B 1A1",
	}
	assert.Equal(t, "123 Main St, Vancouver, BC, V6B 1A1", addr.OneLine())

	// Blank and whitespace-only components are dropped.
	sparse := Address{Line1: "  ", City: "Victoria"}
	assert.Equal(t, "Victoria", sparse.OneLine())

	assert.True(t, Address{}.IsZero())
	assert.False(t, addr.IsZero())
}

func TestPrimaryApplicant(t *testing.T) {
	c := &EstateCase{
		Applicants: []Person{
			{FullName: "Brian Smith"},
			{FullName: "Anne Smith", IsPrimary: true},
		},
	}

	p := c.PrimaryApplicant()
	require.NotNil(t, p)
	assert.Equal(t, "Anne Smith", p.FullName)

	// Without an explicit primary flag, the first applicant stands in.
	c.Applicants[1].IsPrimary = false
	p = c.PrimaryApplicant()
	require.NotNil(t, p)
	assert.Equal(t, "Brian Smith", p.FullName)

	assert.Nil(t, (&EstateCase{}).PrimaryApplicant())
}

func TestRenouncingExecutors(t *testing.T) {
	c := &EstateCase{
		Applicants: []Person{
			{FullName: "Anne Smith", IsPrimary: true},
			{FullName: "Carol Smith", IsRenouncing: true},
			{FullName: "David Smith", IsRenouncing: true},
		},
	}

	assert.Equal(t, []string{"Carol Smith", "David Smith"}, c.RenouncingExecutors())
	assert.Nil(t, (&EstateCase{}).RenouncingExecutors())
}

func TestFamilyDeclaration_LivingChildren(t *testing.T) {
	f := FamilyDeclaration{
		Children: []ConsentRecord{
			{Name: "Anne", Exists: ExistsYes},
			{Name: "Brian", Exists: ExistsDeceased},
			{Name: "Carol", Exists: ExistsYes},
			{Name: "Dana", Exists: ExistsNo},
		},
	}

	living := f.LivingChildren()
	require.Len(t, living, 2)
	assert.Equal(t, "Anne", living[0].Name)
	assert.Equal(t, "Carol", living[1].Name)
}

func TestFamilyDeclaration_HasLivingSpouse(t *testing.T) {
	assert.False(t, FamilyDeclaration{}.HasLivingSpouse())
	assert.False(t, FamilyDeclaration{Spouse: &ConsentRecord{Exists: ExistsNo}}.HasLivingSpouse())
	assert.False(t, FamilyDeclaration{Spouse: &ConsentRecord{Exists: ExistsDeceased}}.HasLivingSpouse())
	assert.True(t, FamilyDeclaration{Spouse: &ConsentRecord{Exists: ExistsYes}}.HasLivingSpouse())
}

func TestShareSum(t *testing.T) {
	heirs := []HeirEntry{
		{SharePercent: decimal.RequireFromString("33.3334")},
		{SharePercent: decimal.RequireFromString("33.3333")},
		{SharePercent: decimal.RequireFromString("33.3333")},
	}
	assert.True(t, ShareSum(heirs).Equal(decimal.NewFromInt(100)))
	assert.True(t, ShareSum(nil).IsZero())
}
