package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omize10/probatepath-sub002/internal/models"
)

func spouseRecord(name string, exists models.ExistsState, consents models.ConsentState) *models.ConsentRecord {
	return &models.ConsentRecord{Name: name, Exists: exists, Consents: consents}
}

func TestResolve_SpouseApplicant_Clear(t *testing.T) {
	// A spouse applicant has no higher tier to evaluate.
	fam := models.FamilyDeclaration{}

	res := Resolve(fam, models.TierSpouse)

	assert.Equal(t, models.PriorityClear, res.Status)
	assert.Empty(t, res.RequiredActions)
}

func TestResolve_ChildApplicant_NoSpouse_Clear(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("", models.ExistsNo, ""),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityClear, res.Status)
	assert.Empty(t, res.RequiredActions)
}

func TestResolve_ChildApplicant_SpouseWithholdsConsent_Blocked(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsYes, models.ConsentNo),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityBlocked, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Equal(t, ActionResolveConsent, res.RequiredActions[0].Kind)
	assert.Equal(t, "Mary Smith", res.RequiredActions[0].Name)
	assert.Contains(t, res.RequiredActions[0].Detail, "does not consent")
}

func TestResolve_ChildApplicant_SpouseConsents_RenunciationRequired(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsYes, models.ConsentYes),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityClear, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Equal(t, ActionRenounce, res.RequiredActions[0].Kind)
	assert.Equal(t, "Mary Smith", res.RequiredActions[0].Name)
}

func TestResolve_ChildApplicant_SpouseApplying_CoApplicant(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsYes, models.ConsentApplying),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityClear, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Equal(t, ActionCoApply, res.RequiredActions[0].Kind)
}

func TestResolve_ChildApplicant_DeceasedSpouse_SkippedWithoutPromotion(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsDeceased, ""),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityClear, res.Status)
	assert.Empty(t, res.RequiredActions)
}

func TestResolve_SpouseUndeclared_NeedsInput(t *testing.T) {
	fam := models.FamilyDeclaration{}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityNeedsInput, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Equal(t, ActionProvideInput, res.RequiredActions[0].Kind)
}

func TestResolve_SpouseConsentUndeclared_NeedsInput(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsYes, ""),
	}

	res := Resolve(fam, models.TierChild)

	assert.Equal(t, models.PriorityNeedsInput, res.Status)
}

func TestResolve_SiblingApplicant_ChildrenEvaluated(t *testing.T) {
	tests := []struct {
		name          string
		children      []models.ConsentRecord
		wantStatus    models.PriorityStatus
		wantActions   int
		wantFirstKind ActionKind
	}{
		{
			name: "consenting children owe renunciations",
			children: []models.ConsentRecord{
				{Name: "Anne Smith", Exists: models.ExistsYes, Consents: models.ConsentYes},
				{Name: "Brian Smith", Exists: models.ExistsYes, Consents: models.ConsentYes},
			},
			wantStatus:    models.PriorityClear,
			wantActions:   2,
			wantFirstKind: ActionRenounce,
		},
		{
			name: "one child withholding consent blocks the case",
			children: []models.ConsentRecord{
				{Name: "Anne Smith", Exists: models.ExistsYes, Consents: models.ConsentYes},
				{Name: "Brian Smith", Exists: models.ExistsYes, Consents: models.ConsentNo},
			},
			wantStatus:    models.PriorityBlocked,
			wantActions:   2,
			wantFirstKind: ActionRenounce,
		},
		{
			name: "deceased children are skipped",
			children: []models.ConsentRecord{
				{Name: "Anne Smith", Exists: models.ExistsDeceased},
			},
			wantStatus:  models.PriorityClear,
			wantActions: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fam := models.FamilyDeclaration{
				Spouse:           spouseRecord("", models.ExistsNo, ""),
				Children:         tc.children,
				ChildrenDeclared: true,
			}

			res := Resolve(fam, models.TierSibling)

			assert.Equal(t, tc.wantStatus, res.Status)
			require.Len(t, res.RequiredActions, tc.wantActions)
			if tc.wantActions > 0 {
				assert.Equal(t, tc.wantFirstKind, res.RequiredActions[0].Kind)
			}
		})
	}
}

func TestResolve_SiblingApplicant_ChildrenUndeclared_NeedsInput(t *testing.T) {
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("", models.ExistsNo, ""),
	}

	res := Resolve(fam, models.TierSibling)

	assert.Equal(t, models.PriorityNeedsInput, res.Status)
}

func TestResolve_SiblingApplicant_SpouseHoldsPriority_ChildrenSkipped(t *testing.T) {
	// When a living spouse holds priority, children are not explicitly checked
	// even for a lower-tier applicant.
	fam := models.FamilyDeclaration{
		Spouse: spouseRecord("Mary Smith", models.ExistsYes, models.ConsentYes),
		Children: []models.ConsentRecord{
			{Name: "Anne Smith", Exists: models.ExistsYes, Consents: models.ConsentNo},
		},
		ChildrenDeclared: true,
	}

	res := Resolve(fam, models.TierSibling)

	assert.Equal(t, models.PriorityClear, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Equal(t, ActionRenounce, res.RequiredActions[0].Kind)
}

func TestResolve_UnknownApplicantTier_NeedsInput(t *testing.T) {
	res := Resolve(models.FamilyDeclaration{}, models.TierUnknown)

	assert.Equal(t, models.PriorityNeedsInput, res.Status)
	require.Len(t, res.RequiredActions, 1)
	assert.Contains(t, res.RequiredActions[0].Detail, "relationship")
}
