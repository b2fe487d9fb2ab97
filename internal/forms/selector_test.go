package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omize10/probatepath-sub002/internal/models"
)

func formCodes(reqs []models.FormRequirement) []models.FormCode {
	codes := make([]models.FormCode, 0, len(reqs))
	for _, r := range reqs {
		codes = append(codes, r.Code)
	}
	return codes
}

func TestSelectForms(t *testing.T) {
	tests := []struct {
		name string
		c    models.EstateCase
		want []models.FormCode
	}{
		{
			name: "probate with clean will",
			c: models.EstateCase{
				PathType: models.PathProbate,
				HasWill:  true,
				Deceased: models.Deceased{DomiciledInProvince: true},
			},
			want: []models.FormCode{models.FormP2, models.FormP3, models.FormP9, models.FormP10},
		},
		{
			name: "probate with altered will routes to long form",
			c: models.EstateCase{
				PathType:           models.PathProbate,
				HasWill:            true,
				WillHasAlterations: true,
				Deceased:           models.Deceased{DomiciledInProvince: true},
			},
			want: []models.FormCode{models.FormP2, models.FormP4, models.FormP9, models.FormP10},
		},
		{
			name: "administration without will",
			c: models.EstateCase{
				PathType: models.PathAdministration,
				Deceased: models.Deceased{DomiciledInProvince: true},
			},
			want: []models.FormCode{models.FormP2, models.FormP5, models.FormP9, models.FormP10},
		},
		{
			name: "foreign domicile routes to non-domiciled asset affidavit",
			c: models.EstateCase{
				PathType: models.PathProbate,
				HasWill:  true,
				Deceased: models.Deceased{DomiciledInProvince: false, DomicileCountry: "United Kingdom"},
			},
			want: []models.FormCode{models.FormP2, models.FormP3, models.FormP9, models.FormP11},
		},
		{
			name: "administration with foreign domicile",
			c: models.EstateCase{
				PathType: models.PathAdministration,
				Deceased: models.Deceased{DomiciledInProvince: false},
			},
			want: []models.FormCode{models.FormP2, models.FormP5, models.FormP9, models.FormP11},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reqs := SelectForms(&tc.c)

			require.Len(t, reqs, len(tc.want))
			assert.Equal(t, tc.want, formCodes(reqs))
			for _, r := range reqs {
				assert.True(t, r.Required)
			}
		})
	}
}

func TestRequiresGuardianNotice(t *testing.T) {
	tests := []struct {
		name string
		c    models.EstateCase
		want bool
	}{
		{
			name: "explicit flag",
			c:    models.EstateCase{HasMinorBeneficiaries: true},
			want: true,
		},
		{
			name: "minor child",
			c: models.EstateCase{
				Family: models.FamilyDeclaration{
					Children: []models.ConsentRecord{
						{Name: "Anne Smith", Exists: models.ExistsYes, IsMinor: true},
					},
				},
			},
			want: true,
		},
		{
			name: "minor relative",
			c: models.EstateCase{
				Family: models.FamilyDeclaration{
					OtherRelatives: []models.Relative{
						{Name: "Kyle Smith", Tier: models.TierNieceNephew, IsMinor: true},
					},
				},
			},
			want: true,
		},
		{
			name: "adults only",
			c: models.EstateCase{
				Family: models.FamilyDeclaration{
					Children: []models.ConsentRecord{
						{Name: "Anne Smith", Exists: models.ExistsYes},
					},
				},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequiresGuardianNotice(&tc.c))
		})
	}
}
