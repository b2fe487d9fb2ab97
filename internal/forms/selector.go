// Package forms selects the court forms a case legally requires and maps the
// case aggregate into each form's fixed field contract.
package forms

import "github.com/omize10/probatepath-sub002/internal/models"

// SelectForms determines the ordered set of forms required for a case.
//
// Probate with a will: P2, then P3 (or P4 when the will carries alterations
// or interlineations), then P9, then the asset affidavit (P10 domestic, P11
// when the deceased was domiciled outside the province).
//
// Administration without a will substitutes P5 for the applicant affidavit;
// the rest of the package is unchanged.
func SelectForms(c *models.EstateCase) []models.FormRequirement {
	required := make([]models.FormRequirement, 0, 4)

	required = append(required, models.FormRequirement{Code: models.FormP2, Required: true})

	if c.PathType == models.PathAdministration || !c.HasWill {
		required = append(required, models.FormRequirement{Code: models.FormP5, Required: true})
	} else if c.WillHasAlterations {
		required = append(required, models.FormRequirement{Code: models.FormP4, Required: true})
	} else {
		required = append(required, models.FormRequirement{Code: models.FormP3, Required: true})
	}

	required = append(required, models.FormRequirement{Code: models.FormP9, Required: true})

	if c.Deceased.DomiciledInProvince {
		required = append(required, models.FormRequirement{Code: models.FormP10, Required: true})
	} else {
		required = append(required, models.FormRequirement{Code: models.FormP11, Required: true})
	}

	return required
}

// RequiresGuardianNotice reports whether any beneficiary on the case is a
// minor, which obliges notice to the Public Guardian and Trustee on the
// applicant affidavits.
func RequiresGuardianNotice(c *models.EstateCase) bool {
	if c.HasMinorBeneficiaries {
		return true
	}
	for _, child := range c.Family.Children {
		if child.IsMinor && child.Exists == models.ExistsYes {
			return true
		}
	}
	for _, r := range c.Family.OtherRelatives {
		if r.IsMinor && !r.IsDeceased {
			return true
		}
	}
	return false
}
