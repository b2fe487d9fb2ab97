// Package priority determines who is entitled to apply for administration of
// an intestate estate and which consents or renunciations stand in the way.
package priority

import (
	"fmt"

	"github.com/omize10/probatepath-sub002/internal/models"
)

// ActionKind classifies what a relative must do before the case can proceed.
type ActionKind string

const (
	// ActionRenounce means the relative consents but must sign a formal
	// renunciation of their right to apply.
	ActionRenounce ActionKind = "renunciation"
	// ActionCoApply means the relative is joining the application and must be
	// recorded as a co-applicant.
	ActionCoApply ActionKind = "co-applicant"
	// ActionResolveConsent means the relative withholds consent; the case is
	// blocked until their position is resolved.
	ActionResolveConsent ActionKind = "resolve-consent"
	// ActionProvideInput means required relationship data is missing from the
	// declaration and must be supplied before resolution can complete.
	ActionProvideInput ActionKind = "provide-input"
)

// RequiredAction names a specific relative and the step required of them.
type RequiredAction struct {
	Kind         ActionKind              `json:"kind"`
	Name         string                  `json:"name,omitempty"`
	Relationship models.RelationshipTier `json:"-"`
	Detail       string                  `json:"detail"`
}

// Resolution is the outcome of evaluating the priority chain for a case.
type Resolution struct {
	Status          models.PriorityStatus `json:"status"`
	RequiredActions []RequiredAction      `json:"requiredActions"`
}

// Resolve evaluates the priority chain for the primary applicant's declared
// tier against the family declaration. It is a pure function over the
// declaration; missing data yields a needs-input status, never a guess.
//
// A stricter tier is only examined when the applicant is not in that tier.
// Within a tier: a relative that does not exist is skipped; one applying
// joins as co-applicant; one consenting without applying owes a renunciation;
// one withholding consent blocks the case and stops evaluation of lower
// tiers; a deceased relative is skipped without promoting their descendants.
func Resolve(fam models.FamilyDeclaration, applicantTier models.RelationshipTier) Resolution {
	res := Resolution{Status: models.PriorityClear, RequiredActions: []RequiredAction{}}

	if applicantTier == models.TierUnknown {
		res.Status = models.PriorityNeedsInput
		res.RequiredActions = append(res.RequiredActions, RequiredAction{
			Kind:   ActionProvideInput,
			Detail: "the applicant's relationship to the deceased has not been declared",
		})
		return res
	}

	// Spouse tier outranks everything; skip it when the applicant is the spouse.
	spouseHasPriority := false
	if applicantTier != models.TierSpouse {
		if fam.Spouse == nil {
			res.Status = models.PriorityNeedsInput
			res.RequiredActions = append(res.RequiredActions, RequiredAction{
				Kind:   ActionProvideInput,
				Detail: "whether the deceased had a spouse has not been declared",
			})
			return res
		}

		switch fam.Spouse.Exists {
		case models.ExistsNo, models.ExistsDeceased:
			// No living spouse in the chain. A deceased spouse's own
			// descendants are not promoted here.
		case models.ExistsYes:
			spouseHasPriority = true
			action, blocked := consentAction(*fam.Spouse, models.TierSpouse)
			if action != nil {
				res.RequiredActions = append(res.RequiredActions, *action)
				if action.Kind == ActionProvideInput {
					res.Status = models.PriorityNeedsInput
					return res
				}
			}
			if blocked {
				res.Status = models.PriorityBlocked
				return res
			}
		default:
			res.Status = models.PriorityNeedsInput
			res.RequiredActions = append(res.RequiredActions, RequiredAction{
				Kind:   ActionProvideInput,
				Detail: "the spouse's status is incomplete",
			})
			return res
		}
	}

	// Children are only examined when the applicant sits below the child tier
	// and the spouse does not already hold priority.
	if applicantTier.HigherPriorityThan(models.TierChild) || spouseHasPriority {
		return res
	}
	if applicantTier == models.TierChild {
		return res
	}

	if !fam.ChildrenDeclared {
		res.Status = models.PriorityNeedsInput
		res.RequiredActions = append(res.RequiredActions, RequiredAction{
			Kind:   ActionProvideInput,
			Detail: "whether the deceased had children has not been declared",
		})
		return res
	}

	for _, child := range fam.Children {
		switch child.Exists {
		case models.ExistsNo, models.ExistsDeceased:
			continue
		case models.ExistsYes:
			action, blocked := consentAction(child, models.TierChild)
			if action != nil {
				res.RequiredActions = append(res.RequiredActions, *action)
				if action.Kind == ActionProvideInput {
					res.Status = models.PriorityNeedsInput
					return res
				}
			}
			if blocked {
				res.Status = models.PriorityBlocked
				return res
			}
		default:
			res.Status = models.PriorityNeedsInput
			res.RequiredActions = append(res.RequiredActions, RequiredAction{
				Kind:   ActionProvideInput,
				Name:   child.Name,
				Detail: fmt.Sprintf("the status of %s is incomplete", displayName(child.Name, models.TierChild)),
			})
			return res
		}
	}

	return res
}

// consentAction maps a living relative's consent state to the action required
// of them. The second return value reports whether the case is blocked.
func consentAction(rec models.ConsentRecord, tier models.RelationshipTier) (*RequiredAction, bool) {
	name := displayName(rec.Name, tier)

	switch rec.Consents {
	case models.ConsentApplying:
		return &RequiredAction{
			Kind:         ActionCoApply,
			Name:         rec.Name,
			Relationship: tier,
			Detail:       fmt.Sprintf("%s is applying and must be added as a co-applicant", name),
		}, false
	case models.ConsentYes:
		return &RequiredAction{
			Kind:         ActionRenounce,
			Name:         rec.Name,
			Relationship: tier,
			Detail:       fmt.Sprintf("%s must sign a renunciation before the application can proceed", name),
		}, false
	case models.ConsentNo:
		return &RequiredAction{
			Kind:         ActionResolveConsent,
			Name:         rec.Name,
			Relationship: tier,
			Detail:       fmt.Sprintf("%s does not consent; the application cannot proceed until this is resolved", name),
		}, true
	default:
		return &RequiredAction{
			Kind:         ActionProvideInput,
			Name:         rec.Name,
			Relationship: tier,
			Detail:       fmt.Sprintf("the consent position of %s has not been declared", name),
		}, false
	}
}

func displayName(name string, tier models.RelationshipTier) string {
	if name != "" {
		return fmt.Sprintf("%s (%s)", name, tier)
	}
	return "the deceased's " + tier.String()
}
