// Package distribution computes the statutory division of an intestate estate
// among heirs as percentage shares that always re-sum to exactly 100.
package distribution

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/omize10/probatepath-sub002/internal/models"
)

// shareScale is the decimal precision shares are computed at. Presentation
// rounds to two places; computing at four keeps the remainder rule exact.
const shareScale = 4

// ShareTolerance is the maximum deviation from 100 a confirmed heir list may
// carry before it is rejected as a defect.
var ShareTolerance = decimal.NewFromFloat(0.01)

var (
	// ErrNoHeirs is returned when no tier of the family declaration yields an
	// heir; such a case requires manual resolution.
	ErrNoHeirs = errors.New("no heirs could be resolved from the declared family structure")
	// ErrShareSumInvariant is returned when computed shares fail to re-sum to
	// 100 within tolerance.
	ErrShareSumInvariant = errors.New("heir shares do not sum to 100")
)

var (
	hundred = decimal.NewFromInt(100)
	fifty   = decimal.NewFromInt(50)
)

// Calculate derives the heir list for an intestate estate from the declared
// family structure. Rules are tiered and the first matching rule wins:
//
//  1. Living spouse, no living children: the spouse takes 100%.
//  2. Living spouse and children: the spouse takes 50% and the children split
//     the remaining 50% evenly. This is the flat split the product has always
//     used; the statutory preferential-share formula is an open question with
//     the legal team.
//  3. No living spouse, living children: the children split 100% evenly.
//  4. Neither: parents split evenly if any are declared, else siblings, else
//     no heirs resolve and ErrNoHeirs is returned.
//
// Even splits are computed at four decimal places with any remainder assigned
// to the first heir of the split group, so shares always re-sum to 100.
func Calculate(fam models.FamilyDeclaration, applicantTier models.RelationshipTier) ([]models.HeirEntry, error) {
	children := fam.LivingChildren()
	heirs := []models.HeirEntry{}

	switch {
	case fam.HasLivingSpouse() && len(children) == 0:
		heirs = append(heirs, models.HeirEntry{
			Name:         fam.Spouse.Name,
			Relationship: models.TierSpouse,
			SharePercent: hundred,
			IsApplicant:  applicantTier == models.TierSpouse,
			Address:      fam.Spouse.Address,
		})

	case fam.HasLivingSpouse():
		heirs = append(heirs, models.HeirEntry{
			Name:         fam.Spouse.Name,
			Relationship: models.TierSpouse,
			SharePercent: fifty,
			IsApplicant:  applicantTier == models.TierSpouse,
			Address:      fam.Spouse.Address,
		})
		heirs = append(heirs, childEntries(children, evenSplit(fifty, len(children)))...)

	case len(children) > 0:
		heirs = append(heirs, childEntries(children, evenSplit(hundred, len(children)))...)

	default:
		relatives := fam.RelativesInTier(models.TierParent)
		tier := models.TierParent
		if len(relatives) == 0 {
			relatives = fam.RelativesInTier(models.TierSibling)
			tier = models.TierSibling
		}
		if len(relatives) == 0 {
			return nil, ErrNoHeirs
		}
		shares := evenSplit(hundred, len(relatives))
		for i, r := range relatives {
			heirs = append(heirs, models.HeirEntry{
				Name:         r.Name,
				Relationship: tier,
				SharePercent: shares[i],
				Address:      r.Address,
			})
		}
	}

	markApplicant(heirs, applicantTier)

	if err := VerifyShares(heirs); err != nil {
		return nil, err
	}
	return heirs, nil
}

// VerifyShares checks the sum-to-100 invariant within ShareTolerance.
// A violation is a defect in the calculation, never user error.
func VerifyShares(heirs []models.HeirEntry) error {
	sum := models.ShareSum(heirs)
	if sum.Sub(hundred).Abs().GreaterThan(ShareTolerance) {
		return fmt.Errorf("%w: got %s", ErrShareSumInvariant, sum.String())
	}
	return nil
}

// evenSplit divides total into n shares at shareScale precision. The rounding
// remainder, if any, goes to the first share so the pieces re-sum exactly.
func evenSplit(total decimal.Decimal, n int) []decimal.Decimal {
	each := total.Div(decimal.NewFromInt(int64(n))).Round(shareScale)
	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = each
	}
	remainder := total.Sub(each.Mul(decimal.NewFromInt(int64(n))))
	shares[0] = shares[0].Add(remainder)
	return shares
}

func childEntries(children []models.ConsentRecord, shares []decimal.Decimal) []models.HeirEntry {
	entries := make([]models.HeirEntry, 0, len(children))
	for i, c := range children {
		entries = append(entries, models.HeirEntry{
			Name:         c.Name,
			Relationship: models.TierChild,
			SharePercent: shares[i],
			Address:      c.Address,
		})
	}
	return entries
}

// markApplicant flags the first heir matching the applicant's declared tier,
// unless the spouse logic already set the flag.
func markApplicant(heirs []models.HeirEntry, applicantTier models.RelationshipTier) {
	for i := range heirs {
		if heirs[i].IsApplicant {
			return
		}
	}
	for i := range heirs {
		if heirs[i].Relationship == applicantTier {
			heirs[i].IsApplicant = true
			return
		}
	}
}
