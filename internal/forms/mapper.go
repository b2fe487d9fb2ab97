package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omize10/probatepath-sub002/internal/models"
)

// Mapper-level errors.
var (
	// ErrMissingRequiredField is returned when a template-required identifying
	// field is entirely absent. A rendered document without it is legally
	// unusable, so the form's generation must abort.
	ErrMissingRequiredField = errors.New("missing required identifying field")
	// ErrUnknownForm is returned for a form code with no registered mapper.
	ErrUnknownForm = errors.New("unknown form code")
)

// MapForm transforms the case aggregate into the field contract for the given
// form code. Missing optional data degrades to empty values; only an absent
// required identifying field is an error.
func MapForm(c *models.EstateCase, code models.FormCode) (interface{}, error) {
	if err := requireDeceasedIdentity(c); err != nil {
		return nil, fmt.Errorf("form %s: %w", code, err)
	}

	switch code {
	case models.FormP2:
		return MapP2(c), nil
	case models.FormP3:
		return MapP3(c), nil
	case models.FormP4:
		return MapP4(c), nil
	case models.FormP5:
		return MapP5(c), nil
	case models.FormP9:
		return MapP9(c), nil
	case models.FormP10:
		return MapP10(c), nil
	case models.FormP11:
		return MapP11(c), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownForm, code)
	}
}

// requireDeceasedIdentity enforces the one fatal precondition every form
// shares: the deceased must be identifiable by name.
func requireDeceasedIdentity(c *models.EstateCase) error {
	if strings.TrimSpace(c.Deceased.FullName) == "" {
		return fmt.Errorf("%w: deceased full name", ErrMissingRequiredField)
	}
	return nil
}

// MapP2 builds the Submission for Estate Grant fields.
func MapP2(c *models.EstateCase) P2Fields {
	first, middle, last := SplitName(c.Deceased.FullName)

	applicants := make([]ApplicantFields, 0, len(c.Applicants))
	for _, a := range c.Applicants {
		applicants = append(applicants, applicantFields(a))
	}
	if len(applicants) == 0 && c.DraftApplicantName != "" {
		// No structured applicant record yet; fall back to the intake draft
		// name so the submission is still serviceable.
		af := ApplicantFields{FullName: c.DraftApplicantName, IsPrimary: true}
		af.FirstName, af.MiddleName, af.LastName = SplitName(c.DraftApplicantName)
		applicants = append(applicants, af)
	}

	return P2Fields{
		Registry:               c.Registry,
		GrantType:              string(c.PathType),
		DeceasedFirstName:      first,
		DeceasedMiddleName:     middle,
		DeceasedLastName:       last,
		DeceasedFullName:       c.Deceased.FullName,
		DeceasedAddress:        c.Deceased.Address.OneLine(),
		DateOfDeath:            FormatDate(c.Deceased.DateOfDeath),
		HasWill:                c.HasWill,
		CodicilCount:           c.CodicilCount,
		Applicants:             applicants,
		RequiresGuardianNotice: RequiresGuardianNotice(c),
	}
}

// MapP3 builds the short-form probate applicant affidavit fields.
func MapP3(c *models.EstateCase) P3Fields {
	name, addr := primaryApplicant(c)
	others := c.RenouncingExecutors()

	return P3Fields{
		Registry:               c.Registry,
		ApplicantFullName:      name,
		ApplicantAddress:       addr,
		DeceasedFullName:       c.Deceased.FullName,
		DateOfDeath:            FormatDate(c.Deceased.DateOfDeath),
		CodicilCount:           c.CodicilCount,
		HasOtherExecutors:      len(others) > 0,
		OtherExecutors:         others,
		RequiresGuardianNotice: RequiresGuardianNotice(c),
	}
}

// MapP4 builds the long-form applicant affidavit fields. It mirrors P3 with
// the alteration attestation the long form requires.
func MapP4(c *models.EstateCase) P4Fields {
	name, addr := primaryApplicant(c)
	others := c.RenouncingExecutors()

	return P4Fields{
		Registry:               c.Registry,
		ApplicantFullName:      name,
		ApplicantAddress:       addr,
		DeceasedFullName:       c.Deceased.FullName,
		DateOfDeath:            FormatDate(c.Deceased.DateOfDeath),
		CodicilCount:           c.CodicilCount,
		HasAlterations:         c.WillHasAlterations,
		HasOtherExecutors:      len(others) > 0,
		OtherExecutors:         others,
		RequiresGuardianNotice: RequiresGuardianNotice(c),
	}
}

// MapP5 builds the administration applicant affidavit fields, including the
// confirmed heir distribution table.
func MapP5(c *models.EstateCase) P5Fields {
	name, addr := primaryApplicant(c)

	heirs := make([]HeirFields, 0, len(c.Heirs))
	for _, h := range c.Heirs {
		heirs = append(heirs, HeirFields{
			FullName:     h.Name,
			Relationship: h.Relationship.String(),
			SharePercent: FormatPercent(h.SharePercent),
			Address:      h.Address.OneLine(),
			IsApplicant:  h.IsApplicant,
		})
	}

	relationship := ""
	if p := c.PrimaryApplicant(); p != nil {
		relationship = p.Tier.String()
	}

	return P5Fields{
		Registry:               c.Registry,
		ApplicantFullName:      name,
		ApplicantRelationship:  relationship,
		ApplicantAddress:       addr,
		DeceasedFullName:       c.Deceased.FullName,
		DateOfDeath:            FormatDate(c.Deceased.DateOfDeath),
		Heirs:                  heirs,
		RequiresGuardianNotice: RequiresGuardianNotice(c),
	}
}

// MapP9 builds the Affidavit of Delivery fields. Every heir and non-primary
// applicant is a notice recipient; a co-applicant who is also an heir gets
// exactly one delivery line.
func MapP9(c *models.EstateCase) P9Fields {
	name, _ := primaryApplicant(c)

	deliveries := make([]DeliveryFields, 0, len(c.Heirs)+len(c.Applicants))
	seen := make(map[string]struct{}, len(c.Heirs)+len(c.Applicants))
	for _, h := range c.Heirs {
		if _, ok := seen[h.Name]; ok && h.Name != "" {
			continue
		}
		seen[h.Name] = struct{}{}
		deliveries = append(deliveries, DeliveryFields{
			FullName:     h.Name,
			Relationship: h.Relationship.String(),
			Address:      h.Address.OneLine(),
		})
	}
	for _, a := range c.Applicants {
		if a.IsPrimary {
			continue
		}
		if _, ok := seen[a.FullName]; ok {
			continue
		}
		seen[a.FullName] = struct{}{}
		deliveries = append(deliveries, DeliveryFields{
			FullName:     a.FullName,
			Relationship: a.Tier.String(),
			Address:      a.Address.OneLine(),
		})
	}

	return P9Fields{
		Registry:          c.Registry,
		ApplicantFullName: name,
		DeceasedFullName:  c.Deceased.FullName,
		Deliveries:        deliveries,
	}
}

// MapP10 builds the domestic asset affidavit fields.
func MapP10(c *models.EstateCase) P10Fields {
	buckets := assetBuckets(c.Assets)
	totals := models.TotalAssets(c.Assets)

	return P10Fields{
		Registry:                c.Registry,
		DeceasedFullName:        c.Deceased.FullName,
		DateOfDeath:             FormatDate(c.Deceased.DateOfDeath),
		RealProperty:            buckets[models.AssetRealProperty],
		TangibleProperty:        buckets[models.AssetTangible],
		IntangibleProperty:      buckets[models.AssetIntangible],
		TotalRealProperty:       FormatCurrency(totals.Real),
		TotalTangibleProperty:   FormatCurrency(totals.Tangible),
		TotalIntangibleProperty: FormatCurrency(totals.Intangible),
		TotalAssets:             FormatCurrency(totals.Grand),
	}
}

// MapP11 builds the non-domiciled asset affidavit fields for resealing.
func MapP11(c *models.EstateCase) P11Fields {
	buckets := assetBuckets(c.Assets)
	totals := models.TotalAssets(c.Assets)

	return P11Fields{
		Registry:                c.Registry,
		DeceasedFullName:        c.Deceased.FullName,
		DateOfDeath:             FormatDate(c.Deceased.DateOfDeath),
		DomicileCountry:         c.Deceased.DomicileCountry,
		ResealingRequired:       true,
		RealProperty:            buckets[models.AssetRealProperty],
		TangibleProperty:        buckets[models.AssetTangible],
		IntangibleProperty:      buckets[models.AssetIntangible],
		TotalRealProperty:       FormatCurrency(totals.Real),
		TotalTangibleProperty:   FormatCurrency(totals.Tangible),
		TotalIntangibleProperty: FormatCurrency(totals.Intangible),
		TotalAssets:             FormatCurrency(totals.Grand),
	}
}

// primaryApplicant returns the primary applicant's name and address, falling
// back to the flat intake draft name when no structured record exists.
func primaryApplicant(c *models.EstateCase) (name, address string) {
	if p := c.PrimaryApplicant(); p != nil {
		return p.FullName, p.Address.OneLine()
	}
	return c.DraftApplicantName, ""
}

func applicantFields(a models.Person) ApplicantFields {
	first, middle, last := SplitName(a.FullName)
	return ApplicantFields{
		FullName:     a.FullName,
		FirstName:    first,
		MiddleName:   middle,
		LastName:     last,
		Address:      a.Address.OneLine(),
		Relationship: a.Tier.String(),
		IsPrimary:    a.IsPrimary,
	}
}

// assetBuckets groups schedule lines by their intake-assigned category.
func assetBuckets(items []models.AssetItem) map[models.AssetCategory][]AssetFields {
	buckets := map[models.AssetCategory][]AssetFields{
		models.AssetRealProperty: {},
		models.AssetTangible:     {},
		models.AssetIntangible:   {},
	}
	for _, item := range items {
		category := item.Category
		if _, ok := buckets[category]; !ok {
			category = models.AssetIntangible
		}
		buckets[category] = append(buckets[category], AssetFields{
			Description:      item.Description,
			Location:         item.Location,
			LegalDescription: item.LegalDescription,
			Institution:      item.Institution,
			Value:            FormatCurrency(item.Value),
		})
	}
	return buckets
}
