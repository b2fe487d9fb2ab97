package models

import (
	"time"

	"github.com/google/uuid"
)

// PathType distinguishes the two grant paths a case can take.
type PathType string

const (
	// PathProbate is the path for estates with a valid will.
	PathProbate PathType = "probate"
	// PathAdministration is the intestacy path, requiring priority resolution
	// before distribution.
	PathAdministration PathType = "administration"
)

// PriorityStatus is the outcome of relationship priority resolution.
type PriorityStatus string

const (
	// PriorityUnresolved means resolution has not been run for the case yet.
	PriorityUnresolved PriorityStatus = ""
	// PriorityClear means no higher-priority relative stands in the way.
	PriorityClear PriorityStatus = "clear"
	// PriorityBlocked means a higher-priority relative withholds consent.
	PriorityBlocked PriorityStatus = "blocked"
	// PriorityNeedsInput means required relationship data is missing.
	PriorityNeedsInput PriorityStatus = "needs-input"
)

// EstateCase is the root aggregate for a probate or administration filing.
// It is read-only input to the distribution and document pipeline; the only
// state this engine writes back is the priority status, the confirmed heir
// list, and the generated-document manifest.
type EstateCase struct {
	ID                    uuid.UUID         `json:"id"`
	Registry              string            `json:"registry"`
	PathType              PathType          `json:"pathType"`
	Deceased              Deceased          `json:"deceased"`
	Applicants            []Person          `json:"applicants"`
	Family                FamilyDeclaration `json:"family"`
	Heirs                 []HeirEntry       `json:"heirs,omitempty"`
	Assets                []AssetItem       `json:"assets,omitempty"`
	DraftApplicantName    string            `json:"draftApplicantName,omitempty"`
	HasWill               bool              `json:"hasWill"`
	WillHasAlterations    bool              `json:"willHasAlterations"`
	CodicilCount          int               `json:"codicilCount"`
	HasMinorBeneficiaries bool              `json:"hasMinorBeneficiaries"`
	PriorityStatus        PriorityStatus    `json:"priorityResolutionStatus"`
	DistributionConfirmed bool              `json:"distributionConfirmed"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// PrimaryApplicant returns the applicant marked primary, or nil when the
// applicant list is empty. Exactly one applicant may carry the primary flag.
func (c *EstateCase) PrimaryApplicant() *Person {
	for i := range c.Applicants {
		if c.Applicants[i].IsPrimary {
			return &c.Applicants[i]
		}
	}
	if len(c.Applicants) > 0 {
		return &c.Applicants[0]
	}
	return nil
}

// RenouncingExecutors returns the names of co-executors or co-applicants who
// have formally renounced, used by the applicant affidavits.
func (c *EstateCase) RenouncingExecutors() []string {
	var names []string
	for _, a := range c.Applicants {
		if a.IsRenouncing {
			names = append(names, a.FullName)
		}
	}
	return names
}
