package forms

// The structs in this file are the fixed field contracts the form templates
// render against. Field names (via json tags) are a versioned external
// interface shared with the template set; a template and its mapper must
// never drift apart on these names.

// ApplicantFields carries one applicant's identity for a form.
type ApplicantFields struct {
	FullName     string `json:"fullName"`
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	Relationship string `json:"relationship"`
	IsPrimary    bool   `json:"isPrimary"`
}

// HeirFields carries one heir's line of the distribution table.
type HeirFields struct {
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship"`
	SharePercent string `json:"sharePercent"`
	Address      string `json:"address"`
	IsApplicant  bool   `json:"isApplicant"`
}

// AssetFields carries one asset schedule line.
type AssetFields struct {
	Description      string `json:"description"`
	Location         string `json:"location"`
	LegalDescription string `json:"legalDescription"`
	Institution      string `json:"institution"`
	Value            string `json:"value"`
}

// DeliveryFields identifies one recipient of the notice of proposed
// application for the Affidavit of Delivery.
type DeliveryFields struct {
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship"`
	Address      string `json:"address"`
}

// P2Fields is the field contract for the Submission for Estate Grant.
type P2Fields struct {
	Registry               string            `json:"registry"`
	GrantType              string            `json:"grantType"`
	DeceasedFirstName      string            `json:"deceasedFirstName"`
	DeceasedMiddleName     string            `json:"deceasedMiddleName"`
	DeceasedLastName       string            `json:"deceasedLastName"`
	DeceasedFullName       string            `json:"deceasedFullName"`
	DeceasedAddress        string            `json:"deceasedAddress"`
	DateOfDeath            string            `json:"dateOfDeath"`
	HasWill                bool              `json:"hasWill"`
	CodicilCount           int               `json:"codicilCount"`
	Applicants             []ApplicantFields `json:"applicants"`
	RequiresGuardianNotice bool              `json:"requiresGuardianNotice"`
}

// P3Fields is the field contract for the short-form probate applicant
// affidavit.
type P3Fields struct {
	Registry               string   `json:"registry"`
	ApplicantFullName      string   `json:"applicantFullName"`
	ApplicantAddress       string   `json:"applicantAddress"`
	DeceasedFullName       string   `json:"deceasedFullName"`
	DateOfDeath            string   `json:"dateOfDeath"`
	CodicilCount           int      `json:"codicilCount"`
	HasOtherExecutors      bool     `json:"hasOtherExecutors"`
	OtherExecutors         []string `json:"otherExecutors"`
	RequiresGuardianNotice bool     `json:"requiresGuardianNotice"`
}

// P4Fields is the field contract for the long-form applicant affidavit used
// when the will carries alterations or interlineations.
type P4Fields struct {
	Registry               string   `json:"registry"`
	ApplicantFullName      string   `json:"applicantFullName"`
	ApplicantAddress       string   `json:"applicantAddress"`
	DeceasedFullName       string   `json:"deceasedFullName"`
	DateOfDeath            string   `json:"dateOfDeath"`
	CodicilCount           int      `json:"codicilCount"`
	HasAlterations         bool     `json:"hasAlterations"`
	HasOtherExecutors      bool     `json:"hasOtherExecutors"`
	OtherExecutors         []string `json:"otherExecutors"`
	RequiresGuardianNotice bool     `json:"requiresGuardianNotice"`
}

// P5Fields is the field contract for the administration applicant affidavit.
type P5Fields struct {
	Registry               string       `json:"registry"`
	ApplicantFullName      string       `json:"applicantFullName"`
	ApplicantRelationship  string       `json:"applicantRelationship"`
	ApplicantAddress       string       `json:"applicantAddress"`
	DeceasedFullName       string       `json:"deceasedFullName"`
	DateOfDeath            string       `json:"dateOfDeath"`
	Heirs                  []HeirFields `json:"heirs"`
	RequiresGuardianNotice bool         `json:"requiresGuardianNotice"`
}

// P9Fields is the field contract for the Affidavit of Delivery.
type P9Fields struct {
	Registry          string           `json:"registry"`
	ApplicantFullName string           `json:"applicantFullName"`
	DeceasedFullName  string           `json:"deceasedFullName"`
	Deliveries        []DeliveryFields `json:"deliveries"`
}

// P10Fields is the field contract for the domestic Affidavit of Assets and
// Liabilities.
type P10Fields struct {
	Registry                string        `json:"registry"`
	DeceasedFullName        string        `json:"deceasedFullName"`
	DateOfDeath             string        `json:"dateOfDeath"`
	RealProperty            []AssetFields `json:"realProperty"`
	TangibleProperty        []AssetFields `json:"tangibleProperty"`
	IntangibleProperty      []AssetFields `json:"intangibleProperty"`
	TotalRealProperty       string        `json:"totalRealProperty"`
	TotalTangibleProperty   string        `json:"totalTangibleProperty"`
	TotalIntangibleProperty string        `json:"totalIntangibleProperty"`
	TotalAssets             string        `json:"totalAssets"`
}

// P11Fields is the field contract for the non-domiciled asset affidavit used
// on resealing applications.
type P11Fields struct {
	Registry                string        `json:"registry"`
	DeceasedFullName        string        `json:"deceasedFullName"`
	DateOfDeath             string        `json:"dateOfDeath"`
	DomicileCountry         string        `json:"domicileCountry"`
	ResealingRequired       bool          `json:"resealingRequired"`
	RealProperty            []AssetFields `json:"realProperty"`
	TangibleProperty        []AssetFields `json:"tangibleProperty"`
	IntangibleProperty      []AssetFields `json:"intangibleProperty"`
	TotalRealProperty       string        `json:"totalRealProperty"`
	TotalTangibleProperty   string        `json:"totalTangibleProperty"`
	TotalIntangibleProperty string        `json:"totalIntangibleProperty"`
	TotalAssets             string        `json:"totalAssets"`
}
