package models

// ExistsState records whether a relative in a priority class exists.
type ExistsState string

const (
	ExistsYes      ExistsState = "yes"
	ExistsNo       ExistsState = "no"
	ExistsDeceased ExistsState = "deceased"
)

// ConsentState records a relative's position on the application.
type ConsentState string

const (
	ConsentYes      ConsentState = "yes"
	ConsentNo       ConsentState = "no"
	ConsentApplying ConsentState = "applying"
)

// ConsentRecord is the declared state of one relative in a priority class:
// whether they exist and, if so, whether they consent to the application.
type ConsentRecord struct {
	Name     string       `json:"name"`
	Exists   ExistsState  `json:"exists"`
	Consents ConsentState `json:"consents,omitempty"`
	Address  Address      `json:"address,omitempty"`
	IsMinor  bool         `json:"isMinor,omitempty"`
}

// Relative is a family member outside the explicit spouse/children checks,
// tagged with a free-text relationship resolved to a tier at intake.
type Relative struct {
	Name         string           `json:"name"`
	Relationship string           `json:"relationship"`
	Tier         RelationshipTier `json:"tier"`
	Address      Address          `json:"address,omitempty"`
	IsDeceased   bool             `json:"isDeceased,omitempty"`
	IsMinor      bool             `json:"isMinor,omitempty"`
}

// FamilyDeclaration is the declared family structure the resolver and the
// distribution calculator operate on. Spouse is nil when the question was
// never answered, which is distinct from a spouse that does not exist.
type FamilyDeclaration struct {
	Spouse           *ConsentRecord  `json:"spouse,omitempty"`
	Children         []ConsentRecord `json:"children"`
	ChildrenDeclared bool            `json:"childrenDeclared"`
	OtherRelatives   []Relative      `json:"otherRelatives,omitempty"`
}

// LivingChildren returns the children records declared as existing. Records
// marked deceased or non-existent never inherit and never owe consent.
func (f FamilyDeclaration) LivingChildren() []ConsentRecord {
	out := make([]ConsentRecord, 0, len(f.Children))
	for _, c := range f.Children {
		if c.Exists == ExistsYes {
			out = append(out, c)
		}
	}
	return out
}

// RelativesInTier returns the living other-relatives entries in a tier.
func (f FamilyDeclaration) RelativesInTier(tier RelationshipTier) []Relative {
	out := make([]Relative, 0, len(f.OtherRelatives))
	for _, r := range f.OtherRelatives {
		if r.Tier == tier && !r.IsDeceased {
			out = append(out, r)
		}
	}
	return out
}

// HasLivingSpouse reports whether a spouse is declared and alive.
func (f FamilyDeclaration) HasLivingSpouse() bool {
	return f.Spouse != nil && f.Spouse.Exists == ExistsYes
}
