package models

import "strings"

// RelationshipTier ranks a relative's statutory priority to apply for
// administration of an intestate estate. Lower ordinals apply first.
type RelationshipTier int

const (
	TierUnknown     RelationshipTier = 0
	TierSpouse      RelationshipTier = 1
	TierChild       RelationshipTier = 2
	TierGrandchild  RelationshipTier = 3
	TierParent      RelationshipTier = 4
	TierSibling     RelationshipTier = 5
	TierNieceNephew RelationshipTier = 6
	TierOther       RelationshipTier = 7
)

// String returns the canonical relationship label for the tier.
func (t RelationshipTier) String() string {
	switch t {
	case TierSpouse:
		return "spouse"
	case TierChild:
		return "child"
	case TierGrandchild:
		return "grandchild"
	case TierParent:
		return "parent"
	case TierSibling:
		return "sibling"
	case TierNieceNephew:
		return "niece/nephew"
	case TierOther:
		return "other"
	default:
		return "unknown"
	}
}

// HigherPriorityThan reports whether t outranks other in the application order.
func (t RelationshipTier) HigherPriorityThan(other RelationshipTier) bool {
	return t != TierUnknown && (other == TierUnknown || t < other)
}

// ParseRelationship maps a declared relationship tag to its priority tier.
// Tags come from intake free text, so matching is case-insensitive and
// tolerant of common variants (e.g. "daughter" and "son" are both children).
func ParseRelationship(tag string) RelationshipTier {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "spouse", "wife", "husband", "partner", "common-law spouse":
		return TierSpouse
	case "child", "son", "daughter":
		return TierChild
	case "grandchild", "grandson", "granddaughter":
		return TierGrandchild
	case "parent", "mother", "father":
		return TierParent
	case "sibling", "brother", "sister":
		return TierSibling
	case "niece", "nephew", "niece/nephew":
		return TierNieceNephew
	case "":
		return TierUnknown
	default:
		return TierOther
	}
}
