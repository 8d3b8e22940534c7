package skills

import "math"

const (
	MinImportance     = 0.1
	MaxImportance     = 1.0
	DefaultImportance = 0.5
)

// Category marks whether a job skill is required or only preferred.
type Category string

const (
	CategoryRequired  Category = "required"
	CategoryPreferred Category = "preferred"
)

// GroupKind is the semantics of a skill group. Only any_of exists.
type GroupKind string

const GroupAnyOf GroupKind = "any_of"

// SkillItem pairs the label shown to the user with its comparison key.
type SkillItem struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// SkillGroup is a single requirement unit satisfied by any one of its items.
type SkillGroup struct {
	Kind  GroupKind   `json:"type"`
	Items []SkillItem `json:"items"`
}

// Labels returns the display labels of the group members in order.
func (g SkillGroup) Labels() []string {
	labels := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		labels = append(labels, item.Label)
	}
	return labels
}

type WeightedSkill struct {
	Name       string   `json:"name" validate:"required"`
	Key        string   `json:"key" validate:"required"`
	Category   Category `json:"category" validate:"oneof=required preferred"`
	Importance float64  `json:"importance" validate:"gte=0.1,lte=1"`
	Reason     string   `json:"reason,omitempty" validate:"max=120"`
}

// RequirementSet is the cleaned employer side of a match.
type RequirementSet struct {
	RequiredItems   []SkillItem  `json:"requiredItems"`
	PreferredItems  []SkillItem  `json:"preferredItems"`
	RequiredGroups  []SkillGroup `json:"requiredGroups"`
	PreferredGroups []SkillGroup `json:"preferredGroups"`
}

// IsEmpty reports whether the set has no requirement units at all.
func (r RequirementSet) IsEmpty() bool {
	return len(r.RequiredItems)+len(r.PreferredItems)+len(r.RequiredGroups)+len(r.PreferredGroups) == 0
}

// KeySet holds the normalized keys of the skills a candidate has.
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

// Add ignores empty keys.
func (s KeySet) Add(key string) {
	if key == "" {
		return
	}
	s[key] = struct{}{}
}

func (s KeySet) Has(key string) bool {
	if key == "" {
		return false
	}
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int { return len(s) }

// ClampImportance forces v into [MinImportance, MaxImportance]. NaN becomes MinImportance.
func ClampImportance(v float64) float64 {
	if math.IsNaN(v) {
		return MinImportance
	}
	return math.Min(MaxImportance, math.Max(MinImportance, v))
}
