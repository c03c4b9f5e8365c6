package model

import "strings"

// CategorizationRule is a user-defined keyword override. When a transaction
// description contains the keyword (case-insensitive), the rule's category
// pre-empts whatever the model would suggest. At most one rule exists per
// keyword.
type CategorizationRule struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// Matches reports whether the rule applies to the given description.
func (r CategorizationRule) Matches(description string) bool {
	return strings.Contains(strings.ToLower(description), strings.ToLower(r.Keyword))
}

// MatchingRules filters rules down to those whose keyword appears in the
// description. Order is preserved.
func MatchingRules(rules []CategorizationRule, description string) []CategorizationRule {
	var matched []CategorizationRule
	for _, r := range rules {
		if r.Matches(description) {
			matched = append(matched, r)
		}
	}
	return matched
}
