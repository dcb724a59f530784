package triage

import (
	"sort"

	"health-advisor/internal/catalog"
)

// MatchedItem is a recommendation together with the input symptoms that
// selected it.
type MatchedItem struct {
	Item catalog.RecommendationItem `json:"item"`
	// MatchedSymptoms is the intersection of the item's trigger set with
	// the input, in trigger-set order.
	MatchedSymptoms []catalog.SymptomID `json:"matched_symptoms"`
}

// MatchResult groups matched recommendations by variant.
type MatchResult struct {
	Medicines         []MatchedItem       `json:"medicines"`
	HomeCare          []MatchedItem       `json:"home_care"`
	Natural           []MatchedItem       `json:"natural"`
	HasEmergency      bool                `json:"has_emergency"`
	EmergencySymptoms []catalog.SymptomID `json:"emergency_symptoms"`
}

// Matcher selects recommendations by trigger-set intersection. It is pure:
// identical input always yields identical output, with no time dependence or
// randomness, so the safety gate can re-derive results deterministically.
type Matcher struct {
	cat *catalog.Catalog
}

func NewMatcher(cat *catalog.Catalog) *Matcher {
	return &Matcher{cat: cat}
}

// Match returns every catalog item whose trigger set intersects the input,
// deduplicated by identifier and sorted by (intersection size descending,
// catalog priority, identifier ascending).
func (m *Matcher) Match(symptomIDs []catalog.SymptomID) MatchResult {
	inputSet := make(map[catalog.SymptomID]bool, len(symptomIDs))
	for _, id := range symptomIDs {
		inputSet[id] = true
	}

	var result MatchResult
	seen := make(map[string]bool)
	for _, item := range m.cat.Items() {
		if seen[item.ID] {
			continue
		}
		var matched []catalog.SymptomID
		for _, trigger := range item.Triggers {
			if inputSet[trigger] {
				matched = append(matched, trigger)
			}
		}
		if len(matched) == 0 {
			continue
		}
		seen[item.ID] = true

		entry := MatchedItem{Item: item, MatchedSymptoms: matched}
		switch item.Kind {
		case catalog.KindMedicine:
			result.Medicines = append(result.Medicines, entry)
		case catalog.KindHomeRemedy:
			result.HomeCare = append(result.HomeCare, entry)
		case catalog.KindNaturalRemedy:
			result.Natural = append(result.Natural, entry)
		}
	}

	sortMatches(result.Medicines)
	sortMatches(result.HomeCare)
	sortMatches(result.Natural)

	// Emergency flag and contributing symptoms, input order preserved.
	for _, id := range symptomIDs {
		if entry, ok := m.cat.Symptom(id); ok && entry.Weight == catalog.WeightEmergency {
			result.HasEmergency = true
			result.EmergencySymptoms = append(result.EmergencySymptoms, id)
		}
	}

	return result
}

func sortMatches(items []MatchedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if len(a.MatchedSymptoms) != len(b.MatchedSymptoms) {
			return len(a.MatchedSymptoms) > len(b.MatchedSymptoms)
		}
		if a.Item.Priority != b.Item.Priority {
			return a.Item.Priority < b.Item.Priority
		}
		return a.Item.ID < b.Item.ID
	})
}
