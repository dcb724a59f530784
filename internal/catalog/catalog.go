package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog holds the loaded symptom and recommendation tables. It is built
// once at startup and read-only afterwards, so it is safe to share across
// requests without synchronisation.
type Catalog struct {
	version      string
	symptoms     map[SymptomID]SymptomEntry
	symptomOrder []SymptomID
	items        []RecommendationItem
}

// Load builds the catalog from the embedded seed tables and validates
// referential integrity. A broken catalog is a programming/data error: the
// returned error is fatal and must abort startup, it is never surfaced at
// request time.
func Load() (*Catalog, error) {
	return build(catalogVersion, seedSymptoms, seedItems)
}

func build(version string, symptoms []SymptomEntry, items []RecommendationItem) (*Catalog, error) {
	c := &Catalog{
		version:  version,
		symptoms: make(map[SymptomID]SymptomEntry, len(symptoms)),
	}

	var result *multierror.Error
	for _, s := range symptoms {
		if s.ID == "" {
			result = multierror.Append(result, fmt.Errorf("symptom %q has empty id", s.Name))
			continue
		}
		if _, dup := c.symptoms[s.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("duplicate symptom id %q", s.ID))
			continue
		}
		switch s.Weight {
		case WeightLow, WeightMedium, WeightHigh, WeightEmergency:
		default:
			result = multierror.Append(result, fmt.Errorf("symptom %q has unknown urgency weight %q", s.ID, s.Weight))
		}
		c.symptoms[s.ID] = s
		c.symptomOrder = append(c.symptomOrder, s.ID)
	}

	seenItems := make(map[string]bool, len(items))
	for _, item := range items {
		if seenItems[item.ID] {
			result = multierror.Append(result, fmt.Errorf("duplicate recommendation id %q", item.ID))
			continue
		}
		seenItems[item.ID] = true

		if len(item.Triggers) == 0 {
			result = multierror.Append(result, fmt.Errorf("recommendation %q declares no trigger symptoms", item.ID))
		}
		for _, trigger := range item.Triggers {
			if _, ok := c.symptoms[trigger]; !ok {
				result = multierror.Append(result, fmt.Errorf("recommendation %q references unknown symptom %q", item.ID, trigger))
			}
		}
		// An item must carry at least one contraindication or precaution
		// so safety information is never a single throwaway word.
		if len(item.Contraindications) == 0 && len(item.Precautions) == 0 {
			result = multierror.Append(result, fmt.Errorf("recommendation %q has neither contraindications nor precautions", item.ID))
		}
		c.items = append(c.items, item)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("catalog integrity: %w", err)
	}
	return c, nil
}

// Version returns the catalog data version.
func (c *Catalog) Version() string { return c.version }

// Symptom looks up a symptom entry by identifier.
func (c *Catalog) Symptom(id SymptomID) (SymptomEntry, bool) {
	s, ok := c.symptoms[id]
	return s, ok
}

// Symptoms returns all entries in declaration order.
func (c *Catalog) Symptoms() []SymptomEntry {
	out := make([]SymptomEntry, 0, len(c.symptomOrder))
	for _, id := range c.symptomOrder {
		out = append(out, c.symptoms[id])
	}
	return out
}

// Items returns all recommendation rows in declaration order.
func (c *Catalog) Items() []RecommendationItem {
	out := make([]RecommendationItem, len(c.items))
	copy(out, c.items)
	return out
}
