package catalog

// SymptomID identifies a symptom in the static catalog. Inbound identifiers
// are validated against the catalog before they reach any other component.
type SymptomID string

// UrgencyWeight is the catalog-declared severity of a symptom.
type UrgencyWeight string

const (
	WeightLow       UrgencyWeight = "low"
	WeightMedium    UrgencyWeight = "medium"
	WeightHigh      UrgencyWeight = "high"
	WeightEmergency UrgencyWeight = "emergency"
)

// AgeBand buckets patient age for dosage guidance and age-specific urgency.
type AgeBand string

const (
	BandNewborn AgeBand = "newborn"
	BandInfant  AgeBand = "infant"
	BandToddler AgeBand = "toddler"
	BandChild   AgeBand = "child"
	BandTeen    AgeBand = "13-18"
	BandAdult1  AgeBand = "19-30"
	BandAdult2  AgeBand = "31-45"
	BandAdult3  AgeBand = "46-60"
	BandSenior  AgeBand = "61+"
)

// IsInfant reports whether the band is one of the infant/newborn bands that
// trigger conservative escalation rules.
func (b AgeBand) IsInfant() bool {
	return b == BandNewborn || b == BandInfant
}

// SymptomEntry is one row of the symptom table. Immutable after load.
type SymptomEntry struct {
	ID             SymptomID         `json:"id"`
	Name           string            `json:"name"`
	LocalizedNames map[string]string `json:"localized_names,omitempty"`
	Weight         UrgencyWeight     `json:"urgency_weight"`
	BodySystem     string            `json:"body_system"`
	// AgeBands restricts relevance to specific bands; empty means all ages.
	AgeBands []AgeBand `json:"age_bands,omitempty"`
	// HighUrgencyFor lists bands for which this symptom is treated as
	// high-urgency even when its base weight is lower.
	HighUrgencyFor []AgeBand `json:"high_urgency_for,omitempty"`
	FollowUps      []string  `json:"follow_up_questions,omitempty"`
	Description    string    `json:"description"`
	// PossibleCauses feeds the "possible causes" field of the rule
	// classification response.
	PossibleCauses []string `json:"possible_causes,omitempty"`
}

// HighUrgencyForBand reports whether the symptom is tagged high-urgency for
// the given age band.
func (s SymptomEntry) HighUrgencyForBand(b AgeBand) bool {
	for _, band := range s.HighUrgencyFor {
		if band == b {
			return true
		}
	}
	return false
}

// ItemKind discriminates the recommendation variants.
type ItemKind string

const (
	KindMedicine      ItemKind = "medicine"
	KindHomeRemedy    ItemKind = "home_remedy"
	KindNaturalRemedy ItemKind = "natural_remedy"
)

// SafetyClass is the catalog safety classification of a recommendation.
type SafetyClass string

const (
	SafetyGenerallySafe    SafetyClass = "generally-safe"
	SafetyUseCaution       SafetyClass = "use-caution"
	SafetyPrescriptionOnly SafetyClass = "prescription-only"
)

// RecommendationItem is one remedy or medicine row. The medicine-only fields
// (Dosage, MaxDuration, side effects) are empty for the remedy kinds.
type RecommendationItem struct {
	ID        string      `json:"id"`
	Kind      ItemKind    `json:"kind"`
	Name      string      `json:"name"`
	Rationale string      `json:"rationale"`
	Safety    SafetyClass `json:"safety"`
	// Triggers is the set of symptoms this item is indexed under. Every
	// item must declare at least one.
	Triggers          []SymptomID `json:"triggers"`
	Contraindications []string    `json:"contraindications,omitempty"`
	Precautions       []string    `json:"precautions,omitempty"`
	// Priority is the catalog tiebreak when two items match the same
	// number of symptoms; lower sorts first.
	Priority int `json:"priority"`

	Dosage             map[AgeBand]string `json:"dosage,omitempty"`
	MaxDuration        string             `json:"max_duration,omitempty"`
	CommonSideEffects  []string           `json:"common_side_effects,omitempty"`
	SeriousSideEffects []string           `json:"serious_side_effects,omitempty"`
}
