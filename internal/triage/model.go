package triage

import (
	"fmt"
	"strings"

	"health-advisor/internal/catalog"
)

// UrgencyTier is the canonical four-tier urgency scale used everywhere
// inside the engine. The public rule-classification endpoint maps it onto
// the three-colour scale (see TierColour in the pathway package).
type UrgencyTier string

const (
	TierRoutine   UrgencyTier = "routine"
	TierModerate  UrgencyTier = "moderate"
	TierUrgent    UrgencyTier = "urgent"
	TierEmergency UrgencyTier = "emergency"
)

// Rank orders tiers for escalation comparisons: routine < moderate < urgent
// < emergency. Unknown tiers rank below routine.
func (t UrgencyTier) Rank() int {
	switch t {
	case TierRoutine:
		return 1
	case TierModerate:
		return 2
	case TierUrgent:
		return 3
	case TierEmergency:
		return 4
	}
	return 0
}

// DurationBucket is the reported symptom duration.
type DurationBucket string

const (
	DurationUnderDay  DurationBucket = "<24h"
	Duration1to3Days  DurationBucket = "1-3 days"
	Duration4to7Days  DurationBucket = "4-7 days"
	Duration1to2Weeks DurationBucket = "1-2 weeks"
	DurationOver2Wks  DurationBucket = "2+ weeks"
	DurationChronic   DurationBucket = "chronic"
)

func (d DurationBucket) rank() int {
	switch d {
	case DurationUnderDay:
		return 1
	case Duration1to3Days:
		return 2
	case Duration4to7Days:
		return 3
	case Duration1to2Weeks:
		return 4
	case DurationOver2Wks:
		return 5
	case DurationChronic:
		return 6
	}
	return 0
}

// AtLeast reports whether the bucket is the given bucket or longer.
func (d DurationBucket) AtLeast(other DurationBucket) bool {
	return d.rank() >= other.rank()
}

// TriageInput is one validated triage request. It is built fresh per request
// and never mutated after construction.
type TriageInput struct {
	AgeBand  catalog.AgeBand
	Gender   string
	// Symptoms is deduplicated with input order preserved for display.
	Symptoms []catalog.SymptomID
	Duration DurationBucket
	Severity int
	// CaregiverTag adjusts the tone of generated guidance when someone is
	// asking on behalf of another person ("parent", "caregiver").
	CaregiverTag string
}

// UrgencyVerdict is the deterministic classification result.
type UrgencyVerdict struct {
	Tier               UrgencyTier          `json:"tier"`
	Rationale          string               `json:"rationale"`
	TriggeringSymptoms []catalog.SymptomID  `json:"triggering_symptoms"`
	Emergency          bool                 `json:"emergency"`
}

// newVerdict keeps the Emergency flag consistent with the tier; the flag is
// true exactly when the tier is emergency, and once true a later merge step
// must never clear it.
func newVerdict(tier UrgencyTier, rationale string, triggers []catalog.SymptomID) UrgencyVerdict {
	return UrgencyVerdict{
		Tier:               tier,
		Rationale:          rationale,
		TriggeringSymptoms: triggers,
		Emergency:          tier == TierEmergency,
	}
}

// PathwayStep is one stage of a generated care pathway. Order is 1-based and
// strictly increasing.
type PathwayStep struct {
	Order       int      `json:"order"`
	Title       string   `json:"title"`
	Timeframe   string   `json:"timeframe"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
	Warnings    []string `json:"warnings,omitempty"`
}

// MedicinePriority marks a recommendation as the first choice or a fallback.
type MedicinePriority string

const (
	PriorityPrimary     MedicinePriority = "primary"
	PriorityAlternative MedicinePriority = "alternative"
)

// MedicineRecommendation is a generated, user-specific medicine suggestion.
type MedicineRecommendation struct {
	Medicine           string           `json:"medicine"`
	Priority           MedicinePriority `json:"priority"`
	Reason             string           `json:"reason"`
	PrecautionsForUser []string         `json:"precautionsForUser"`
}

// GeneratedPathway is the narrative result returned by the generative
// provider. It is merged with the deterministic verdict all-or-nothing; a
// partially parsed pathway is discarded.
type GeneratedPathway struct {
	UrgencyLevel            string                   `json:"urgencyLevel"`
	UrgencyExplanation      string                   `json:"urgencyExplanation"`
	SymptomExplanation      string                   `json:"symptomExplanation"`
	ImmediateActions        []PathwayStep            `json:"immediateActions"`
	PersonalizedAdvice      string                   `json:"personalizedAdvice"`
	RecoveryTimeline        string                   `json:"recoveryTimeline"`
	WhenToSeekHelp          []string                 `json:"whenToSeekHelp"`
	MedicineRecommendations []MedicineRecommendation `json:"medicineRecommendations"`
}

// ValidationError reports rejected input fields. It is surfaced to the
// caller immediately; no triage branch runs on invalid input.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// validateSeverity bounds the reported severity scale.
func validateSeverity(severity int) error {
	if severity < 1 || severity > 10 {
		return fmt.Errorf("severity must be between 1 and 10, got %d", severity)
	}
	return nil
}
