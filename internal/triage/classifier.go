package triage

import (
	"fmt"

	"health-advisor/internal/catalog"
)

// Classifier derives the urgency verdict from symptom weights, duration,
// severity and age band. Like the matcher it is pure and deterministic.
type Classifier struct {
	cat *catalog.Catalog
}

func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify walks the escalation ladder routine -> moderate -> urgent ->
// emergency. Transitions are monotonic within one pass: the verdict is the
// maximum tier reached, and the rationale names the specific symptom,
// severity value or duration that caused the final escalation.
func (c *Classifier) Classify(input TriageInput) UrgencyVerdict {
	tier := TierRoutine
	rationale := "No escalation criteria met; symptoms can usually be managed with self-care."
	var triggers []catalog.SymptomID

	escalate := func(to UrgencyTier, why string, symptomIDs ...catalog.SymptomID) {
		if to.Rank() < tier.Rank() {
			return
		}
		if to.Rank() == tier.Rank() {
			// Same tier reached again: collect the extra symptom but keep
			// the rationale of the first trigger.
			triggers = appendUnique(triggers, symptomIDs...)
			return
		}
		tier = to
		rationale = why
		triggers = appendUnique(nil, symptomIDs...)
	}

	if input.Severity >= 5 {
		escalate(TierModerate, fmt.Sprintf("Reported severity %d/10 suggests more than routine discomfort.", input.Severity))
	}
	if input.Duration.AtLeast(Duration4to7Days) {
		escalate(TierModerate, fmt.Sprintf("Symptoms lasting %s warrant closer attention.", input.Duration))
	}

	if input.Severity >= 8 {
		escalate(TierUrgent, fmt.Sprintf("Reported severity %d/10 indicates significant distress.", input.Severity))
	}
	for _, id := range input.Symptoms {
		entry, ok := c.cat.Symptom(id)
		if !ok {
			continue
		}
		if entry.Weight == catalog.WeightHigh {
			escalate(TierUrgent, fmt.Sprintf("%s is a high-urgency symptom that should be assessed promptly.", entry.Name), id)
		}
	}
	if input.Duration.AtLeast(DurationOver2Wks) && input.Severity >= 4 {
		escalate(TierUrgent, fmt.Sprintf("Symptoms persisting %s at severity %d/10 need medical assessment.", input.Duration, input.Severity))
	}

	for _, id := range input.Symptoms {
		entry, ok := c.cat.Symptom(id)
		if !ok {
			continue
		}
		if entry.Weight == catalog.WeightEmergency {
			escalate(TierEmergency, fmt.Sprintf("%s is an emergency symptom; seek immediate medical help.", entry.Name), id)
		}
		if input.AgeBand.IsInfant() && entry.HighUrgencyForBand(input.AgeBand) {
			escalate(TierEmergency, fmt.Sprintf("%s in a baby this young is an emergency; contact emergency services now.", entry.Name), id)
		}
	}

	return newVerdict(tier, rationale, triggers)
}

func appendUnique(ids []catalog.SymptomID, extra ...catalog.SymptomID) []catalog.SymptomID {
	for _, id := range extra {
		dup := false
		for _, existing := range ids {
			if existing == id {
				dup = true
				break
			}
		}
		if !dup {
			ids = append(ids, id)
		}
	}
	return ids
}
