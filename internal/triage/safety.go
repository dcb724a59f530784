package triage

import (
	"fmt"
	"strings"
)

// emergencyKeywords is the fixed scan list for the safety gate. Matching is
// case-insensitive substring matching over the raw symptom text, so free-text
// labels like "crushing chest pain" still trip the gate.
var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"can't breathe",
	"cannot breathe",
	"shortness of breath",
	"unconscious",
	"unresponsive",
	"severe bleeding",
	"stroke",
	"seizure",
	"convulsion",
	"self-harm",
	"suicide",
	"overdose",
	"anaphylaxis",
	"choking",
}

// Guard is the final, one-directional safety veto. It scans the raw symptom
// text against the emergency keyword list and, on a match, forces the
// emergency tier and strips all self-medication guidance from the generated
// narrative. It never downgrades a verdict.
//
// The returned keyword is non-empty only when the gate escalated, so callers
// can log the override distinctly from an ordinary classification.
func Guard(rawSymptoms []string, verdict UrgencyVerdict, generated *GeneratedPathway) (UrgencyVerdict, *GeneratedPathway, string) {
	matched := scanKeywords(rawSymptoms)

	if matched != "" && verdict.Tier != TierEmergency {
		verdict = newVerdict(
			TierEmergency,
			fmt.Sprintf("Safety override: %q indicates a potential emergency. Call emergency services immediately.", matched),
			verdict.TriggeringSymptoms,
		)
	}

	if verdict.Tier == TierEmergency && generated != nil {
		generated = stripSelfMedication(generated)
	}

	if matched != "" {
		return verdict, generated, matched
	}
	return verdict, generated, ""
}

func scanKeywords(rawSymptoms []string) string {
	for _, raw := range rawSymptoms {
		text := strings.ToLower(strings.ReplaceAll(raw, "_", " "))
		for _, keyword := range emergencyKeywords {
			if strings.Contains(text, keyword) {
				return keyword
			}
		}
	}
	return ""
}

// stripSelfMedication removes medicine recommendations and dosage wording
// from a generated pathway once the emergency tier is signalled. The input
// is not mutated; a cleaned copy is returned.
func stripSelfMedication(gen *GeneratedPathway) *GeneratedPathway {
	out := *gen
	out.MedicineRecommendations = nil

	out.ImmediateActions = make([]PathwayStep, 0, len(gen.ImmediateActions))
	for _, step := range gen.ImmediateActions {
		cleaned := step
		cleaned.Actions = dropDosageLines(step.Actions)
		out.ImmediateActions = append(out.ImmediateActions, cleaned)
	}
	out.PersonalizedAdvice = ""
	return &out
}

var dosageMarkers = []string{"mg", "dose", "dosage", "tablet", "take ", "every 4", "every 6", "every 8"}

func dropDosageLines(actions []string) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		lower := strings.ToLower(a)
		hasDosage := false
		for _, marker := range dosageMarkers {
			if strings.Contains(lower, marker) {
				hasDosage = true
				break
			}
		}
		if !hasDosage {
			out = append(out, a)
		}
	}
	return out
}
