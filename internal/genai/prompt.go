package genai

import (
	"fmt"
	"strings"

	"health-advisor/internal/catalog"
	"health-advisor/internal/triage"
)

// prompt.go builds the safety-constrained instruction sent to the generation
// provider. Keeping the prompt text here makes it easy to tune without
// touching the transport code.

// maxHistoryTurns bounds the conversational context sent upstream. Older
// turns are discarded first.
const maxHistoryTurns = 6

const systemInstructionBase = `You are a cautious health-information assistant. You are NOT a doctor and you must never assert a diagnosis.

Hard rules:
- Never state or imply a diagnosis; describe possibilities only in general terms.
- Only mention medicines from the approved list provided in the user message, with their listed dosage ranges. Never invent medicines or dosages.
- If any symptom could indicate an emergency, the first action must always be to contact local emergency services.
- Always include clear "seek help if" escalation criteria.
- Keep language plain and non-alarming.

Respond with a single JSON object and nothing else, using exactly this schema:
{"urgencyLevel": string, "urgencyExplanation": string, "symptomExplanation": string, "immediateActions": [{"order": int, "title": string, "timeframe": string, "description": string, "actions": [string], "warnings": [string]}], "personalizedAdvice": string, "recoveryTimeline": string, "whenToSeekHelp": [string], "medicineRecommendations": [{"medicine": string, "priority": "primary"|"alternative", "reason": string, "precautionsForUser": [string]}]}`

// buildSystemInstruction parameterises the base instruction by age band and,
// when present, the caregiver relationship tag.
func buildSystemInstruction(ageBand catalog.AgeBand, caregiverTag string) string {
	var b strings.Builder
	b.WriteString(systemInstructionBase)
	b.WriteString("\n\nThe person affected is in the ")
	b.WriteString(string(ageBand))
	b.WriteString(" age band; tailor wording and any medicine mentions to that age.")
	if ageBand.IsInfant() {
		b.WriteString(" Be especially conservative: babies this young should be seen by a clinician for almost any concerning symptom.")
	}
	if caregiverTag != "" {
		fmt.Fprintf(&b, "\nYou are speaking to the person's %s, not the patient directly; address them accordingly.", caregiverTag)
	}
	return b.String()
}

// buildUserPrompt renders the triage input and matched catalog context into
// the user message.
func buildUserPrompt(input triage.TriageInput, summary CatalogSummary) string {
	var b strings.Builder
	b.WriteString("Symptoms reported: ")
	for i, id := range input.Symptoms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(id))
	}
	fmt.Fprintf(&b, "\nDuration: %s\nSelf-reported severity: %d/10\nAge band: %s\n", input.Duration, input.Severity, input.AgeBand)
	if input.Gender != "" {
		fmt.Fprintf(&b, "Gender: %s\n", input.Gender)
	}

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", label)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	writeList("Approved medicines (only these may be mentioned)", summary.Medicines)
	writeList("Approved home-care steps", summary.HomeCare)
	writeList("Approved natural remedies", summary.Natural)

	if len(summary.EmergencySymptoms) > 0 {
		fmt.Fprintf(&b, "\nWARNING: these reported symptoms are emergency-weight: %s. The pathway must foreground contacting emergency services and must not include self-medication.\n",
			strings.Join(summary.EmergencySymptoms, ", "))
	}

	b.WriteString("\nGenerate the care pathway JSON now.")
	return b.String()
}

// trimHistory keeps at most maxHistoryTurns of prior context, newest last.
func trimHistory(history []Turn) []Turn {
	if len(history) <= maxHistoryTurns {
		return history
	}
	return history[len(history)-maxHistoryTurns:]
}
