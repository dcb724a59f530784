package pathway

import (
	"fmt"

	"health-advisor/internal/catalog"
	"health-advisor/internal/triage"
)

// response.go assembles the outbound payloads from a merged result. The
// response is always syntactically complete: narrative fields fall back to
// rule-derived content when the generative branch did not contribute.

const antibioticNote = "Antibiotics only work against bacterial infections. They do not help with viral illnesses like colds or flu, and must never be taken without a prescription."

var emergencyActions = []string{
	"Call your local emergency number now",
	"Do not eat, drink or take any medication unless told to by emergency responders",
	"Stay with the person and keep them calm until help arrives",
	"If symptoms change, tell the emergency operator immediately",
}

var defaultSeekHelp = []string{
	"Symptoms get noticeably worse or new symptoms appear",
	"Fever above 39.5°C or lasting more than 3 days",
	"Difficulty breathing, chest pain or confusion at any point",
	"No improvement after the expected recovery period",
}

func buildClassifyResponse(cat *catalog.Catalog, result *CarePathwayResult) ClassifyResponse {
	verdict := result.Verdict
	resp := ClassifyResponse{
		Urgency:        TierColour(verdict.Tier),
		Title:          tierTitle(verdict.Tier),
		Explanation:    verdict.Rationale,
		AntibioticNote: antibioticNote,
		PossibleCauses: possibleCauses(cat, result.Input.Symptoms),
	}

	if verdict.Emergency {
		resp.Actions = emergencyActions
		return resp
	}

	var actions []string
	for _, m := range result.Match.HomeCare {
		actions = append(actions, m.Item.Name+": "+m.Item.Rationale)
	}
	switch verdict.Tier {
	case triage.TierUrgent:
		actions = append(actions, "Arrange to see a doctor within the next 24 hours")
	case triage.TierModerate:
		actions = append(actions, "If symptoms persist beyond a few days, book a doctor's appointment")
	default:
		actions = append(actions, "Rest and monitor; most routine symptoms settle on their own")
	}
	resp.Actions = actions
	return resp
}

func buildPathwayResponse(cat *catalog.Catalog, result *CarePathwayResult) PathwayResponse {
	var resp PathwayResponse
	if result.Generated != nil {
		gen := result.Generated
		resp = PathwayResponse{
			UrgencyLevel:            string(result.Verdict.Tier),
			UrgencyExplanation:      result.Verdict.Rationale,
			SymptomExplanation:      gen.SymptomExplanation,
			ImmediateActions:        gen.ImmediateActions,
			PersonalizedAdvice:      gen.PersonalizedAdvice,
			RecoveryTimeline:        gen.RecoveryTimeline,
			WhenToSeekHelp:          gen.WhenToSeekHelp,
			MedicineRecommendations: gen.MedicineRecommendations,
			Source:                  "hybrid",
		}
	} else {
		resp = rulePathwayResponse(cat, result)
	}

	resp.Warning = result.Warning
	if len(resp.WhenToSeekHelp) == 0 {
		resp.WhenToSeekHelp = defaultSeekHelp
	}

	// Emergency invariant: no self-medication, and every step foregrounds
	// contacting emergency services.
	if result.Verdict.Emergency {
		resp.MedicineRecommendations = []triage.MedicineRecommendation{}
		resp.ImmediateActions = emergencySteps()
		resp.PersonalizedAdvice = ""
		resp.RecoveryTimeline = "Follow the guidance of emergency responders and the treating clinicians."
		resp.WhenToSeekHelp = []string{"You should already be contacting emergency services now"}
	}
	if resp.MedicineRecommendations == nil {
		resp.MedicineRecommendations = []triage.MedicineRecommendation{}
	}
	return resp
}

// rulePathwayResponse fills the narrative fields from the deterministic
// branch alone.
func rulePathwayResponse(cat *catalog.Catalog, result *CarePathwayResult) PathwayResponse {
	verdict := result.Verdict

	explanation := "You reported: "
	for i, id := range result.Input.Symptoms {
		if entry, ok := cat.Symptom(id); ok {
			if i > 0 {
				explanation += ", "
			}
			explanation += entry.Name
		}
	}
	explanation += "."

	steps := ruleSteps(result)

	var meds []triage.MedicineRecommendation
	for i, m := range result.Match.Medicines {
		priority := triage.PriorityAlternative
		if i == 0 {
			priority = triage.PriorityPrimary
		}
		rec := triage.MedicineRecommendation{
			Medicine:           m.Item.Name,
			Priority:           priority,
			Reason:             m.Item.Rationale,
			PrecautionsForUser: append(append([]string{}, m.Item.Contraindications...), m.Item.Precautions...),
		}
		if dose, ok := m.Item.Dosage[result.Input.AgeBand]; ok {
			rec.Reason = fmt.Sprintf("%s Typical dose for your age band: %s.", rec.Reason, dose)
		}
		meds = append(meds, rec)
	}

	return PathwayResponse{
		UrgencyLevel:            string(verdict.Tier),
		UrgencyExplanation:      verdict.Rationale,
		SymptomExplanation:      explanation,
		ImmediateActions:        steps,
		RecoveryTimeline:        recoveryTimeline(verdict.Tier),
		MedicineRecommendations: meds,
		Source:                  "rules",
	}
}

func ruleSteps(result *CarePathwayResult) []triage.PathwayStep {
	if result.Verdict.Emergency {
		return emergencySteps()
	}

	var steps []triage.PathwayStep
	if len(result.Match.HomeCare) > 0 {
		var actions []string
		for _, m := range result.Match.HomeCare {
			actions = append(actions, m.Item.Name)
		}
		steps = append(steps, triage.PathwayStep{
			Title:       "Start home care",
			Timeframe:   "Now",
			Description: "Simple measures that relieve your reported symptoms.",
			Actions:     actions,
		})
	}
	if len(result.Match.Natural) > 0 {
		var actions []string
		var warnings []string
		for _, m := range result.Match.Natural {
			actions = append(actions, m.Item.Name)
			warnings = append(warnings, m.Item.Contraindications...)
		}
		steps = append(steps, triage.PathwayStep{
			Title:       "Optional natural remedies",
			Timeframe:   "Today",
			Description: "Gentle additions if you tolerate them well.",
			Actions:     actions,
			Warnings:    warnings,
		})
	}
	steps = append(steps, triage.PathwayStep{
		Title:       "Monitor your symptoms",
		Timeframe:   "Next 48 hours",
		Description: "Track whether things improve, stay the same or get worse.",
		Actions:     []string{"Note your temperature and symptom severity twice a day"},
	})
	if result.Verdict.Tier == triage.TierUrgent {
		steps = append(steps, triage.PathwayStep{
			Title:       "See a doctor",
			Timeframe:   "Within 24 hours",
			Description: "Your symptoms should be assessed by a clinician promptly.",
			Actions:     []string{"Book an urgent appointment or visit an urgent care clinic"},
		})
	}

	for i := range steps {
		steps[i].Order = i + 1
	}
	return steps
}

func emergencySteps() []triage.PathwayStep {
	return []triage.PathwayStep{
		{
			Order:       1,
			Title:       "Call emergency services",
			Timeframe:   "Immediately",
			Description: "These symptoms need emergency medical care.",
			Actions:     emergencyActions,
		},
		{
			Order:       2,
			Title:       "While waiting for help",
			Timeframe:   "Until responders arrive",
			Description: "Stay on the line with the emergency operator.",
			Actions: []string{
				"Keep the person still and comfortable",
				"Unlock the door so responders can get in",
			},
			Warnings: []string{"Do not self-medicate; emergency responders need an accurate picture"},
		},
	}
}

func recoveryTimeline(tier triage.UrgencyTier) string {
	switch tier {
	case triage.TierRoutine:
		return "Most routine symptoms improve within 3-7 days with self-care."
	case triage.TierModerate:
		return "Expect gradual improvement over about a week; see a doctor if there is none."
	case triage.TierUrgent:
		return "Recovery depends on a clinician's assessment; do not wait it out at home."
	default:
		return "Follow the guidance of the treating clinicians."
	}
}

func possibleCauses(cat *catalog.Catalog, symptoms []catalog.SymptomID) []string {
	seen := make(map[string]bool)
	var causes []string
	for _, id := range symptoms {
		entry, ok := cat.Symptom(id)
		if !ok {
			continue
		}
		for _, cause := range entry.PossibleCauses {
			if seen[cause] {
				continue
			}
			seen[cause] = true
			causes = append(causes, cause)
		}
	}
	if len(causes) > 6 {
		causes = causes[:6]
	}
	return causes
}
