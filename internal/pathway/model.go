package pathway

import (
	"encoding/json"
	"strconv"
	"strings"

	"health-advisor/internal/triage"
)

// FlexString accepts either a JSON string or a JSON number, since clients
// send age both ways.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.Itoa(int(n)))
	return nil
}

// TriageRequest is the inbound payload shared by the classify and pathway
// endpoints.
type TriageRequest struct {
	Age       FlexString `json:"age"`
	Gender    string     `json:"gender"`
	Symptoms  []string   `json:"symptoms"`
	Duration  string     `json:"duration"`
	Severity  int        `json:"severity"`
	Caregiver string     `json:"caregiver,omitempty"`
}

// ClassifyResponse is the deterministic rule-classification payload, exposed
// on the public three-colour scale.
type ClassifyResponse struct {
	Urgency        string   `json:"urgency"`
	Title          string   `json:"title"`
	Explanation    string   `json:"explanation"`
	Actions        []string `json:"actions"`
	AntibioticNote string   `json:"antibioticNote"`
	PossibleCauses []string `json:"possibleCauses"`
}

// PathwayResponse is the rich care-pathway payload. It is always complete:
// when the generative branch fails, the narrative fields are filled from the
// deterministic branch and Warning explains the degradation.
type PathwayResponse struct {
	UrgencyLevel            string                          `json:"urgencyLevel"`
	UrgencyExplanation      string                          `json:"urgencyExplanation"`
	SymptomExplanation      string                          `json:"symptomExplanation"`
	ImmediateActions        []triage.PathwayStep            `json:"immediateActions"`
	PersonalizedAdvice      string                          `json:"personalizedAdvice,omitempty"`
	RecoveryTimeline        string                          `json:"recoveryTimeline"`
	WhenToSeekHelp          []string                        `json:"whenToSeekHelp"`
	MedicineRecommendations []triage.MedicineRecommendation `json:"medicineRecommendations"`
	Source                  string                          `json:"source"`
	Warning                 string                          `json:"warning,omitempty"`
}

// CarePathwayResult is the orchestrator's merged result: always the
// deterministic verdict and matcher output, plus the generated narrative
// when the generative branch succeeded in time.
type CarePathwayResult struct {
	Input     triage.TriageInput
	Verdict   triage.UrgencyVerdict
	Match     triage.MatchResult
	Generated *triage.GeneratedPathway
	RuleOnly  bool
	Warning   string
}

// TierColour maps the canonical four-tier scale onto the public
// green/amber/red scale. Both urgent and emergency map to red; the emergency
// flag still travels separately on the verdict.
func TierColour(t triage.UrgencyTier) string {
	switch t {
	case triage.TierRoutine:
		return "green"
	case triage.TierModerate:
		return "amber"
	case triage.TierUrgent, triage.TierEmergency:
		return "red"
	}
	return "amber"
}

func tierTitle(t triage.UrgencyTier) string {
	switch t {
	case triage.TierRoutine:
		return "Self-care should be enough"
	case triage.TierModerate:
		return "Keep an eye on it"
	case triage.TierUrgent:
		return "See a doctor soon"
	case triage.TierEmergency:
		return "Emergency - get help now"
	}
	return "Check with a doctor"
}
