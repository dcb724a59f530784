package triage

import (
	"reflect"
	"strings"
	"testing"

	"health-advisor/internal/catalog"
)

func input(band catalog.AgeBand, symptoms []catalog.SymptomID, duration DurationBucket, severity int) TriageInput {
	return TriageInput{
		AgeBand:  band,
		Symptoms: symptoms,
		Duration: duration,
		Severity: severity,
	}
}

func TestClassify_RoutineCold(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandAdult2, []catalog.SymptomID{"common_cold"}, Duration1to3Days, 2))
	if verdict.Tier != TierRoutine {
		t.Fatalf("expected routine tier, got %+v", verdict)
	}
	if verdict.Emergency {
		t.Fatalf("routine verdict must not carry the emergency flag: %+v", verdict)
	}
}

func TestClassify_SeverityEscalatesToModerate(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandAdult1, []catalog.SymptomID{"headache"}, Duration1to3Days, 5))
	if verdict.Tier != TierModerate {
		t.Fatalf("severity 5 should escalate to moderate, got %+v", verdict)
	}
	if !strings.Contains(verdict.Rationale, "5/10") {
		t.Fatalf("rationale should name the severity that triggered escalation, got %q", verdict.Rationale)
	}
}

func TestClassify_DurationEscalatesToModerate(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandAdult1, []catalog.SymptomID{"cough"}, Duration4to7Days, 2))
	if verdict.Tier != TierModerate {
		t.Fatalf("4-7 day duration should escalate to moderate, got %+v", verdict)
	}
}

func TestClassify_HighWeightSymptomIsUrgent(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandAdult3, []catalog.SymptomID{"stiff_neck"}, DurationUnderDay, 3))
	if verdict.Tier != TierUrgent {
		t.Fatalf("high-weight symptom should classify urgent, got %+v", verdict)
	}
	if len(verdict.TriggeringSymptoms) == 0 || verdict.TriggeringSymptoms[0] != "stiff_neck" {
		t.Fatalf("triggering symptoms should name stiff_neck, got %v", verdict.TriggeringSymptoms)
	}
}

func TestClassify_ChronicWithSeverityIsUrgent(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandSenior, []catalog.SymptomID{"fatigue"}, DurationChronic, 4))
	if verdict.Tier != TierUrgent {
		t.Fatalf("chronic duration with severity 4 should be urgent, got %+v", verdict)
	}
}

func TestClassify_EmergencySymptomWins(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandAdult1, []catalog.SymptomID{"common_cold", "chest_pain"}, DurationUnderDay, 1))
	if verdict.Tier != TierEmergency || !verdict.Emergency {
		t.Fatalf("emergency-weight symptom must force the emergency tier, got %+v", verdict)
	}
}

func TestClassify_InfantWithBreathingTrouble(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	verdict := c.Classify(input(catalog.BandInfant, []catalog.SymptomID{"difficulty_breathing"}, DurationUnderDay, 8))
	if verdict.Tier != TierEmergency {
		t.Fatalf("infant with difficulty_breathing must be emergency, got %+v", verdict)
	}
}

func TestClassify_InfantFeverIsEmergency(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	// Fever is only medium weight, but it is tagged high-urgency for the
	// infant bands, which combined with the infant age band forces
	// emergency.
	verdict := c.Classify(input(catalog.BandInfant, []catalog.SymptomID{"fever"}, DurationUnderDay, 3))
	if verdict.Tier != TierEmergency {
		t.Fatalf("fever in an infant must classify as emergency, got %+v", verdict)
	}
	adult := c.Classify(input(catalog.BandAdult1, []catalog.SymptomID{"fever"}, DurationUnderDay, 3))
	if adult.Tier == TierEmergency {
		t.Fatalf("fever in an adult must not be emergency, got %+v", adult)
	}
}

func TestClassify_MonotonicInSeverity(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	prev := 0
	for severity := 1; severity <= 10; severity++ {
		verdict := c.Classify(input(catalog.BandAdult2, []catalog.SymptomID{"headache", "fever"}, Duration1to3Days, severity))
		if verdict.Tier.Rank() < prev {
			t.Fatalf("tier decreased when severity rose to %d: %+v", severity, verdict)
		}
		prev = verdict.Tier.Rank()
	}
}

func TestClassify_IsIdempotent(t *testing.T) {
	c := NewClassifier(mustCatalog(t))
	in := input(catalog.BandChild, []catalog.SymptomID{"fever", "cough"}, Duration4to7Days, 6)

	first := c.Classify(in)
	second := c.Classify(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Classify is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestClassify_EmergencyFlagConsistency(t *testing.T) {
	c := NewClassifier(mustCatalog(t))

	cases := []TriageInput{
		input(catalog.BandAdult1, []catalog.SymptomID{"common_cold"}, Duration1to3Days, 2),
		input(catalog.BandAdult1, []catalog.SymptomID{"stiff_neck"}, DurationUnderDay, 9),
		input(catalog.BandInfant, []catalog.SymptomID{"difficulty_breathing"}, DurationUnderDay, 8),
	}
	for _, in := range cases {
		verdict := c.Classify(in)
		if verdict.Emergency != (verdict.Tier == TierEmergency) {
			t.Fatalf("emergency flag out of sync with tier: %+v", verdict)
		}
	}
}
