package triage

import (
	"errors"
	"testing"

	"health-advisor/internal/catalog"
)

func TestNewTriageInput_AcceptsBandAndNumericAge(t *testing.T) {
	cat := mustCatalog(t)

	cases := []struct {
		age  string
		want catalog.AgeBand
	}{
		{"infant", catalog.BandInfant},
		{"31-45", catalog.BandAdult2},
		{"0", catalog.BandInfant},
		{"7", catalog.BandChild},
		{"34", catalog.BandAdult2},
		{"72", catalog.BandSenior},
	}
	for _, tc := range cases {
		in, err := NewTriageInput(cat, tc.age, "", []string{"fever"}, "1-3 days", 3, "")
		if err != nil {
			t.Fatalf("age %q rejected: %v", tc.age, err)
		}
		if in.AgeBand != tc.want {
			t.Fatalf("age %q mapped to %s, want %s", tc.age, in.AgeBand, tc.want)
		}
	}
}

func TestNewTriageInput_RejectsUnknownSymptom(t *testing.T) {
	cat := mustCatalog(t)

	_, err := NewTriageInput(cat, "19-30", "", []string{"fever", "made_up_symptom"}, "1-3 days", 3, "")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for unknown symptom, got %v", err)
	}
}

func TestNewTriageInput_RejectsBadSeverityAndDuration(t *testing.T) {
	cat := mustCatalog(t)

	for _, severity := range []int{0, 11, -1} {
		if _, err := NewTriageInput(cat, "19-30", "", []string{"fever"}, "1-3 days", severity, ""); err == nil {
			t.Fatalf("severity %d should be rejected", severity)
		}
	}
	if _, err := NewTriageInput(cat, "19-30", "", []string{"fever"}, "sometime", 5, ""); err == nil {
		t.Fatal("unknown duration bucket should be rejected")
	}
}

func TestNewTriageInput_CollapsesDuplicatesPreservingOrder(t *testing.T) {
	cat := mustCatalog(t)

	in, err := NewTriageInput(cat, "19-30", "", []string{"cough", "fever", "cough", "Fever"}, "1-3 days", 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Symptoms) != 2 || in.Symptoms[0] != "cough" || in.Symptoms[1] != "fever" {
		t.Fatalf("expected deduplicated [cough fever], got %v", in.Symptoms)
	}
}

func TestNewTriageInput_RequiresSymptoms(t *testing.T) {
	cat := mustCatalog(t)
	if _, err := NewTriageInput(cat, "19-30", "", nil, "1-3 days", 3, ""); err == nil {
		t.Fatal("empty symptom list should be rejected")
	}
}
