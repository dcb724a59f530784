package catalog

import (
	"strings"
	"testing"
)

func TestLoad_SeedDataIsValid(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("seed catalog failed integrity validation: %v", err)
	}
	if len(cat.Symptoms()) == 0 || len(cat.Items()) == 0 {
		t.Fatalf("seed catalog unexpectedly empty: %d symptoms, %d items", len(cat.Symptoms()), len(cat.Items()))
	}
}

func TestBuild_RejectsUnknownTriggerSymptom(t *testing.T) {
	symptoms := []SymptomEntry{{ID: "cough", Name: "Cough", Weight: WeightLow}}
	items := []RecommendationItem{{
		ID:          "syrup",
		Kind:        KindMedicine,
		Name:        "Cough syrup",
		Triggers:    []SymptomID{"cough", "nonexistent"},
		Precautions: []string{"Read the label"},
	}}

	_, err := build("test", symptoms, items)
	if err == nil {
		t.Fatal("expected integrity error for unknown trigger symptom")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Fatalf("error should name the unknown symptom, got: %v", err)
	}
}

func TestBuild_RejectsItemWithoutTriggers(t *testing.T) {
	items := []RecommendationItem{{
		ID:          "orphan",
		Kind:        KindHomeRemedy,
		Name:        "Orphan remedy",
		Precautions: []string{"n/a"},
	}}
	if _, err := build("test", nil, items); err == nil {
		t.Fatal("expected integrity error for item with no triggers")
	}
}

func TestBuild_RejectsItemWithoutSafetyInfo(t *testing.T) {
	symptoms := []SymptomEntry{{ID: "cough", Name: "Cough", Weight: WeightLow}}
	items := []RecommendationItem{{
		ID:       "bare",
		Kind:     KindNaturalRemedy,
		Name:     "Bare remedy",
		Triggers: []SymptomID{"cough"},
	}}
	if _, err := build("test", symptoms, items); err == nil {
		t.Fatal("expected integrity error for item without contraindications or precautions")
	}
}

func TestBuild_CollectsAllViolations(t *testing.T) {
	items := []RecommendationItem{
		{ID: "a", Kind: KindMedicine, Name: "A"},
		{ID: "a", Kind: KindMedicine, Name: "A again", Triggers: []SymptomID{"ghost"}, Precautions: []string{"x"}},
	}
	_, err := build("test", nil, items)
	if err == nil {
		t.Fatal("expected integrity errors")
	}
	msg := err.Error()
	for _, want := range []string{"no trigger", "duplicate recommendation"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected combined error to mention %q, got: %v", want, err)
		}
	}
}

func TestAgeBand_IsInfant(t *testing.T) {
	for band, want := range map[AgeBand]bool{
		BandNewborn: true,
		BandInfant:  true,
		BandToddler: false,
		BandAdult2:  false,
	} {
		if got := band.IsInfant(); got != want {
			t.Fatalf("IsInfant(%s) = %v, want %v", band, got, want)
		}
	}
}
