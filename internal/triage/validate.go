package triage

import (
	"fmt"
	"strconv"
	"strings"

	"health-advisor/internal/catalog"
)

// NewTriageInput validates raw request fields against the catalog and builds
// an immutable TriageInput. Symptom identifiers are a closed set: any
// identifier absent from the catalog rejects the whole request rather than
// being silently dropped.
func NewTriageInput(cat *catalog.Catalog, age, gender string, symptoms []string, duration string, severity int, caregiverTag string) (TriageInput, error) {
	var details []string

	band, err := parseAgeBand(age)
	if err != nil {
		details = append(details, err.Error())
	}

	if err := validateSeverity(severity); err != nil {
		details = append(details, err.Error())
	}

	bucket := DurationBucket(strings.TrimSpace(duration))
	if bucket.rank() == 0 {
		details = append(details, fmt.Sprintf("unknown duration %q", duration))
	}

	if len(symptoms) == 0 {
		details = append(details, "at least one symptom is required")
	}

	// Collapse duplicates, preserve first-seen order for display.
	seen := make(map[catalog.SymptomID]bool, len(symptoms))
	ids := make([]catalog.SymptomID, 0, len(symptoms))
	for _, raw := range symptoms {
		id := catalog.SymptomID(strings.TrimSpace(strings.ToLower(raw)))
		if id == "" || seen[id] {
			continue
		}
		if _, ok := cat.Symptom(id); !ok {
			details = append(details, fmt.Sprintf("unknown symptom %q", raw))
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(details) > 0 {
		return TriageInput{}, &ValidationError{Details: details}
	}

	return TriageInput{
		AgeBand:      band,
		Gender:       strings.TrimSpace(gender),
		Symptoms:     ids,
		Duration:     bucket,
		Severity:     severity,
		CaregiverTag: strings.TrimSpace(caregiverTag),
	}, nil
}

// parseAgeBand accepts either a named band ("infant", "31-45") or a numeric
// age in years.
func parseAgeBand(age string) (catalog.AgeBand, error) {
	trimmed := strings.TrimSpace(strings.ToLower(age))
	if trimmed == "" {
		return "", fmt.Errorf("age is required")
	}

	switch catalog.AgeBand(trimmed) {
	case catalog.BandNewborn, catalog.BandInfant, catalog.BandToddler, catalog.BandChild,
		catalog.BandTeen, catalog.BandAdult1, catalog.BandAdult2, catalog.BandAdult3, catalog.BandSenior:
		return catalog.AgeBand(trimmed), nil
	}

	years, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("unknown age band %q", age)
	}
	return bandForYears(years)
}

func bandForYears(years int) (catalog.AgeBand, error) {
	switch {
	case years < 0 || years > 130:
		return "", fmt.Errorf("age %d out of range", years)
	case years < 1:
		return catalog.BandInfant, nil
	case years <= 3:
		return catalog.BandToddler, nil
	case years <= 12:
		return catalog.BandChild, nil
	case years <= 18:
		return catalog.BandTeen, nil
	case years <= 30:
		return catalog.BandAdult1, nil
	case years <= 45:
		return catalog.BandAdult2, nil
	case years <= 60:
		return catalog.BandAdult3, nil
	default:
		return catalog.BandSenior, nil
	}
}
