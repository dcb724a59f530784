package genai

import (
	"context"
	"fmt"
	"time"

	"health-advisor/internal/triage"
)

// CatalogSummary carries the deterministic branch's matched catalog context
// into the prompt, so the provider can only elaborate on catalog-approved
// options instead of inventing its own.
type CatalogSummary struct {
	Medicines         []string
	HomeCare          []string
	Natural           []string
	EmergencySymptoms []string
}

// Turn is one prior conversational exchange included for context. The
// history window is bounded; oldest turns are discarded first.
type Turn struct {
	Role    string // "user" or "model"
	Content string
}

// Client generates a narrative care pathway for a triage input. The call is
// the only networked, fallible part of a triage request; implementations
// must not mutate catalogs or persist anything.
type Client interface {
	GeneratePathway(ctx context.Context, input triage.TriageInput, summary CatalogSummary, history []Turn) (*triage.GeneratedPathway, error)
}

// UpstreamError reports a non-2xx or malformed response from the provider.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return "upstream provider error: " + e.Message
}

// RateLimitedError reports that admission control denied the call before it
// was attempted.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("generative branch rate limited, retry after %s", e.RetryAfter)
}
