package pathway

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"health-advisor/internal/catalog"
	"health-advisor/internal/genai"
	"health-advisor/internal/history"
	"health-advisor/internal/ratelimit"
	"health-advisor/internal/triage"
)

// User-visible degradation notices. The deterministic result is always
// returned; these only explain why the narrative part is missing.
const (
	warnServiceUnavailable = "serviceUnavailable: personalized guidance is not configured, showing standard guidance"
	warnRateLimited        = "personalized guidance is temporarily rate limited, showing standard guidance"
	warnTimeout            = "personalized guidance timed out, showing standard guidance"
	warnUpstream           = "personalized guidance unavailable, showing standard guidance"
)

// AlertNotifier is told about forced emergency escalations so the on-call
// channel can review them. Implementations must be non-blocking friendly;
// the orchestrator calls it fire-and-forget.
type AlertNotifier interface {
	EscalationForced(ctx context.Context, keyword string, symptoms []string) error
}

// Service is the hybrid orchestrator: it runs the deterministic
// matcher/classifier branch inline, races the generative branch against a
// deadline, and applies the safety gate as the final veto before a result is
// returned.
type Service struct {
	cat        *catalog.Catalog
	matcher    *triage.Matcher
	classifier *triage.Classifier
	gen        genai.Client // nil when no credential is configured
	limiter    *ratelimit.Limiter
	repo       history.Repository // nil when persistence is disabled
	alerts     AlertNotifier      // nil when alerting is disabled
	genTimeout time.Duration
}

func NewService(cat *catalog.Catalog, gen genai.Client, limiter *ratelimit.Limiter, repo history.Repository, alerts AlertNotifier, genTimeout time.Duration) *Service {
	if genTimeout <= 0 {
		genTimeout = 8 * time.Second
	}
	return &Service{
		cat:        cat,
		matcher:    triage.NewMatcher(cat),
		classifier: triage.NewClassifier(cat),
		gen:        gen,
		limiter:    limiter,
		repo:       repo,
		alerts:     alerts,
		genTimeout: genTimeout,
	}
}

// Catalog exposes the loaded catalog for the symptom-listing handler.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// Classify runs the deterministic branch only: validate, match, classify,
// then the safety gate. It is pure computation over static data and has no
// failure mode beyond invalid input.
func (s *Service) Classify(ctx context.Context, req TriageRequest) (*CarePathwayResult, error) {
	input, err := triage.NewTriageInput(s.cat, string(req.Age), req.Gender, req.Symptoms, req.Duration, req.Severity, req.Caregiver)
	if err != nil {
		return nil, err
	}

	match := s.matcher.Match(input.Symptoms)
	verdict := s.classifier.Classify(input)
	verdict, _, keyword := triage.Guard(req.Symptoms, verdict, nil)
	if keyword != "" {
		s.reportOverride(keyword, req.Symptoms)
	}

	return &CarePathwayResult{Input: input, Verdict: verdict, Match: match, RuleOnly: true}, nil
}

type genOutcome struct {
	pathway *triage.GeneratedPathway
	err     error
}

// Synthesize is the full hybrid call. The generative branch may fail or run
// out of time; the deterministic branch's result is never blocked or
// discarded because of it, and no partial generative output is ever merged.
func (s *Service) Synthesize(ctx context.Context, req TriageRequest, clientKey string) (*CarePathwayResult, error) {
	input, err := triage.NewTriageInput(s.cat, string(req.Age), req.Gender, req.Symptoms, req.Duration, req.Severity, req.Caregiver)
	if err != nil {
		return nil, err
	}

	// Deterministic branch: in-process, effectively constant latency, so it
	// runs inline while the generative branch is in flight.
	match := s.matcher.Match(input.Symptoms)
	ch, genErr := s.dispatchGenerative(ctx, input, match, clientKey)
	verdict := s.classifier.Classify(input)

	result := &CarePathwayResult{Input: input, Verdict: verdict, Match: match, RuleOnly: true}

	switch {
	case genErr != nil:
		result.Warning = warningFor(genErr)
	case ch != nil:
		// Bounded join. The channel is buffered, so an abandoned branch
		// can still complete and be collected by the runtime.
		select {
		case out := <-ch:
			if out.err != nil {
				result.Warning = warningFor(out.err)
				log.Printf("generative branch failed: %v", out.err)
			} else {
				result.Generated = out.pathway
				result.RuleOnly = false
			}
		case <-ctx.Done():
			result.Warning = warningFor(context.DeadlineExceeded)
		}
	default:
		result.Warning = warnServiceUnavailable
	}

	// Safety gate: last step before the result is returned, can override
	// both branches, never downgrades.
	var keyword string
	result.Verdict, result.Generated, keyword = triage.Guard(req.Symptoms, result.Verdict, result.Generated)
	if keyword != "" {
		s.reportOverride(keyword, req.Symptoms)
	}

	s.saveCheck(req, result, clientKey)
	return result, nil
}

// dispatchGenerative admits the call through the rate limiter and starts it
// with its own deadline. A nil channel plus nil error means the provider is
// not configured at all.
func (s *Service) dispatchGenerative(ctx context.Context, input triage.TriageInput, match triage.MatchResult, clientKey string) (<-chan genOutcome, error) {
	if s.gen == nil {
		return nil, nil
	}
	if ok, retryAfter := s.limiter.Allow(clientKey); !ok {
		return nil, &genai.RateLimitedError{RetryAfter: retryAfter}
	}

	summary := genai.CatalogSummary{}
	for _, m := range match.Medicines {
		summary.Medicines = append(summary.Medicines, describeMedicine(m.Item, input.AgeBand))
	}
	for _, m := range match.HomeCare {
		summary.HomeCare = append(summary.HomeCare, m.Item.Name)
	}
	for _, m := range match.Natural {
		summary.Natural = append(summary.Natural, m.Item.Name)
	}
	for _, id := range match.EmergencySymptoms {
		summary.EmergencySymptoms = append(summary.EmergencySymptoms, string(id))
	}

	ch := make(chan genOutcome, 1)
	go func() {
		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		defer cancel()
		p, err := s.gen.GeneratePathway(genCtx, input, summary, nil)
		ch <- genOutcome{pathway: p, err: err}
	}()
	return ch, nil
}

func describeMedicine(item catalog.RecommendationItem, band catalog.AgeBand) string {
	if dose, ok := item.Dosage[band]; ok {
		return item.Name + " (" + dose + ")"
	}
	return item.Name
}

// warningFor maps a generative-branch failure onto the user-visible notice.
// These failures are logged but never surfaced to the caller as errors.
func warningFor(err error) string {
	var rateErr *genai.RateLimitedError
	if errors.As(err, &rateErr) {
		return warnRateLimited
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return warnTimeout
	}
	return warnUpstream
}

// IsRateLimited reports whether the degradation notice on a result came from
// admission control, so the handler can attach the Retry-After hint.
func IsRateLimited(result *CarePathwayResult) bool {
	return result != nil && result.Warning == warnRateLimited
}

// reportOverride logs the forced escalation distinctly from an ordinary
// classification and notifies the on-call channel.
func (s *Service) reportOverride(keyword string, symptoms []string) {
	log.Printf("SAFETY OVERRIDE: keyword %q forced emergency tier (symptoms: %v)", keyword, symptoms)
	if s.alerts == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.alerts.EscalationForced(ctx, keyword, symptoms); err != nil {
			log.Printf("failed to send escalation alert: %v", err)
		}
	}()
}

// saveCheck persists the completed check off the request path. Persistence
// is best-effort; the engine runs fine without a database.
func (s *Service) saveCheck(req TriageRequest, result *CarePathwayResult, clientKey string) {
	if s.repo == nil {
		return
	}
	inputJSON, err := json.Marshal(req)
	if err != nil {
		log.Printf("failed to encode triage input for history: %v", err)
		return
	}
	rec := &history.CheckRecord{
		ClientKey: clientKey,
		Input:     inputJSON,
		Tier:      string(result.Verdict.Tier),
		RuleOnly:  result.RuleOnly,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveCheck(ctx, rec); err != nil {
			log.Printf("failed to save triage check: %v", err)
		}
	}()
}
