package pathway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"health-advisor/internal/catalog"
	"health-advisor/internal/genai"
	"health-advisor/internal/history"
	"health-advisor/internal/ratelimit"
	"health-advisor/internal/triage"
)

// fakeGen lets each test script the generative branch.
type fakeGen struct {
	fn func(ctx context.Context) (*triage.GeneratedPathway, error)
}

func (f *fakeGen) GeneratePathway(ctx context.Context, input triage.TriageInput, summary genai.CatalogSummary, history []genai.Turn) (*triage.GeneratedPathway, error) {
	return f.fn(ctx)
}

func successGen() *fakeGen {
	return &fakeGen{fn: func(ctx context.Context) (*triage.GeneratedPathway, error) {
		return &triage.GeneratedPathway{
			UrgencyLevel:       "routine",
			SymptomExplanation: "A mild viral infection is most likely.",
			ImmediateActions: []triage.PathwayStep{
				{Order: 1, Title: "Rest", Timeframe: "Today", Description: "Take it easy.", Actions: []string{"Sleep"}},
			},
			PersonalizedAdvice: "Drink warm fluids through the day.",
			RecoveryTimeline:   "A few days to a week.",
			WhenToSeekHelp:     []string{"Fever above 39C"},
			MedicineRecommendations: []triage.MedicineRecommendation{
				{Medicine: "Paracetamol", Priority: triage.PriorityPrimary, Reason: "Relieves fever."},
			},
		}, nil
	}}
}

func failingGen(err error) *fakeGen {
	return &fakeGen{fn: func(ctx context.Context) (*triage.GeneratedPathway, error) {
		return nil, err
	}}
}

// blockingGen waits out its context, the way a stalled upstream would.
func blockingGen() *fakeGen {
	return &fakeGen{fn: func(ctx context.Context) (*triage.GeneratedPathway, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
}

func mustLoad(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func newTestService(t *testing.T, gen genai.Client) *Service {
	t.Helper()
	return NewService(mustLoad(t), gen, ratelimit.NewLimiter(ratelimit.DefaultLimit, ratelimit.DefaultWindow), nil, nil, time.Second)
}

func coldRequest() TriageRequest {
	return TriageRequest{
		Age:      "31-45",
		Symptoms: []string{"common_cold", "runny_nose"},
		Duration: "1-3 days",
		Severity: 2,
	}
}

func TestSynthesize_RoutineColdScenario(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if result.Verdict.Tier != triage.TierRoutine {
		t.Errorf("tier = %s, want routine", result.Verdict.Tier)
	}
	if result.Verdict.Emergency {
		t.Error("routine cold must not be flagged as emergency")
	}
	if len(result.Match.HomeCare) == 0 {
		t.Error("expected home-care suggestions for a cold")
	}
	if len(result.Match.EmergencySymptoms) != 0 {
		t.Errorf("unexpected emergency symptoms: %v", result.Match.EmergencySymptoms)
	}
}

func TestSynthesize_NilProviderDegradesWithNotice(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !result.RuleOnly {
		t.Error("result must be rule-only without a provider")
	}
	if result.Warning != warnServiceUnavailable {
		t.Errorf("warning = %q, want the service-unavailable notice", result.Warning)
	}
}

func TestSynthesize_UpstreamFailureFallsBackToRules(t *testing.T) {
	svc := newTestService(t, failingGen(&genai.UpstreamError{StatusCode: http.StatusInternalServerError, Message: "boom"}))

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("a generative failure must never fail the request: %v", err)
	}
	if !result.RuleOnly || result.Generated != nil {
		t.Error("failed generative branch must leave a rule-only result")
	}
	if result.Warning != warnUpstream {
		t.Errorf("warning = %q, want the upstream notice", result.Warning)
	}
	if result.Verdict.Tier == "" || len(result.Match.HomeCare) == 0 {
		t.Error("deterministic fields must still be populated")
	}
}

func TestSynthesize_TimeoutFallsBackToRules(t *testing.T) {
	svc := NewService(mustLoad(t), blockingGen(), ratelimit.NewLimiter(5, time.Minute), nil, nil, 20*time.Millisecond)

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !result.RuleOnly {
		t.Error("timed-out generative branch must leave a rule-only result")
	}
	if result.Warning != warnTimeout {
		t.Errorf("warning = %q, want the timeout notice", result.Warning)
	}
}

func TestSynthesize_MergesGeneratedPathway(t *testing.T) {
	svc := newTestService(t, successGen())

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if result.RuleOnly {
		t.Error("successful generative branch should clear RuleOnly")
	}
	if result.Generated == nil || result.Generated.PersonalizedAdvice == "" {
		t.Error("generated pathway missing from merged result")
	}
	if result.Warning != "" {
		t.Errorf("unexpected warning %q", result.Warning)
	}
}

func TestSynthesize_RateLimitDegradesNotDenies(t *testing.T) {
	svc := NewService(mustLoad(t), successGen(), ratelimit.NewLimiter(1, time.Minute), nil, nil, time.Second)

	first, err := svc.Synthesize(context.Background(), coldRequest(), "key")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.RuleOnly {
		t.Error("first call should be admitted to the generative branch")
	}

	second, err := svc.Synthesize(context.Background(), coldRequest(), "key")
	if err != nil {
		t.Fatalf("rate-limited call must still succeed: %v", err)
	}
	if !second.RuleOnly {
		t.Error("rate-limited call must fall back to rules")
	}
	if second.Warning != warnRateLimited {
		t.Errorf("warning = %q, want the rate-limit notice", second.Warning)
	}
	if !IsRateLimited(second) {
		t.Error("IsRateLimited should report the degradation")
	}

	other, err := svc.Synthesize(context.Background(), coldRequest(), "other-key")
	if err != nil {
		t.Fatalf("other key: %v", err)
	}
	if other.RuleOnly {
		t.Error("admission is per key; a different key should be admitted")
	}
}

func TestSynthesize_InfantBreathingIsEmergency(t *testing.T) {
	svc := newTestService(t, successGen())

	result, err := svc.Synthesize(context.Background(), TriageRequest{
		Age:       "infant",
		Symptoms:  []string{"difficulty_breathing", "fever"},
		Duration:  "<24h",
		Severity:  6,
		Caregiver: "parent",
	}, "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if result.Verdict.Tier != triage.TierEmergency || !result.Verdict.Emergency {
		t.Fatalf("verdict = %+v, want emergency", result.Verdict)
	}
	if result.Generated != nil && len(result.Generated.MedicineRecommendations) != 0 {
		t.Error("emergency result must not carry medicine recommendations")
	}

	resp := buildPathwayResponse(svc.Catalog(), result)
	if len(resp.MedicineRecommendations) != 0 {
		t.Error("emergency response must not recommend medicines")
	}
	if len(resp.ImmediateActions) == 0 || resp.ImmediateActions[0].Title != "Call emergency services" {
		t.Errorf("emergency response must foreground emergency services, got %+v", resp.ImmediateActions)
	}
}

func TestSynthesize_KeywordOverrideUpgradesMergedResult(t *testing.T) {
	svc := newTestService(t, successGen())

	result, err := svc.Synthesize(context.Background(), TriageRequest{
		Age:      "19-30",
		Symptoms: []string{"chest_pain"},
		Duration: "<24h",
		Severity: 5,
	}, "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !result.Verdict.Emergency {
		t.Fatal("chest pain must escalate to emergency")
	}
	if result.Generated != nil && len(result.Generated.MedicineRecommendations) != 0 {
		t.Error("gate must strip self-medication from the generated pathway")
	}
}

// alertRecorder captures forced-escalation notifications.
type alertRecorder struct {
	got chan string
}

func (a *alertRecorder) EscalationForced(ctx context.Context, keyword string, symptoms []string) error {
	a.got <- keyword
	return nil
}

func TestClassify_NotifiesOnCallOnOverride(t *testing.T) {
	rec := &alertRecorder{got: make(chan string, 1)}
	svc := NewService(mustLoad(t), nil, ratelimit.NewLimiter(1, time.Minute), nil, rec, time.Second)

	result, err := svc.Classify(context.Background(), TriageRequest{
		Age:      "46-60",
		Symptoms: []string{"chest_pain", "dizziness"},
		Duration: "<24h",
		Severity: 7,
	})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !result.Verdict.Emergency {
		t.Fatal("expected emergency verdict")
	}

	select {
	case keyword := <-rec.got:
		if keyword != "chest pain" {
			t.Errorf("alert keyword = %q, want %q", keyword, "chest pain")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no escalation alert was sent")
	}
}

// recordingRepo captures the persisted check record.
type recordingRepo struct {
	saved chan *history.CheckRecord
}

func (r *recordingRepo) SaveCheck(ctx context.Context, rec *history.CheckRecord) error {
	r.saved <- rec
	return nil
}

func (r *recordingRepo) RecentChecks(ctx context.Context, clientKey string, limit int) ([]history.CheckRecord, error) {
	return nil, nil
}

func TestSynthesize_PersistsCheckOffRequestPath(t *testing.T) {
	repo := &recordingRepo{saved: make(chan *history.CheckRecord, 1)}
	svc := NewService(mustLoad(t), nil, ratelimit.NewLimiter(1, time.Minute), repo, nil, time.Second)

	if _, err := svc.Synthesize(context.Background(), coldRequest(), "203.0.113.9"); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	select {
	case rec := <-repo.saved:
		if rec.ClientKey != "203.0.113.9" {
			t.Errorf("client key = %q", rec.ClientKey)
		}
		if rec.Tier != string(triage.TierRoutine) {
			t.Errorf("tier = %q, want routine", rec.Tier)
		}
		if !rec.RuleOnly {
			t.Error("record should be marked rule-only")
		}
		if len(rec.Input) == 0 {
			t.Error("original input should be persisted")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("check was never persisted")
	}
}

func TestClassify_ValidationErrorsPropagate(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Classify(context.Background(), TriageRequest{
		Age:      "31-45",
		Symptoms: []string{"not_a_symptom"},
		Duration: "1-3 days",
		Severity: 3,
	})
	if err == nil {
		t.Fatal("unknown symptom must reject the request")
	}
}

func TestBuildPathwayResponse_RuleFallbackIsComplete(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	resp := buildPathwayResponse(svc.Catalog(), result)
	if resp.Source != "rules" {
		t.Errorf("source = %q, want rules", resp.Source)
	}
	if resp.SymptomExplanation == "" || resp.RecoveryTimeline == "" {
		t.Error("fallback narrative fields must be filled from the rules")
	}
	if len(resp.ImmediateActions) == 0 {
		t.Error("fallback must include pathway steps")
	}
	if len(resp.WhenToSeekHelp) == 0 {
		t.Error("fallback must include escalation criteria")
	}
	if resp.Warning == "" {
		t.Error("degraded response must carry the warning")
	}
}

func TestBuildPathwayResponse_HybridSource(t *testing.T) {
	svc := newTestService(t, successGen())

	result, err := svc.Synthesize(context.Background(), coldRequest(), "test")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	resp := buildPathwayResponse(svc.Catalog(), result)
	if resp.Source != "hybrid" {
		t.Errorf("source = %q, want hybrid", resp.Source)
	}
	if resp.PersonalizedAdvice == "" {
		t.Error("hybrid response should carry the generated advice")
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q", resp.Warning)
	}
}

func TestBuildClassifyResponse_TierColours(t *testing.T) {
	cases := []struct {
		tier triage.UrgencyTier
		want string
	}{
		{triage.TierRoutine, "green"},
		{triage.TierModerate, "amber"},
		{triage.TierUrgent, "red"},
		{triage.TierEmergency, "red"},
	}
	for _, tc := range cases {
		if got := TierColour(tc.tier); got != tc.want {
			t.Errorf("TierColour(%s) = %q, want %q", tc.tier, got, tc.want)
		}
	}
}
