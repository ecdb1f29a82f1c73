package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/sessions"
	"youth-policy-backend/internal/shared/metrics"
	"youth-policy-backend/internal/shared/telemetry"
)

// Stage names in execution order.
const (
	StageProfileValidation = "profile_validation"
	StageDataFetch         = "data_fetch"
	StageMatching          = "matching"
	StageExplanation       = "explanation"
	StageAssembly          = "assembly"
)

// Orchestrator runs the full recommendation pipeline: validate the
// profile, fetch candidate policies, match, explain, and assemble a
// persisted session. A degraded stage never stops the run; only a
// rejected profile or a missing catalog does.
type Orchestrator struct {
	Profiles  *profiles.Service
	Gateway   *policies.Gateway
	Engine    matching.Engine
	Generator *explain.Generator
	Sessions  sessions.Repo
}

func New(ps *profiles.Service, gw *policies.Gateway, engine matching.Engine, gen *explain.Generator, sr sessions.Repo) *Orchestrator {
	return &Orchestrator{
		Profiles:  ps,
		Gateway:   gw,
		Engine:    engine,
		Generator: gen,
		Sessions:  sr,
	}
}

// Run executes the pipeline for one raw profile. It returns the stored
// session and the assembled result. The error is non-nil only for a
// rejected profile (profiles.ValidationError) or an empty catalog
// (policies.ErrNoCatalog wrapped); every other problem degrades a stage
// instead.
func (o *Orchestrator) Run(ctx context.Context, raw profiles.RawProfile, minScore float64, maxResults int) (sessions.Session, RecommendationResult, error) {
	started := time.Now()
	metrics.RecommendationsStarted.Inc()

	var outcomes []sessions.StageOutcome
	record := func(stage string, from time.Time, st status, detail string) {
		outcomes = append(outcomes, sessions.StageOutcome{
			Stage:    stage,
			Status:   st.String(),
			Duration: time.Since(from).Seconds(),
			Detail:   detail,
		})
		if st == statusDegraded {
			metrics.StageDegraded.WithLabelValues(stage).Inc()
		}
	}

	// Stage 1: validate and best-effort persist the profile.
	stageStart := time.Now()
	profile, saved, err := o.Profiles.Create(ctx, raw)
	if err != nil {
		metrics.RecommendationsCompleted.WithLabelValues("rejected").Inc()
		return sessions.Session{}, RecommendationResult{}, err
	}
	if saved {
		record(StageProfileValidation, stageStart, statusOK, "")
	} else {
		record(StageProfileValidation, stageStart, statusDegraded, "프로필 저장에 실패하여 메모리로만 처리합니다")
	}

	telemetry.Info("pipeline.start", map[string]any{
		"profile_id": profile.ID,
		"summary":    profile.Summary(),
	})

	// Stage 2: fetch candidates, falling back to the embedded catalog.
	stageStart = time.Now()
	fetch := o.fetchStage(ctx)
	record(StageDataFetch, stageStart, fetch.status, fetch.detail)
	if fetch.status == statusFailed {
		metrics.RecommendationsCompleted.WithLabelValues("failed").Inc()
		return sessions.Session{}, RecommendationResult{}, fetch.err
	}

	// Stage 3: score and rank. Pure, cannot degrade.
	stageStart = time.Now()
	results := o.Engine.Match(profile, fetch.value, minScore, maxResults)
	record(StageMatching, stageStart, statusOK, fmt.Sprintf("%d개 정책 매칭", len(results)))

	// Stage 4: explain each match; model errors fall back per item.
	stageStart = time.Now()
	exp := o.explainStage(ctx, profile, results)
	record(StageExplanation, stageStart, exp.status, exp.detail)

	// Stage 5: assemble, then best-effort persist the session. The
	// assembly outcome is recorded first so the stored record carries
	// all five stages; a failed save downgrades only the in-flight
	// copy, since nothing was stored.
	stageStart = time.Now()
	result := assemble(profile, exp.value)
	record(StageAssembly, stageStart, statusOK, "")

	session := sessions.Session{
		ID:                   newSessionID(started),
		ProfileID:            profile.ID,
		ProfileSummary:       profile.Summary(),
		Success:              true,
		ProcessingTime:       time.Since(started).Seconds(),
		AvgScore:             result.AvgScore,
		StageOutcomes:        outcomes,
		Recommendations:      exp.value,
		CategoryDistribution: result.CategoryDistribution,
		GeneratedAt:          started.UTC(),
	}
	if err := o.Sessions.Create(ctx, session); err != nil {
		telemetry.Error("pipeline.session_save", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		last := len(outcomes) - 1
		outcomes[last].Status = sessions.StatusDegraded
		outcomes[last].Detail = "세션 저장에 실패했습니다"
		metrics.StageDegraded.WithLabelValues(StageAssembly).Inc()
	}

	elapsed := time.Since(started)
	metrics.PipelineDuration.Observe(elapsed.Seconds())
	metrics.RecommendationsCompleted.WithLabelValues(runResult(outcomes)).Inc()

	telemetry.Info("pipeline.complete", map[string]any{
		"session_id":      session.ID,
		"profile_id":      profile.ID,
		"total_matches":   result.TotalMatches,
		"avg_score":       result.AvgScore,
		"processing_time": session.ProcessingTime,
	})

	return session, result, nil
}

func (o *Orchestrator) fetchStage(ctx context.Context) outcome[[]policies.Policy] {
	candidates, fellBack, err := o.Gateway.FetchOrFallback(ctx, policies.Filter{})
	if err != nil {
		return failed[[]policies.Policy](err, "정책 데이터를 조회할 수 없습니다")
	}
	if fellBack {
		return degraded(candidates, "데이터베이스 대신 내장 정책 목록을 사용했습니다")
	}
	return okDetail(candidates, fmt.Sprintf("%d개 정책 조회", len(candidates)))
}

func (o *Orchestrator) explainStage(ctx context.Context, profile profiles.Profile, results []matching.MatchResult) outcome[[]explain.Recommendation] {
	recs := o.Generator.ExplainAll(ctx, profile, results)
	if n := explain.FallbackCount(recs); n > 0 {
		return degraded(recs, fmt.Sprintf("%d건은 기본 설명으로 대체되었습니다", n))
	}
	return ok(recs)
}

func runResult(outcomes []sessions.StageOutcome) string {
	for _, o := range outcomes {
		if o.Status == sessions.StatusDegraded {
			return "degraded"
		}
	}
	return "success"
}

// newSessionID builds a time-ordered session identifier.
func newSessionID(now time.Time) string {
	return "sess_" + now.UTC().Format("20060102150405") + "_" + uuid.NewString()[:8]
}
