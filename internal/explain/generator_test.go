package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"youth-policy-backend/internal/llm"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/profiles"
)

type stubClient struct {
	mu    sync.Mutex
	calls int
	fail  int // fail the first n calls
	err   error
	delay time.Duration
}

func (s *stubClient) Explain(ctx context.Context, input llm.ExplainInput) (llm.ExplainOutput, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return llm.ExplainOutput{}, ctx.Err()
		}
	}
	if n <= s.fail {
		return llm.ExplainOutput{}, s.err
	}
	return llm.ExplainOutput{
		Text:       "맞춤 설명: " + input.PolicyTitle,
		TokensUsed: 42,
	}, nil
}

func testMatch(id string) matching.MatchResult {
	return matching.MatchResult{
		PolicyID:       id,
		Title:          "청년 창업 지원금",
		Category:       "창업",
		Score:          75,
		MatchReasons:   []string{matching.ReasonAge, matching.ReasonRegion},
		BenefitSummary: "최대 5천만원 지원",
	}
}

func genProfile() profiles.Profile {
	return profiles.Profile{
		Age:        28,
		Region:     "서울",
		Income:     3000,
		Employment: profiles.EmploymentEmployed,
	}
}

func TestExplainUsesModelWhenAvailable(t *testing.T) {
	g := NewGenerator(&stubClient{}, 1, time.Second)

	rec := g.Explain(context.Background(), genProfile(), testMatch("JOB_001"))
	if rec.Meta.Source != SourceModel {
		t.Fatalf("source = %q, want model", rec.Meta.Source)
	}
	if rec.Meta.TokensUsed != 42 {
		t.Errorf("tokens = %d", rec.Meta.TokensUsed)
	}
	if rec.Meta.GenerationTime <= 0 {
		t.Errorf("generation_time = %v", rec.Meta.GenerationTime)
	}
	if !strings.Contains(rec.Explanation, "청년 창업 지원금") {
		t.Errorf("explanation = %q", rec.Explanation)
	}
}

func TestExplainFallsBackWhenNotConfigured(t *testing.T) {
	g := NewGenerator(llm.Disabled{}, 1, time.Second)

	rec := g.Explain(context.Background(), genProfile(), testMatch("JOB_001"))
	if rec.Meta.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", rec.Meta.Source)
	}
	if rec.Meta.TokensUsed != 0 || rec.Meta.GenerationTime != 0 {
		t.Errorf("meta = %+v, want zero tokens and time", rec.Meta)
	}
	if rec.Explanation == "" {
		t.Error("fallback explanation empty")
	}
	if !strings.Contains(rec.Explanation, "청년 창업 지원금") {
		t.Errorf("explanation = %q, want policy title", rec.Explanation)
	}
}

func TestExplainFallsBackWithNilClient(t *testing.T) {
	g := NewGenerator(nil, 1, time.Second)

	rec := g.Explain(context.Background(), genProfile(), testMatch("JOB_001"))
	if rec.Meta.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", rec.Meta.Source)
	}
}

func TestExplainRetriesTransientFailure(t *testing.T) {
	client := &stubClient{fail: 1, err: errors.New("openai: http status 503")}
	g := NewGenerator(client, 1, 5*time.Second)

	rec := g.Explain(context.Background(), genProfile(), testMatch("JOB_001"))
	if rec.Meta.Source != SourceModel {
		t.Fatalf("source = %q after retry, want model", rec.Meta.Source)
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2", client.calls)
	}
}

func TestExplainAllPreservesRankOrder(t *testing.T) {
	g := NewGenerator(&stubClient{delay: 10 * time.Millisecond}, 3, time.Second)

	results := make([]matching.MatchResult, 8)
	for i := range results {
		results[i] = testMatch(fmt.Sprintf("POL_%03d", i))
	}

	recs := g.ExplainAll(context.Background(), genProfile(), results)
	if len(recs) != len(results) {
		t.Fatalf("got %d recommendations", len(recs))
	}
	for i, rec := range recs {
		if rec.PolicyID != results[i].PolicyID {
			t.Errorf("position %d = %s, want %s", i, rec.PolicyID, results[i].PolicyID)
		}
	}
}

func TestExplainAllEmptyInput(t *testing.T) {
	g := NewGenerator(llm.Disabled{}, 3, time.Second)
	recs := g.ExplainAll(context.Background(), genProfile(), nil)
	if len(recs) != 0 {
		t.Fatalf("got %d recommendations, want 0", len(recs))
	}
}

func TestFallbackCount(t *testing.T) {
	recs := []Recommendation{
		{Meta: Meta{Source: SourceModel}},
		{Meta: Meta{Source: SourceFallback}},
		{Meta: Meta{Source: SourceFallback}},
	}
	if got := FallbackCount(recs); got != 2 {
		t.Errorf("FallbackCount = %d, want 2", got)
	}
}
