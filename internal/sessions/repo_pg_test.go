package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/matching"
)

func sampleSession() Session {
	return Session{
		ID:             "sess_20260830120000_abcd1234",
		ProfileID:      "profile_abcd1234",
		ProfileSummary: "28세, 서울 거주, 연소득 3,000만원, 재직자",
		Success:        true,
		ProcessingTime: 1.5,
		AvgScore:       75,
		StageOutcomes: []StageOutcome{
			{Stage: "profile_validation", Status: StatusSuccess, Duration: 0.001},
			{Stage: "data_fetch", Status: StatusDegraded, Duration: 0.1, Detail: "fallback"},
		},
		Recommendations: []explain.Recommendation{
			{
				MatchResult: matching.MatchResult{PolicyID: "JOB_001", Score: 75},
				Explanation: "설명",
				Meta:        explain.Meta{Source: explain.SourceFallback},
			},
		},
		CategoryDistribution: matching.CategoryDistribution{{Category: "창업", Count: 1}},
		GeneratedAt:          time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestPGRepoCreateMarshalsNestedJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s := sampleSession()
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(
			s.ID,
			s.ProfileID,
			s.ProfileSummary,
			s.Success,
			s.ProcessingTime,
			s.AvgScore,
			sqlmock.AnyArg(), // stage_outcomes
			sqlmock.AnyArg(), // recommendations
			sqlmock.AnyArg(), // category_distribution
			s.GeneratedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByProfileRoundTripsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s := sampleSession()
	rows := sqlmock.NewRows([]string{
		"id", "profile_id", "profile_summary", "success", "processing_time",
		"avg_score", "stage_outcomes", "recommendations", "category_distribution", "generated_at",
	}).AddRow(
		s.ID, s.ProfileID, s.ProfileSummary, s.Success, s.ProcessingTime,
		s.AvgScore,
		[]byte(`[{"stage":"data_fetch","status":"degraded","duration":0.1,"detail":"fallback"}]`),
		[]byte(`[{"policy_id":"JOB_001","title":"","category":"","score":75,"match_reasons":null,"benefit_summary":"","explanation":"설명","explanation_meta":{"source":"fallback","tokens_used":0,"generation_time":0}}]`),
		[]byte(`{"창업":1}`),
		s.GeneratedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs(s.ProfileID).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	out, err := repo.ListByProfile(context.Background(), s.ProfileID)
	if err != nil {
		t.Fatalf("ListByProfile: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d sessions", len(out))
	}
	got := out[0]
	if len(got.StageOutcomes) != 1 || got.StageOutcomes[0].Status != StatusDegraded {
		t.Errorf("stage outcomes = %+v", got.StageOutcomes)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0].PolicyID != "JOB_001" {
		t.Errorf("recommendations = %+v", got.Recommendations)
	}
	if len(got.CategoryDistribution) != 1 || got.CategoryDistribution[0].Category != "창업" {
		t.Errorf("distribution = %+v", got.CategoryDistribution)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByProfileEmptyReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("profile_missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "profile_id", "profile_summary", "success", "processing_time",
			"avg_score", "stage_outcomes", "recommendations", "category_distribution", "generated_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.ListByProfile(context.Background(), "profile_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
