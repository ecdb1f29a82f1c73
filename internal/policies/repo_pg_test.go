package policies

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func policyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "category", "age_min", "age_max",
		"regions", "employment", "income_max", "benefit", "budget_max",
		"deadline", "application_url",
	})
}

func TestPGRepoListDecodesJSONBColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	rows := policyRows().AddRow(
		"JOB_001", "청년 창업 지원금", "만 39세 이하 예비 창업자 지원", "창업",
		18, 39,
		[]byte(`["전국"]`), []byte(`["구직자","자영업"]`),
		10000, "최대 5천만원 지원", 50000000,
		deadline, "https://example.go.kr/job001",
	)
	mock.ExpectQuery("SELECT (.+) FROM policies WHERE is_active ORDER BY id").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	out, err := repo.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d policies", len(out))
	}
	p := out[0]
	if len(p.Regions) != 1 || p.Regions[0] != RegionNationwide {
		t.Errorf("regions = %v", p.Regions)
	}
	if len(p.Employment) != 2 {
		t.Errorf("employment = %v", p.Employment)
	}
	if p.IncomeMax == nil || *p.IncomeMax != 10000 {
		t.Errorf("income_max = %v", p.IncomeMax)
	}
	if p.Deadline == nil || !p.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v", p.Deadline)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListAppliesCategoryFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM policies WHERE is_active AND category").
		WithArgs("주거").
		WillReturnRows(policyRows())

	repo := &PGRepo{DB: db}
	if _, err := repo.List(context.Background(), Filter{Category: "주거"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListPaginates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) LIMIT (.+) OFFSET").
		WithArgs(10, 10).
		WillReturnRows(policyRows())

	repo := &PGRepo{DB: db}
	if _, err := repo.List(context.Background(), Filter{Page: 2, Limit: 10}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM policies WHERE id").
		WithArgs("NOPE_999").
		WillReturnRows(policyRows())

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "NOPE_999"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
