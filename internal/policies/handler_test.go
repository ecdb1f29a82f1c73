package policies_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/policies"
)

func newPolicyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	policies.NewHandler(policies.NewGateway(nil)).RegisterRoutes(r.Group("/api"))
	return r
}

func TestListPoliciesServesFallbackCatalog(t *testing.T) {
	r := newPolicyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/policies", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var items []struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != len(policies.FallbackCatalog()) {
		t.Errorf("got %d items, want full catalog", len(items))
	}
}

func TestListPoliciesFiltersByCategory(t *testing.T) {
	r := newPolicyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/policies?category=창업", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var items []struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("no startup policies")
	}
	for _, it := range items {
		if it.Category != "창업" {
			t.Errorf("category = %q", it.Category)
		}
	}
}

func TestListPoliciesRejectsBadPage(t *testing.T) {
	r := newPolicyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/policies?page=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetPolicyById(t *testing.T) {
	r := newPolicyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/policy/JOB_001", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID            string   `json:"id"`
		TargetAgeMin  int      `json:"target_age_min"`
		TargetAgeMax  int      `json:"target_age_max"`
		TargetRegions []string `json:"target_regions"`
		Deadline      string   `json:"deadline"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != "JOB_001" || resp.TargetAgeMin != 18 || resp.TargetAgeMax != 39 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Deadline != "2026-12-31" {
		t.Errorf("deadline = %q", resp.Deadline)
	}
}

func TestGetPolicyUnknownIs404(t *testing.T) {
	r := newPolicyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/policy/NOPE_999", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
