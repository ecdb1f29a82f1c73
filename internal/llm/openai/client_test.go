package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"youth-policy-backend/internal/llm"
)

func explainInput() llm.ExplainInput {
	return llm.ExplainInput{
		ProfileSummary: "28세, 서울 거주, 연소득 3,000만원, 재직자",
		PolicyTitle:    "청년 창업 지원금",
		Category:       "창업",
		Benefit:        "최대 5천만원 지원",
		MatchReasons:   []string{"연령 조건 충족", "지역 조건 충족"},
		Score:          75,
	}
}

func TestExplainParsesChoiceAndUsage(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  회원님께 꼭 맞는 정책입니다.  "}},
			},
			"usage": map[string]any{"prompt_tokens": 100, "completion_tokens": 40, "total_tokens": 140},
		})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	out, err := client.Explain(context.Background(), explainInput())
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if out.Text != "회원님께 꼭 맞는 정책입니다." {
		t.Errorf("text = %q", out.Text)
	}
	if out.TokensUsed != 140 {
		t.Errorf("tokens = %d", out.TokensUsed)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) < 2 {
		t.Fatalf("got %d messages", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" {
		t.Errorf("first role = %q", gotBody.Messages[0].Role)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "청년 창업 지원금") {
		t.Errorf("user prompt missing policy title: %q", gotBody.Messages[1].Content)
	}
}

func TestExplainSurfacesAPIError(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "server_error"},
		})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Explain(context.Background(), explainInput())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "server_error") {
		t.Errorf("err = %v", err)
	}
}

func TestExplainRejectsEmptyChoices(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Explain(context.Background(), explainInput()); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err != llm.ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for empty model")
	}
}
