package explain

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"youth-policy-backend/internal/llm"
	"youth-policy-backend/internal/shared/telemetry"
)

const llmRetryBaseDelay = 300 * time.Millisecond

// retryingClient wraps an llm.Client with a single bounded retry on
// transient failures. Anything else falls through so the caller can take
// the deterministic fallback path immediately.
type retryingClient struct {
	base llm.Client
}

func newRetryingClient(base llm.Client) llm.Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base}
}

func (r retryingClient) Explain(ctx context.Context, input llm.ExplainInput) (llm.ExplainOutput, error) {
	out, err := r.base.Explain(ctx, input)
	if err == nil || !shouldRetryLLM(err) {
		return out, err
	}

	telemetry.Error("llm.retry", map[string]any{
		"policy": input.PolicyTitle,
		"error":  sanitizeError(err),
	})
	select {
	case <-time.After(llmRetryBaseDelay):
	case <-ctx.Done():
		return llm.ExplainOutput{}, ctx.Err()
	}

	return r.base.Explain(ctx, input)
}

func shouldRetryLLM(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, llm.ErrNotConfigured) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") && (strings.Contains(msg, "openai") || strings.Contains(msg, "llm") || strings.Contains(msg, "client.timeout")) {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
