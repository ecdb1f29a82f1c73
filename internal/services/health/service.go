package health

import (
	"context"
	"time"

	"youth-policy-backend/internal/policies"
)

// Service encapsulates health-related checks.
type Service struct {
	Gateway *policies.Gateway
}

// NewService constructs a new health service.
func NewService(gw *policies.Gateway) *Service {
	return &Service{Gateway: gw}
}

// Status reports service liveness and policy store connectivity. The
// service stays healthy without a database because the fallback catalog
// keeps recommendations available.
func (s *Service) Status(ctx context.Context) map[string]any {
	conn := s.Gateway.TestConnection(ctx)

	payload := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if conn.Connected {
		payload["database"] = "connected"
	} else {
		payload["database"] = "disconnected"
		if conn.Detail != "" {
			payload["database_error"] = conn.Detail
		}
	}
	return payload
}
