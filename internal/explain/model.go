package explain

import "youth-policy-backend/internal/matching"

// Explanation sources.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Meta records how an explanation was produced.
type Meta struct {
	Source         string  `json:"source"`
	TokensUsed     int     `json:"tokens_used"`
	GenerationTime float64 `json:"generation_time"`
}

// Recommendation is a MatchResult enriched with a natural-language
// explanation. Immutable once attached to a session response.
type Recommendation struct {
	matching.MatchResult
	Explanation string `json:"explanation"`
	Meta        Meta   `json:"explanation_meta"`
}
