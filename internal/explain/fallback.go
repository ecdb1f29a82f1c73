package explain

import (
	"fmt"
	"strings"

	"youth-policy-backend/internal/matching"
)

// fallbackExplanation assembles a deterministic templated explanation
// from match reasons and benefit summary. It has no external dependency
// and must never produce an empty string.
func fallbackExplanation(result matching.MatchResult) string {
	var b strings.Builder
	if len(result.MatchReasons) > 0 {
		fmt.Fprintf(&b, "'%s' 정책은 %s 조건에서 회원님과 잘 맞습니다.",
			result.Title, strings.Join(result.MatchReasons, ", "))
	} else {
		fmt.Fprintf(&b, "'%s' 정책은 회원님이 신청할 수 있는 정책입니다.", result.Title)
	}
	if result.BenefitSummary != "" {
		fmt.Fprintf(&b, " 주요 혜택: %s.", result.BenefitSummary)
	}
	fmt.Fprintf(&b, " (매칭 점수 %.1f점)", result.Score)
	return b.String()
}
