package openai

import (
	"fmt"
	"strings"

	"youth-policy-backend/internal/llm"
)

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `당신은 청년 정책 상담사입니다. 회원의 프로필과 정책 매칭 결과를 바탕으로, 이 정책이 왜 적합한지 2~3문장으로 친절하게 설명하세요. 과장 없이 매칭 사유와 혜택만 근거로 삼으세요.`

// BuildPrompt assembles the chat messages for one explanation call.
// Match reasons arrive most-salient-first and are presented in that order.
func BuildPrompt(input llm.ExplainInput) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "회원 프로필: %s\n", input.ProfileSummary)
	fmt.Fprintf(&b, "정책명: %s (분야: %s)\n", input.PolicyTitle, input.Category)
	fmt.Fprintf(&b, "매칭 점수: %.1f점\n", input.Score)
	fmt.Fprintf(&b, "매칭 사유: %s\n", strings.Join(input.MatchReasons, ", "))
	fmt.Fprintf(&b, "주요 혜택: %s\n", input.Benefit)
	b.WriteString("이 정책을 회원에게 추천하는 이유를 설명해 주세요.")

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
