package profiles

import (
	"strconv"
	"strings"
	"time"
)

// Employment is the declared employment status of a citizen.
type Employment string

const (
	EmploymentEmployed     Employment = "재직자"
	EmploymentSeeking      Employment = "구직자"
	EmploymentSelfEmployed Employment = "자영업"
)

// ValidEmployments lists every accepted employment status.
var ValidEmployments = []Employment{EmploymentEmployed, EmploymentSeeking, EmploymentSelfEmployed}

// Age bounds for youth-support eligibility, inclusive.
const (
	MinAge = 18
	MaxAge = 39
)

// Profile is a validated citizen profile. Immutable once created.
type Profile struct {
	ID         string
	Age        int
	Region     string
	Income     int // annual income in 만원
	Employment Employment
	Interest   string // optional
	CreatedAt  time.Time
}

// Summary renders the fixed-format human-readable profile line used in
// responses and explanation prompts.
func (p Profile) Summary() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.Age))
	b.WriteString("세, ")
	b.WriteString(p.Region)
	b.WriteString(" 거주, 연소득 ")
	b.WriteString(formatComma(p.Income))
	b.WriteString("만원, ")
	b.WriteString(string(p.Employment))
	if p.Interest != "" {
		b.WriteString(", 관심분야: ")
		b.WriteString(p.Interest)
	}
	return b.String()
}

func formatComma(n int) string {
	raw := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = raw[1:]
	}
	var b strings.Builder
	for i, r := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
