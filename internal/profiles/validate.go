package profiles

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawProfile is unvalidated request input.
type RawProfile struct {
	Age        *int    `json:"age"`
	Region     string  `json:"region"`
	Income     *int    `json:"income"`
	Employment string  `json:"employment"`
	Interest   *string `json:"interest"`
}

// FieldError describes a single violated constraint.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every violated field so callers can report all
// problems in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, f.Field+": "+f.Reason)
	}
	return "invalid profile: " + strings.Join(reasons, "; ")
}

// Validate normalizes and validates raw input into a Profile. It is pure:
// no side effects, and identical input always yields the same violations.
func Validate(raw RawProfile) (Profile, error) {
	var fields []FieldError

	if raw.Age == nil {
		fields = append(fields, FieldError{Field: "age", Reason: "필수 항목입니다"})
	} else if *raw.Age < MinAge || *raw.Age > MaxAge {
		fields = append(fields, FieldError{
			Field:  "age",
			Reason: fmt.Sprintf("나이는 %d세 이상 %d세 이하여야 합니다", MinAge, MaxAge),
		})
	}

	region := strings.TrimSpace(raw.Region)
	if region == "" {
		fields = append(fields, FieldError{Field: "region", Reason: "거주 지역은 필수 항목입니다"})
	}

	if raw.Income == nil {
		fields = append(fields, FieldError{Field: "income", Reason: "필수 항목입니다"})
	} else if *raw.Income < 0 {
		fields = append(fields, FieldError{Field: "income", Reason: "소득은 0 이상이어야 합니다"})
	}

	employment := Employment(strings.TrimSpace(raw.Employment))
	if employment == "" {
		fields = append(fields, FieldError{Field: "employment", Reason: "필수 항목입니다"})
	} else if !validEmployment(employment) {
		fields = append(fields, FieldError{
			Field:  "employment",
			Reason: fmt.Sprintf("고용 상태는 %s 중 하나여야 합니다", employmentList()),
		})
	}

	interest := ""
	if raw.Interest != nil {
		interest = strings.TrimSpace(*raw.Interest)
		if interest == "" {
			fields = append(fields, FieldError{Field: "interest", Reason: "관심분야는 비어 있을 수 없습니다"})
		}
	}

	if len(fields) > 0 {
		return Profile{}, &ValidationError{Fields: fields}
	}

	return Profile{
		ID:         "profile_" + uuid.NewString()[:8],
		Age:        *raw.Age,
		Region:     region,
		Income:     *raw.Income,
		Employment: employment,
		Interest:   interest,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func validEmployment(e Employment) bool {
	for _, v := range ValidEmployments {
		if e == v {
			return true
		}
	}
	return false
}

func employmentList() string {
	parts := make([]string, 0, len(ValidEmployments))
	for _, v := range ValidEmployments {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, "/")
}
