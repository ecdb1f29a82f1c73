package policies

import "time"

// FallbackCatalog returns the bundled static policy catalog used when the
// store is unreachable. It is small but representative enough for the
// pipeline to keep producing ranked output.
func FallbackCatalog() []Policy {
	return []Policy{
		{
			ID:             "JOB_001",
			Title:          "청년 창업 지원금",
			Description:    "만 18~39세 청년 창업자 대상 사업화 자금 및 멘토링 지원",
			Category:       "창업",
			AgeMin:         18,
			AgeMax:         39,
			Regions:        []string{RegionNationwide},
			Employment:     []string{"구직자", "자영업"},
			IncomeMax:      intPtr(10000),
			Benefit:        "최대 5천만원 지원",
			BudgetMax:      intPtr(5000),
			Deadline:       datePtr(2026, time.December, 31),
			ApplicationURL: "https://startup.go.kr",
		},
		{
			ID:             "FIN_001",
			Title:          "청년희망적금",
			Description:    "근로 청년의 자산 형성을 돕는 정부 매칭 적금",
			Category:       "금융",
			AgeMin:         19,
			AgeMax:         34,
			Regions:        []string{RegionNationwide},
			Employment:     []string{"재직자", "구직자"},
			IncomeMax:      intPtr(3600),
			Benefit:        "월 10만원 적립시 정부지원금 10만원",
			BudgetMax:      intPtr(240),
			Deadline:       datePtr(2026, time.December, 31),
			ApplicationURL: "https://finlife.or.kr",
		},
		{
			ID:             "HOU_001",
			Title:          "청년 주택 지원",
			Description:    "무주택 청년 대상 전세자금 저리 대출",
			Category:       "주거",
			AgeMin:         19,
			AgeMax:         34,
			Regions:        []string{RegionNationwide},
			Employment:     []string{"재직자", "구직자"},
			IncomeMax:      intPtr(6000),
			Benefit:        "전세자금 최대 2억원",
			BudgetMax:      intPtr(20000),
			ApplicationURL: "https://hf.go.kr",
		},
		{
			ID:             "JOB_002",
			Title:          "청년 취업 성공 패키지",
			Description:    "구직자 대상 취업 상담, 직업 훈련 및 훈련비 지원",
			Category:       "일자리",
			AgeMin:         18,
			AgeMax:         34,
			Regions:        []string{RegionNationwide},
			Employment:     []string{"구직자"},
			IncomeMax:      intPtr(3000),
			Benefit:        "훈련비 최대 300만원 및 구직촉진수당",
			BudgetMax:      intPtr(300),
			Deadline:       datePtr(2026, time.November, 30),
			ApplicationURL: "https://work.go.kr",
		},
		{
			ID:             "EDU_001",
			Title:          "청년 역량 강화 교육 바우처",
			Description:    "재직 청년 대상 직무 교육 수강료 지원",
			Category:       "교육",
			AgeMin:         18,
			AgeMax:         39,
			Regions:        []string{"서울", "경기", "인천"},
			Employment:     []string{"재직자", "자영업"},
			Benefit:        "교육비 연 200만원 한도 지원",
			BudgetMax:      intPtr(200),
			Deadline:       datePtr(2026, time.October, 15),
			ApplicationURL: "https://youth.seoul.go.kr",
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
