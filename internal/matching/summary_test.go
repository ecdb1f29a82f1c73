package matching

import (
	"encoding/json"
	"testing"
)

func TestAvgScoreRoundsToOneDecimal(t *testing.T) {
	results := []MatchResult{
		{Score: 75},
		{Score: 60},
		{Score: 50},
	}
	// 185 / 3 = 61.666...
	if got := AvgScore(results); got != 61.7 {
		t.Errorf("AvgScore = %v, want 61.7", got)
	}
}

func TestAvgScoreEmptyIsZero(t *testing.T) {
	if got := AvgScore(nil); got != 0 {
		t.Errorf("AvgScore(nil) = %v, want 0", got)
	}
}

func TestDistributionPreservesFirstSeenOrder(t *testing.T) {
	results := []MatchResult{
		{Category: "창업"},
		{Category: "주거"},
		{Category: "창업"},
		{Category: "금융"},
	}
	d := Distribution(results)
	if len(d) != 3 {
		t.Fatalf("got %d categories, want 3", len(d))
	}
	if d[0].Category != "창업" || d[0].Count != 2 {
		t.Errorf("first entry = %+v", d[0])
	}
	if d[1].Category != "주거" || d[2].Category != "금융" {
		t.Errorf("order = %v", d)
	}
}

func TestCategoryDistributionJSONOrder(t *testing.T) {
	d := Distribution([]MatchResult{
		{Category: "주거"},
		{Category: "창업"},
		{Category: "주거"},
	})
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"주거":2,"창업":1}`
	if string(raw) != want {
		t.Errorf("json = %s, want %s", raw, want)
	}

	var back CategoryDistribution
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[0].Category != "주거" || back[0].Count != 2 {
		t.Errorf("round trip = %+v", back)
	}
}
