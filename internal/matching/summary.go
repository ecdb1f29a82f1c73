package matching

import (
	"bytes"
	"encoding/json"
	"math"
)

// CategoryCount is one category → count pair.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryDistribution maps category to match count, preserving first-seen
// order. The ordering survives JSON marshaling, which Go maps would not
// guarantee.
type CategoryDistribution []CategoryCount

// MarshalJSON renders the distribution as a JSON object in first-seen order.
func (d CategoryDistribution) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, cc := range d {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(cc.Category)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		count, err := json.Marshal(cc.Count)
		if err != nil {
			return nil, err
		}
		b.Write(count)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON accepts a plain JSON object; ordering follows decode order.
func (d *CategoryDistribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	out := CategoryDistribution{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		out = append(out, CategoryCount{Category: key, Count: count})
	}
	*d = out
	return nil
}

// AvgScore returns the mean score over results, 0 when empty, rounded to
// one decimal place.
func AvgScore(results []MatchResult) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range results {
		total += r.Score
	}
	return math.Round(total/float64(len(results))*10) / 10
}

// Distribution counts results per category in first-seen order.
func Distribution(results []MatchResult) CategoryDistribution {
	index := make(map[string]int, len(results))
	out := CategoryDistribution{}
	for _, r := range results {
		if i, ok := index[r.Category]; ok {
			out[i].Count++
			continue
		}
		index[r.Category] = len(out)
		out = append(out, CategoryCount{Category: r.Category, Count: 1})
	}
	return out
}
