package policies

import "time"

// RegionNationwide marks a policy open to every region.
const RegionNationwide = "전국"

// Policy is a government youth-support program record. Read-only to the
// recommendation pipeline; its lifecycle is tied to the store.
type Policy struct {
	ID             string
	Title          string
	Description    string
	Category       string
	AgeMin         int
	AgeMax         int
	Regions        []string
	Employment     []string
	IncomeMax      *int // eligibility threshold in 만원; nil means no limit
	Benefit        string
	BudgetMax      *int
	Deadline       *time.Time
	ApplicationURL string
}

// OpenToRegion reports whether the policy targets the given region.
func (p Policy) OpenToRegion(region string) bool {
	for _, r := range p.Regions {
		if r == region || r == RegionNationwide {
			return true
		}
	}
	return false
}

// OpenToEmployment reports whether the policy targets the given employment status.
func (p Policy) OpenToEmployment(employment string) bool {
	for _, e := range p.Employment {
		if e == employment {
			return true
		}
	}
	return false
}

// Filter narrows catalog queries. Zero value means the full active catalog.
type Filter struct {
	Category string
	Region   string
	Page     int
	Limit    int
}
