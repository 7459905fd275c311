package demo

import "github.com/masmgr/klmax-go/internal/divergence"

// Scenario is a fixed pair of distributions printed by every demonstration.
type Scenario struct {
	Name string
	V1   divergence.Distribution
	V2   divergence.Distribution
}

// Scenarios returns the fixed comparisons, all against [5,4,3,2,1]:
// the same distribution, its reverse, and its reference distribution.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "identical",
			V1:   divergence.Distribution{5, 4, 3, 2, 1},
			V2:   divergence.Distribution{5, 4, 3, 2, 1},
		},
		{
			Name: "reversed",
			V1:   divergence.Distribution{5, 4, 3, 2, 1},
			V2:   divergence.Distribution{1, 2, 3, 4, 5},
		},
		{
			Name: "concentrated",
			V1:   divergence.Distribution{5, 4, 3, 2, 1},
			V2:   divergence.Distribution{1, 1, 1, 1, 11},
		},
	}
}
