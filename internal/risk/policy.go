package risk

import "fmt"

// Policy selects which scoring formula Classify applies.
type Policy string

const (
	// PolicyThreshold triggers on any single severe factor:
	// High if sugar > 200 or bp > 140 or smoking; Medium if sugar > 140
	// or bp > 120; otherwise Low.
	PolicyThreshold Policy = "threshold"

	// PolicyWeighted counts elevated factors (bp > 140, sugar > 180,
	// smoking, family history — one point each): score >= 3 is High,
	// score == 2 is Medium, otherwise Low.
	PolicyWeighted Policy = "weighted"
)

// DefaultPolicy is applied when configuration does not name a policy.
const DefaultPolicy = PolicyWeighted

// ParsePolicy converts a configuration string into a Policy.
// An empty string yields DefaultPolicy; anything unrecognised is an error
// so that a typo fails startup instead of silently changing scoring.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyThreshold:
		return PolicyThreshold, nil
	case PolicyWeighted:
		return PolicyWeighted, nil
	case "":
		return DefaultPolicy, nil
	default:
		return "", fmt.Errorf("unknown risk policy %q", s)
	}
}
