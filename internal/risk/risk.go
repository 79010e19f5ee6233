// Package risk implements the cardiovascular risk classifier.
//
// The classifier is a pure function over pre-validated vitals: it is
// deterministic, total over its input domain, has no error path and no
// side effects. Two mutually exclusive scoring policies exist; the
// active one is selected by configuration at startup and applied to
// every submission until the process exits. Records keep the category
// they were classified with — a policy change never rewrites history.
package risk

// Category is the classifier output: exactly one of Low, Medium, High.
type Category string

const (
	Low    Category = "Low"
	Medium Category = "Medium"
	High   Category = "High"
)

// Severity returns the ordinal rank of the category: Low < Medium < High.
// Useful for monotonicity checks and "worst category" comparisons.
func (c Category) Severity() int {
	switch c {
	case High:
		return 2
	case Medium:
		return 1
	default:
		return 0
	}
}

// Factors are the pre-validated inputs to the classifier.
//
// Age is carried for completeness but ignored by both policies: the
// product has not defined an age weighting, so the field is validated
// upstream and deliberately left out of scoring.
type Factors struct {
	Age           int
	BP            int // systolic blood pressure, mmHg
	Sugar         int // blood sugar, mg/dL
	Smoking       bool
	FamilyHistory bool
}

// Threshold-policy cut-offs.
const (
	thresholdBPHigh    = 140
	thresholdBPMedium  = 120
	thresholdSugarHigh = 200
	thresholdSugarMed  = 140
)

// Weighted-policy cut-offs and score boundaries.
const (
	weightedBPLimit    = 140
	weightedSugarLimit = 180

	weightedHighScore   = 3
	weightedMediumScore = 2
)

// Classify maps vitals to a risk category under the given policy.
//
// Inputs must already be validated; Classify does no range checking and
// always returns one of Low, Medium or High.
func Classify(p Policy, f Factors) Category {
	switch p {
	case PolicyThreshold:
		return classifyThreshold(f)
	default:
		return classifyWeighted(f)
	}
}

// classifyThreshold applies the single-factor trigger policy: any one
// severe factor pushes the reading to High; moderately elevated blood
// pressure or sugar yields Medium. Family history is not considered.
func classifyThreshold(f Factors) Category {
	switch {
	case f.Sugar > thresholdSugarHigh, f.BP > thresholdBPHigh, f.Smoking:
		return High
	case f.Sugar > thresholdSugarMed, f.BP > thresholdBPMedium:
		return Medium
	default:
		return Low
	}
}

// classifyWeighted counts elevated factors (one point each for high
// blood pressure, high sugar, smoking, and family history) and maps the
// score to a category.
func classifyWeighted(f Factors) Category {
	score := 0
	if f.BP > weightedBPLimit {
		score++
	}
	if f.Sugar > weightedSugarLimit {
		score++
	}
	if f.Smoking {
		score++
	}
	if f.FamilyHistory {
		score++
	}

	switch {
	case score >= weightedHighScore:
		return High
	case score == weightedMediumScore:
		return Medium
	default:
		return Low
	}
}
