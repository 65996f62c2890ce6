package domain

import "github.com/shopspring/decimal"

const (
	MinElementScore = 50
	MinOverallScore = 80
)

// ScoreResult is the outcome of scoring a full element set. OverallScore is
// rounded for display; MeetsOverallMinimum is decided on the exact weighted
// mean, so 79.95 shows as 80 and still fails.
type ScoreResult struct {
	Scores              ElementScores `json:"elementScores"`
	OverallScore        *float64      `json:"overallScore"`
	MeetsOverallMinimum bool          `json:"meetsOverallMinimum"`
	AllElementsPassed   bool          `json:"allElementsPassed"`
}

// ScoreElements recomputes every element total and pass flag and the
// weighted overall score. Unscored elements are left out of the overall
// score entirely; if nothing is scored the overall score is nil.
func ScoreElements(in ElementScores) ScoreResult {
	out := in
	num, den := decimal.Zero, decimal.Zero
	allPassed := true
	for i := range out {
		s := &out[i]
		s.Element, s.ElementName = elements[i].ID, elements[i].Name
		s.Total, s.Passed = elementTotal(*s), nil
		if s.Total == nil {
			continue
		}
		passed := *s.Total >= MinElementScore
		s.Passed = &passed
		if !passed {
			allPassed = false
		}
		w := decimal.NewFromFloat(elements[i].Weight())
		num = num.Add(decimal.NewFromInt(int64(*s.Total)).Mul(w))
		den = den.Add(w)
	}
	res := ScoreResult{Scores: out, AllElementsPassed: allPassed}
	if den.IsZero() {
		return res
	}
	exact := num.Div(den)
	res.MeetsOverallMinimum = exact.GreaterThanOrEqual(decimal.NewFromInt(MinOverallScore))
	overall, _ := exact.Round(1).Float64()
	res.OverallScore = &overall
	return res
}

// elementTotal is the rounded mean of the method scores present, or nil.
func elementTotal(s ElementScore) *int {
	sum, n := decimal.Zero, 0
	for _, m := range s.methods() {
		if m == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*m))
		n++
	}
	if n == 0 {
		return nil
	}
	total := int(sum.Div(decimal.NewFromInt(int64(n))).Round(0).IntPart())
	return &total
}

// AuditPasses applies the pass rule: an overall score exists, the unrounded
// weighted mean reaches the overall minimum, and no scored element is below
// the element minimum.
func AuditPasses(r ScoreResult) bool {
	return r.OverallScore != nil && r.MeetsOverallMinimum && r.AllElementsPassed
}

// Outcome maps a score result onto the status it implies. Without an
// overall score there is no outcome yet and the audit stays in progress.
func Outcome(r ScoreResult) AuditStatus {
	switch {
	case r.OverallScore == nil:
		return AuditInProgress
	case AuditPasses(r):
		return AuditPassed
	default:
		return AuditFailed
	}
}

// ValidateMethodScores rejects method scores outside 0–100.
func ValidateMethodScores(scores ElementScores) error {
	for _, s := range scores {
		for _, m := range []struct {
			name string
			v    *float64
		}{{"documentation", s.Documentation}, {"interview", s.Interview}, {"observation", s.Observation}} {
			if m.v != nil && (*m.v < 0 || *m.v > 100) {
				return Preconditionf("%s %s score %v is outside 0-100", s.Element, m.name, *m.v)
			}
		}
	}
	return nil
}

// ValidateOverallScore rejects an overall score outside 0–100.
func ValidateOverallScore(v float64) error {
	if v < 0 || v > 100 {
		return Preconditionf("overall score %v is outside 0-100", v)
	}
	return nil
}
