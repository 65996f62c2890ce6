package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func scored(entries map[ElementID][3]*float64) ElementScores {
	set := NewElementScores()
	for id, m := range entries {
		e := set.Get(id)
		e.Documentation, e.Interview, e.Observation = m[0], m[1], m[2]
	}
	return set
}

func TestElementTotalIsMeanOfPresentMethods(t *testing.T) {
	res := ScoreElements(scored(map[ElementID][3]*float64{
		ElementManagementCommitment: {f(80), f(60), nil},
	}))
	e := res.Scores.Get(ElementManagementCommitment)
	require.NotNil(t, e.Total)
	require.Equal(t, 70, *e.Total)
	require.True(t, *e.Passed)
	require.Equal(t, "Management Leadership & Commitment", e.ElementName)
}

func TestElementTotalRoundsHalfUp(t *testing.T) {
	res := ScoreElements(scored(map[ElementID][3]*float64{
		ElementInspections: {f(70), f(75), nil},
		ElementTraining:    {f(49), f(50), nil},
	}))
	require.Equal(t, 73, *res.Scores.Get(ElementInspections).Total)
	require.Equal(t, 50, *res.Scores.Get(ElementTraining).Total)
	require.True(t, *res.Scores.Get(ElementTraining).Passed, "49.5 rounds to 50 which meets the element minimum")
}

func TestUnscoredElementsAreExcluded(t *testing.T) {
	res := ScoreElements(NewElementScores())
	require.Nil(t, res.OverallScore)
	for _, e := range res.Scores {
		require.Nil(t, e.Total)
		require.Nil(t, e.Passed)
	}
	require.Equal(t, AuditInProgress, Outcome(res))
	require.False(t, AuditPasses(res))
}

func TestOverallScoreFailsOnWeakElement(t *testing.T) {
	// Equal weights: (90 + 40) / 2 = 65, and the 40 fails its element.
	res := ScoreElements(scored(map[ElementID][3]*float64{
		ElementHazardAssessment: {f(90), nil, nil},
		ElementHazardControl:    {f(40), nil, nil},
	}))
	require.NotNil(t, res.OverallScore)
	require.Equal(t, 65.0, *res.OverallScore)
	require.False(t, res.AllElementsPassed)
	require.False(t, *res.Scores.Get(ElementHazardControl).Passed)
	require.Equal(t, AuditFailed, Outcome(res))
}

func TestWeakElementFailsDespiteHighOverall(t *testing.T) {
	// 92.5 * 95 + 7.5 * 40 = 9087.5 over 100 = 90.9
	all := map[ElementID][3]*float64{}
	for _, e := range Elements() {
		all[e.ID] = [3]*float64{f(95), nil, nil}
	}
	all[ElementEmergencyResponse] = [3]*float64{f(40), nil, nil}
	res := ScoreElements(scored(all))
	require.Equal(t, 90.9, *res.OverallScore)
	require.True(t, res.MeetsOverallMinimum)
	require.False(t, res.AllElementsPassed)
	require.False(t, AuditPasses(res))
	require.Equal(t, AuditFailed, Outcome(res))
}

func TestOverallMinimumUsesUnroundedMean(t *testing.T) {
	// 80 * 100 + 12.5 * 1 - 17.5 * 1 = 7995 over 100 = 79.95
	all := map[ElementID][3]*float64{}
	for _, e := range Elements() {
		all[e.ID] = [3]*float64{f(80), nil, nil}
	}
	all[ElementManagementCommitment] = [3]*float64{f(81), nil, nil}
	all[ElementHazardAssessment] = [3]*float64{f(79), nil, nil}
	res := ScoreElements(scored(all))
	require.Equal(t, 80.0, *res.OverallScore, "displayed to one decimal")
	require.True(t, res.AllElementsPassed)
	require.False(t, res.MeetsOverallMinimum)
	require.False(t, AuditPasses(res))
	require.Equal(t, AuditFailed, Outcome(res))
}

func TestOverallScoreIsWeighted(t *testing.T) {
	// 12.5 * 80 + 17.5 * 90 = 2575 over 30 = 85.83...
	res := ScoreElements(scored(map[ElementID][3]*float64{
		ElementManagementCommitment: {f(80), nil, nil},
		ElementHazardAssessment:     {f(90), nil, nil},
	}))
	require.Equal(t, 85.8, *res.OverallScore)
	require.True(t, AuditPasses(res))
	require.Equal(t, AuditPassed, Outcome(res))
}

func TestPassRequiresOverallMinimum(t *testing.T) {
	all := map[ElementID][3]*float64{}
	for _, e := range Elements() {
		all[e.ID] = [3]*float64{f(79), f(79), f(79)}
	}
	res := ScoreElements(scored(all))
	require.Equal(t, 79.0, *res.OverallScore)
	require.True(t, res.AllElementsPassed)
	require.Equal(t, AuditFailed, Outcome(res))

	for _, e := range Elements() {
		all[e.ID] = [3]*float64{f(80), nil, nil}
	}
	res = ScoreElements(scored(all))
	require.Equal(t, 80.0, *res.OverallScore)
	require.Equal(t, AuditPassed, Outcome(res))
}

func TestValidateMethodScores(t *testing.T) {
	require.NoError(t, ValidateMethodScores(scored(map[ElementID][3]*float64{
		ElementTraining: {f(0), f(100), nil},
	})))
	err := ValidateMethodScores(scored(map[ElementID][3]*float64{
		ElementTraining: {f(101), nil, nil},
	}))
	require.True(t, IsPrecondition(err))
	require.Contains(t, err.Error(), "qualifications_training documentation")

	require.True(t, IsPrecondition(ValidateOverallScore(-1)))
	require.NoError(t, ValidateOverallScore(100))
}

func TestElementWeights(t *testing.T) {
	require.Len(t, Elements(), ElementCount)
	require.Equal(t, 17.5, ElementHazardAssessment.Element().Weight())
	require.Equal(t, 7.5, ElementEmergencyResponse.Element().Weight())
	require.Equal(t, 12.5, ElementTraining.Element().Weight())
}
