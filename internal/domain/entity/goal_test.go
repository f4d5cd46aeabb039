package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGoals(t *testing.T) {
	goals := DefaultGoals()

	require.Len(t, goals, len(GoalMetrics))
	assert.Equal(t, Goal{Target: 0, Period: PeriodAnnual}, goals[MetricBaptisms])
	assert.Equal(t, Goal{Target: 0, Period: PeriodWeekly}, goals[MetricWeeklyAttendanceGp])
	assert.Equal(t, Goal{Target: 0, Period: PeriodMonthly}, goals[MetricBibleStudies])
}

func TestNormalizeGoals(t *testing.T) {
	raw := map[GoalMetric]GoalInput{
		MetricBaptisms:      {Target: 12, Period: PeriodAnnual},
		MetricFriends:       {Target: -4, Period: PeriodMonthly},
		MetricBibleStudies:  {Target: 3, Period: Period("diario")},
		GoalMetric("bogus"): {Target: 99, Period: PeriodWeekly},
	}

	goals := NormalizeGoals(raw)

	require.Len(t, goals, len(GoalMetrics))
	assert.NotContains(t, goals, GoalMetric("bogus"))
	assert.Equal(t, Goal{Target: 12, Period: PeriodAnnual}, goals[MetricBaptisms])
	assert.Equal(t, Goal{Target: 0, Period: PeriodMonthly}, goals[MetricFriends])
	assert.Equal(t, Goal{Target: 3, Period: PeriodMonthly}, goals[MetricBibleStudies], "invalid period keeps the default")
	assert.Equal(t, DefaultGoals()[MetricMissionaryPairs], goals[MetricMissionaryPairs])
}

func TestGoals_NormalizeFillsMissingMetrics(t *testing.T) {
	partial := Goals{MetricBaptisms: {Target: 5, Period: PeriodSemiannual}}

	goals := partial.Normalize()

	require.Len(t, goals, len(GoalMetrics))
	assert.Equal(t, Goal{Target: 5, Period: PeriodSemiannual}, goals[MetricBaptisms])
}

func TestFlexibleInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FlexibleInt
	}{
		{"number", `7`, 7},
		{"numeric string", `"15"`, 15},
		{"padded string", `" 3 "`, 3},
		{"fraction truncates", `2.9`, 2},
		{"fraction string", `"4.5"`, 4},
		{"empty string", `""`, 0},
		{"free text", `"doce"`, 0},
		{"null", `null`, 0},
		{"negative", `-3`, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexibleInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFlexibleInt_NonNegative(t *testing.T) {
	assert.Equal(t, 0, FlexibleInt(-1).NonNegative())
	assert.Equal(t, 8, FlexibleInt(8).NonNegative())
}

func TestPeriod_IsValid(t *testing.T) {
	for _, p := range Periods {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, Period("weekly").IsValid())
}
