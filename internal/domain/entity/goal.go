package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GoalMetric is one of the fixed set of tracked metrics.
type GoalMetric string

const (
	MetricBaptisms                GoalMetric = "baptisms"
	MetricWeeklyAttendanceMembers GoalMetric = "weeklyAttendanceMembers"
	MetricWeeklyAttendanceGp      GoalMetric = "weeklyAttendanceGp"
	MetricMissionaryPairs         GoalMetric = "missionaryPairs"
	MetricFriends                 GoalMetric = "friends"
	MetricBibleStudies            GoalMetric = "bibleStudies"
)

// GoalMetrics lists every metric in display order.
var GoalMetrics = []GoalMetric{
	MetricBaptisms,
	MetricWeeklyAttendanceMembers,
	MetricWeeklyAttendanceGp,
	MetricMissionaryPairs,
	MetricFriends,
	MetricBibleStudies,
}

// Period is the reporting period of a goal.
type Period string

const (
	PeriodWeekly     Period = "semanal"
	PeriodMonthly    Period = "mensual"
	PeriodQuarterly  Period = "trimestral"
	PeriodSemiannual Period = "semestral"
	PeriodAnnual     Period = "anual"
)

// Periods is the fixed ordered set of periods, shortest first.
var Periods = []Period{PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodSemiannual, PeriodAnnual}

// IsValid checks if the Period is one of Periods.
func (p Period) IsValid() bool {
	for _, candidate := range Periods {
		if p == candidate {
			return true
		}
	}

	return false
}

var defaultPeriods = map[GoalMetric]Period{
	MetricBaptisms:                PeriodAnnual,
	MetricWeeklyAttendanceMembers: PeriodWeekly,
	MetricWeeklyAttendanceGp:      PeriodWeekly,
	MetricMissionaryPairs:         PeriodQuarterly,
	MetricFriends:                 PeriodQuarterly,
	MetricBibleStudies:            PeriodMonthly,
}

// DefaultPeriod returns the period a metric starts with.
func DefaultPeriod(metric GoalMetric) Period {
	if p, ok := defaultPeriods[metric]; ok {
		return p
	}

	return PeriodMonthly
}

// Goal is a target for a metric over a period.
type Goal struct {
	Target int    `json:"target"`
	Period Period `json:"period"`
}

// Goals maps every metric to its goal. A normalized Goals value always holds
// all six metrics with non-negative targets and valid periods.
type Goals map[GoalMetric]Goal

// DefaultGoals returns zero targets with each metric's default period.
func DefaultGoals() Goals {
	goals := make(Goals, len(GoalMetrics))
	for _, metric := range GoalMetrics {
		goals[metric] = Goal{Target: 0, Period: DefaultPeriod(metric)}
	}

	return goals
}

// GoalInput is a goal as typed into a form: the target may arrive as a number
// or as free text.
type GoalInput struct {
	Target FlexibleInt `json:"target"`
	Period Period      `json:"period"`
}

// NormalizeGoals coerces raw form input into a complete Goals value. Unknown
// metric keys are dropped and missing metrics take their defaults.
func NormalizeGoals(raw map[GoalMetric]GoalInput) Goals {
	goals := DefaultGoals()
	for metric, in := range raw {
		current, known := goals[metric]
		if !known {
			continue
		}
		current.Target = in.Target.NonNegative()
		if in.Period.IsValid() {
			current.Period = in.Period
		}
		goals[metric] = current
	}

	return goals
}

// Normalize returns a copy of g with every invariant enforced.
func (g Goals) Normalize() Goals {
	raw := make(map[GoalMetric]GoalInput, len(g))
	for metric, goal := range g {
		raw[metric] = GoalInput{Target: FlexibleInt(goal.Target), Period: goal.Period}
	}

	return NormalizeGoals(raw)
}

// FlexibleInt decodes a JSON number or string into an int. Values that do not
// parse decode to 0; fractional values are truncated.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0

			return nil //nolint:nilerr // malformed input coerces to zero
		}
		*f = FlexibleInt(parseLooseInt(s))

		return nil
	}

	*f = FlexibleInt(parseLooseInt(string(data)))

	return nil
}

// NonNegative returns the value clamped at zero.
func (f FlexibleInt) NonNegative() int {
	if f < 0 {
		return 0
	}

	return int(f)
}

func parseLooseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int(v)
}
