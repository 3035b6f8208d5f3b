package model

import (
	"log/slog"
	"math"

	"github.com/samber/lo"
)

// ScheduleEvaluator scores candidate schedules; higher is better. An empty
// candidate scores negative infinity and is never selected.
type ScheduleEvaluator interface {
	Evaluate(schedule []*Section) float64
}

func NewScheduleEvaluator(weights ScoringWeights, penalties []PenaltyFunc) ScheduleEvaluator {
	return &scheduleEvaluatorStandard{
		weights:   weights,
		penalties: penalties,
	}
}

type scheduleEvaluatorStandard struct {
	weights   ScoringWeights
	penalties []PenaltyFunc
}

func (evaluator *scheduleEvaluatorStandard) Evaluate(schedule []*Section) float64 {
	if len(schedule) == 0 {
		return math.Inf(-1)
	}

	weights := evaluator.weights
	score := 0.0

	//** Early/late penalties, collecting meetings per weekday on the way
	var days [TotalDays][]MeetingTime
	for _, section := range schedule {
		for _, mt := range section.MeetingTimes {
			days[mt.Day] = append(days[mt.Day], mt)
			if mt.BeginTime < weights.EarlyClassThreshold {
				score -= float64(weights.EarlyClassThreshold-mt.BeginTime) * weights.EarlyLatePenaltyPerMin
			}
			if mt.EndTime > weights.LateClassThreshold {
				score -= float64(mt.EndTime-weights.LateClassThreshold) * weights.EarlyLatePenaltyPerMin
			}
		}
	}

	//** Active-day shaping against the ideal inclusive range
	dayCounts := lo.FilterMap(days[:], func(meetings []MeetingTime, _ int) (float64, bool) {
		return float64(len(meetings)), len(meetings) > 0
	})
	activeDays := len(dayCounts)
	lower, upper := weights.ActiveDayIdealRange[0], weights.ActiveDayIdealRange[1]
	if lower <= activeDays && activeDays <= upper {
		score += weights.ActiveDayBonus
	} else {
		score -= math.Abs(float64(activeDays-upper)) * weights.ActiveDayPenaltyPerDay
	}

	//** Load distribution: sample stdev of per-day meeting counts
	if activeDays > 1 {
		score -= sampleStdev(dayCounts) * weights.DistributionWeight
	}

	//** Compactness: per-day idle time plus the mean of daily outer spans
	spans := make([]float64, 0, activeDays)
	for _, meetings := range days {
		if len(meetings) == 0 {
			continue
		}
		begin := lo.MinBy(meetings, func(a, b MeetingTime) bool { return a.BeginTime < b.BeginTime }).BeginTime
		end := lo.MaxBy(meetings, func(a, b MeetingTime) bool { return a.EndTime > b.EndTime }).EndTime
		classTime := lo.SumBy(meetings, func(mt MeetingTime) int { return mt.EndTime - mt.BeginTime })

		idleTime := (end - begin) - classTime
		score -= float64(idleTime) * weights.IdleTimePenalty
		spans = append(spans, float64(end-begin))
	}
	if len(spans) > 0 {
		// The span mean is unweighted across active days regardless of how
		// many meetings each day carries.
		score -= lo.Mean(spans) * weights.SpanPenalty
	}

	//** External penalty hooks, isolated so one failure cannot abort scoring
	for _, penalty := range evaluator.penalties {
		score += evaluator.applyPenalty(penalty, schedule)
	}

	// Round to 2 decimals for determinism and display stability
	return math.Round(score*100) / 100
}

func (evaluator *scheduleEvaluatorStandard) applyPenalty(penalty PenaltyFunc, schedule []*Section) (delta float64) {
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("penalty hook failed; ignoring its contribution", "panic", recovered)
			delta = 0
		}
	}()
	return penalty(schedule)
}

func sampleStdev(values []float64) float64 {
	mean := lo.Mean(values)
	sum := lo.SumBy(values, func(value float64) float64 {
		return (value - mean) * (value - mean)
	})
	return math.Sqrt(sum / float64(len(values)-1))
}
