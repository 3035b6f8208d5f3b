package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type optimizerImplementation struct{}

func (optimizer *optimizerImplementation) Optimize(records []SectionRecord, options OptimizationOptions) (Output, error) {
	options = options.Clone()
	if err := options.Validate(); err != nil {
		return nil, err
	}

	//** Initialize dependencies
	normalizer := NewNormalizer()
	resolver := NewResolver()
	generator := NewCombinationGenerator(options.MaxFrontierSize)
	evaluator := NewScheduleEvaluator(options.Scoring, options.Penalties)

	//** Build the course table and concretize the requirements
	table := normalizer.ExtractCourses(records, options)
	requirements := resolver.Resolve(table, options)
	slates := resolver.BuildSlates(requirements)
	if len(slates) == 0 {
		return Output{}, nil
	}

	//** Enumerate conflict-free schedules across every slate
	schedules := make([][]*Section, 0)
	for _, slate := range slates {
		schedules = append(schedules, generator.SectionCombinations(slate)...)
	}
	if len(schedules) == 0 {
		return Output{}, nil
	}

	//** Score and rank; the stable sort keeps encounter order on ties
	scored := lo.Map(schedules, func(schedule []*Section, _ int) ScoredSchedule {
		return ScoredSchedule{Schedule: schedule, Score: evaluator.Evaluate(schedule)}
	})
	slices.SortStableFunc(scored, func(a, b ScoredSchedule) int {
		return cmp.Compare(b.Score, a.Score)
	})

	//** Project the top schedules into the transport shape
	output := make(Output, options.MaxSchedules)
	for i, entry := range scored[:min(options.MaxSchedules, len(scored))] {
		output[fmt.Sprintf("Schedule %d", i+1)] = buildScheduleEntry(entry)
	}
	return output, nil
}

func buildScheduleEntry(scored ScoredSchedule) ScheduleEntry {
	return ScheduleEntry{
		Score: scored.Score,
		Sections: lo.Map(scored.Schedule, func(section *Section, _ int) SectionOutput {
			return SectionOutput{
				Crn:           section.Crn,
				SubjectCourse: section.Course.SubjectCourse,
				Title:         section.Course.Title,
				MeetingTimes: lo.Map(section.MeetingTimes, func(mt MeetingTime, _ int) MeetingOutput {
					return MeetingOutput{
						Day:       mt.Day.LongName(),
						BeginTime: MinutesToHhmm(mt.BeginTime),
						EndTime:   MinutesToHhmm(mt.EndTime),
					}
				}),
			}
		}),
	}
}
