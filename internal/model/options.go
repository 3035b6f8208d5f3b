package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// Default scoring thresholds and rates. All of them live in ScoringWeights
// so callers can override any of them per invocation.
const (
	DefaultEarlyClassThreshold    = 10 * 60 // 10:00
	DefaultLateClassThreshold     = 18 * 60 // 18:00
	DefaultEarlyLatePenaltyPerMin = 0.2
	DefaultActiveDayBonus         = 100
	DefaultActiveDayPenaltyPerDay = 50
	DefaultDistributionWeight     = 20
	DefaultIdleTimePenalty        = 0.05
	DefaultSpanPenalty            = 0.05

	DefaultElectiveSubject = "INQR"
	DefaultMaxSchedules    = 25
)

// ErrNonPositiveMaxSchedules signals an invalid configuration before any
// search work begins, as opposed to a search that found zero schedules.
var ErrNonPositiveMaxSchedules = errors.New("max schedules must be positive")

// PenaltyFunc is an externally supplied scoring hook. It receives a full
// candidate schedule and returns a score delta (negative for penalties).
type PenaltyFunc func(schedule []*Section) float64

// ScoringWeights parameterizes the schedule evaluator.
type ScoringWeights struct {
	EarlyClassThreshold    int     `mapstructure:"early_class_threshold"`
	LateClassThreshold     int     `mapstructure:"late_class_threshold"`
	EarlyLatePenaltyPerMin float64 `mapstructure:"early_late_penalty_per_min"`
	ActiveDayIdealRange    [2]int  `mapstructure:"active_day_ideal_range"`
	ActiveDayBonus         float64 `mapstructure:"active_day_bonus"`
	ActiveDayPenaltyPerDay float64 `mapstructure:"active_day_penalty_per_day"`
	DistributionWeight     float64 `mapstructure:"distribution_weight"`
	IdleTimePenalty        float64 `mapstructure:"idle_time_penalty"`
	SpanPenalty            float64 `mapstructure:"span_penalty"`
}

// OptimizationOptions configures a single optimizer run. Obtain a baseline
// through DefaultOptions and override fields as needed; the optimizer clones
// the value before use so shared option structs never alias across calls.
type OptimizationOptions struct {
	RequirementsSpec  map[string][][]string `mapstructure:"requirements_spec"`
	ElectiveSubject   string                `mapstructure:"elective_subject"`
	MaxSchedules      int                   `mapstructure:"max_schedules"`
	Scoring           ScoringWeights        `mapstructure:"scoring"`
	MinSeatsAvailable int                   `mapstructure:"min_seats_available"`
	IncludeSubjects   []string              `mapstructure:"include_subjects"`
	ExcludeSubjects   []string              `mapstructure:"exclude_subjects"`
	MaxFrontierSize   int                   `mapstructure:"max_frontier_size"` // 0 disables the cap
	Penalties         []PenaltyFunc         `mapstructure:"-"`
}

// DefaultScoringWeights returns the standard heuristic parameters.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		EarlyClassThreshold:    DefaultEarlyClassThreshold,
		LateClassThreshold:     DefaultLateClassThreshold,
		EarlyLatePenaltyPerMin: DefaultEarlyLatePenaltyPerMin,
		ActiveDayIdealRange:    [2]int{3, 4},
		ActiveDayBonus:         DefaultActiveDayBonus,
		ActiveDayPenaltyPerDay: DefaultActiveDayPenaltyPerDay,
		DistributionWeight:     DefaultDistributionWeight,
		IdleTimePenalty:        DefaultIdleTimePenalty,
		SpanPenalty:            DefaultSpanPenalty,
	}
}

// DefaultOptions returns a fresh configuration value. Every call builds new
// maps and slices, so mutating one returned value never leaks into another.
func DefaultOptions() OptimizationOptions {
	return OptimizationOptions{
		RequirementsSpec: map[string][][]string{
			"cs_requirement":   {{"CSCI1200"}},
			"math_requirement": {{"MATH1020"}},
			"biol_requirement": {{"BIOL1010", "BIOL1015"}, {"BIOL1010", "BIOL1016"}},
		},
		ElectiveSubject:   DefaultElectiveSubject,
		MaxSchedules:      DefaultMaxSchedules,
		Scoring:           DefaultScoringWeights(),
		MinSeatsAvailable: 1,
	}
}

// Clone deep-copies the options so the optimizer can work on an isolated
// value regardless of what the caller does with the original afterwards.
func (options OptimizationOptions) Clone() OptimizationOptions {
	cloned := options

	cloned.RequirementsSpec = make(map[string][][]string, len(options.RequirementsSpec))
	for name, groups := range options.RequirementsSpec {
		clonedGroups := make([][]string, len(groups))
		for i, group := range groups {
			clonedGroups[i] = slices.Clone(group)
		}
		cloned.RequirementsSpec[name] = clonedGroups
	}

	cloned.IncludeSubjects = slices.Clone(options.IncludeSubjects)
	cloned.ExcludeSubjects = slices.Clone(options.ExcludeSubjects)
	cloned.Penalties = slices.Clone(options.Penalties)

	return cloned
}

// Validate fails fast on configurations that must never reach the search.
func (options OptimizationOptions) Validate() error {
	if options.MaxSchedules <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositiveMaxSchedules, options.MaxSchedules)
	}
	if lower, upper := options.Scoring.ActiveDayIdealRange[0], options.Scoring.ActiveDayIdealRange[1]; lower > upper {
		return fmt.Errorf("active day ideal range is inverted: [%v, %v]", lower, upper)
	}
	return nil
}

// OptionsFromJson reads a configuration file and decodes it on top of the
// defaults, so absent fields keep their default values.
func OptionsFromJson(file string) (OptimizationOptions, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return OptimizationOptions{}, fmt.Errorf("cannot read options file: %w", err)
	}

	var optionsJson map[string]any
	if err := json.Unmarshal(bytes, &optionsJson); err != nil {
		return OptimizationOptions{}, fmt.Errorf("cannot parse options file: %w", err)
	}

	options := DefaultOptions()

	// mapstructure merges into non-nil maps and slices; a user-supplied
	// spec or subject filter must replace its default wholesale
	if _, ok := optionsJson["requirements_spec"]; ok {
		options.RequirementsSpec = nil
	}
	if _, ok := optionsJson["include_subjects"]; ok {
		options.IncludeSubjects = nil
	}
	if _, ok := optionsJson["exclude_subjects"]; ok {
		options.ExcludeSubjects = nil
	}

	if err := mapstructure.Decode(optionsJson, &options); err != nil {
		return OptimizationOptions{}, fmt.Errorf("cannot decode options: %w", err)
	}

	return options, nil
}
