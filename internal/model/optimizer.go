package model

import (
	"bytes"
	"cmp"
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ScoredSchedule pairs a candidate schedule with its evaluated score; it is
// the unit the ranking sorts and truncates.
type ScoredSchedule struct {
	Schedule []*Section
	Score    float64
}

// Output maps generated labels ("Schedule 1", "Schedule 2", ...) to ranked
// schedule entries. Labels are numbered by descending score.
type Output map[string]ScheduleEntry

// MarshalJSON serializes the schedules in label rank order ("Schedule 2"
// before "Schedule 10"), where a plain map would marshal its keys lexically.
func (output Output) MarshalJSON() ([]byte, error) {
	labels := lo.Keys(output)
	slices.SortFunc(labels, func(a, b string) int {
		if comparison := cmp.Compare(scheduleRank(a), scheduleRank(b)); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a, b)
	})

	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, label := range labels {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(output[label])
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func scheduleRank(label string) int {
	rank, err := strconv.Atoi(strings.TrimPrefix(label, "Schedule "))
	if err != nil {
		return math.MaxInt
	}
	return rank
}

// ScheduleEntry is the transport-neutral projection of one ranked schedule.
type ScheduleEntry struct {
	Score    float64         `json:"score"`
	Sections []SectionOutput `json:"sections"`
}

// SectionOutput flattens a section for output; it carries no references to
// the internal Course/Section objects.
type SectionOutput struct {
	Crn           string          `json:"crn"`
	SubjectCourse string          `json:"subject_course"`
	Title         string          `json:"title"`
	MeetingTimes  []MeetingOutput `json:"meeting_times"`
}

// MeetingOutput serializes one weekly meeting with a long day name and
// "HHMM" times.
type MeetingOutput struct {
	Day       string `json:"day"`
	BeginTime string `json:"begin_time"`
	EndTime   string `json:"end_time"`
}

// Optimizer runs the whole pipeline: normalize records, resolve
// requirements, enumerate conflict-free schedules, score, rank and project
// the top candidates. Implementations are stateless and re-entrant.
type Optimizer interface {
	Optimize(records []SectionRecord, options OptimizationOptions) (Output, error)
}

func NewOptimizer() Optimizer {
	return &optimizerImplementation{}
}
