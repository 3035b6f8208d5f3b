package model

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

type normalizerImplementation struct{}

func (normalizer *normalizerImplementation) ExtractCourses(records []SectionRecord, options OptimizationOptions) CourseTable {
	//** Seed the table with every course code the requirements reference
	table := CourseTable{
		Courses:   make(map[string]*Course),
		Electives: make(map[string]*Course),
	}
	required := make(map[string]bool)
	for _, groups := range options.RequirementsSpec {
		for _, group := range groups {
			for _, code := range group {
				required[code] = true
			}
		}
	}

	//** Process records, filtering by seats and subject before extraction
	for _, record := range records {
		if record.Seats() < options.MinSeatsAvailable {
			continue
		}
		if len(options.IncludeSubjects) > 0 && !slices.Contains(options.IncludeSubjects, record.Subject) {
			continue
		}
		if slices.Contains(options.ExcludeSubjects, record.Subject) {
			continue
		}

		if required[record.SubjectCourse] {
			course, ok := table.Courses[record.SubjectCourse]
			if !ok {
				course = &Course{
					SubjectCourse: record.SubjectCourse,
					Title:         record.CourseTitle,
					Credits:       computeSectionCredits(record),
				}
				table.Courses[record.SubjectCourse] = course
			}
			normalizer.addSection(course, record)
		}

		if record.Subject == options.ElectiveSubject {
			course, ok := table.Electives[record.SubjectCourse]
			if !ok {
				course = &Course{
					SubjectCourse: record.SubjectCourse,
					Title:         record.CourseTitle,
					Credits:       computeSectionCredits(record),
				}
				table.Electives[record.SubjectCourse] = course
			}
			normalizer.addSection(course, record)
		}
	}

	return table
}

// addSection materializes the record as a section of the course, unless the
// record yields zero valid meeting times, in which case it is dropped.
func (normalizer *normalizerImplementation) addSection(course *Course, record SectionRecord) {
	meetingTimes := extractMeetingTimes(record)
	if len(meetingTimes) == 0 {
		slog.Debug("skipping section with no valid meeting times", "crn", record.Crn(), "course", course.SubjectCourse)
		return
	}

	course.Sections = append(course.Sections, &Section{
		Crn:          record.Crn(),
		MeetingTimes: meetingTimes,
		Course:       course,
	})
}

// extractMeetingTimes scans the record's meeting blocks. Each block
// contributes one meeting per flagged day, all sharing the block's times.
// Blocks with missing, malformed or non-positive time ranges are skipped.
func extractMeetingTimes(record SectionRecord) []MeetingTime {
	meetingTimes := make([]MeetingTime, 0, len(record.MeetingsFaculty))

	for _, block := range record.MeetingsFaculty {
		mt := block.MeetingTime
		if mt.BeginTime == "" || mt.EndTime == "" {
			continue
		}

		beginMinutes, beginErr := HhmmToMinutes(mt.BeginTime)
		endMinutes, endErr := HhmmToMinutes(mt.EndTime)
		if beginErr != nil || endErr != nil {
			slog.Debug("skipping meeting with invalid time format", "begin", mt.BeginTime, "end", mt.EndTime)
			continue
		}
		if beginMinutes >= endMinutes {
			slog.Debug("skipping meeting with non-positive duration", "begin", mt.BeginTime, "end", mt.EndTime)
			continue
		}

		for day, flagged := range mt.DayFlags() {
			if flagged {
				meetingTimes = append(meetingTimes, MeetingTime{
					Day:       Day(day),
					BeginTime: beginMinutes,
					EndTime:   endMinutes,
				})
			}
		}
	}

	return meetingTimes
}

// computeSectionCredits prefers the record's explicit credit hours and falls
// back to summing the per-meeting session credits. Missing or non-numeric
// values count as zero.
func computeSectionCredits(record SectionRecord) float64 {
	if credits := safeFloat(record.CreditHours); credits != 0 {
		return credits
	}
	return lo.SumBy(record.MeetingsFaculty, func(block MeetingBlockRecord) float64 {
		return safeFloat(block.MeetingTime.CreditHourSession)
	})
}
