package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func normalizerOptions() OptimizationOptions {
	options := DefaultOptions()
	options.RequirementsSpec = map[string][][]string{
		"cs_requirement": {{"CSCI1200"}},
	}
	options.ElectiveSubject = "INQR"
	return options
}

func TestExtractCoursesBuildsRequiredCourses(t *testing.T) {
	// Arrange
	records := []SectionRecord{
		sectionRecord("1001", "CSCI", "CSCI1200", "Data Structures", 10, meetingBlock("1000", "1050", Monday, Wednesday)),
		sectionRecord("1002", "CSCI", "CSCI1200", "Data Structures", 5, meetingBlock("1200", "1250", Tuesday)),
		sectionRecord("2001", "MATH", "MATH1020", "Calculus", 10, meetingBlock("0900", "0950", Friday)),
	}

	// Act
	table := NewNormalizer().ExtractCourses(records, normalizerOptions())

	// Assert
	assert.Len(t, table.Courses, 1)
	course := table.Courses["CSCI1200"]
	assert.NotNil(t, course)
	assert.Equal(t, "Data Structures", course.Title)
	assert.Len(t, course.Sections, 2)
	assert.Equal(t, course, course.Sections[0].Course)
	assert.Equal(t, []MeetingTime{meeting(Monday, 600, 650), meeting(Wednesday, 600, 650)}, course.Sections[0].MeetingTimes)
}

func TestExtractCoursesSeatThreshold(t *testing.T) {
	// Arrange
	records := []SectionRecord{
		sectionRecord("1001", "CSCI", "CSCI1200", "Data Structures", 0, meetingBlock("1000", "1050", Monday)),
		sectionRecord("1002", "CSCI", "CSCI1200", "Data Structures", 1, meetingBlock("1200", "1250", Tuesday)),
	}

	// Act
	table := NewNormalizer().ExtractCourses(records, normalizerOptions())

	// Assert: default MinSeatsAvailable is 1
	assert.Len(t, table.Courses["CSCI1200"].Sections, 1)
	assert.Equal(t, "1002", table.Courses["CSCI1200"].Sections[0].Crn)
}

func TestExtractCoursesSubjectFilters(t *testing.T) {
	records := []SectionRecord{
		sectionRecord("1001", "CSCI", "CSCI1200", "Data Structures", 10, meetingBlock("1000", "1050", Monday)),
	}

	t.Run("include filter admits listed subjects only", func(t *testing.T) {
		options := normalizerOptions()
		options.IncludeSubjects = []string{"MATH"}

		table := NewNormalizer().ExtractCourses(records, options)

		assert.Empty(t, table.Courses)
	})

	t.Run("exclude filter drops listed subjects", func(t *testing.T) {
		options := normalizerOptions()
		options.ExcludeSubjects = []string{"CSCI"}

		table := NewNormalizer().ExtractCourses(records, options)

		assert.Empty(t, table.Courses)
	})
}

func TestExtractCoursesSkipsMalformedMeetings(t *testing.T) {
	// Arrange
	records := []SectionRecord{
		// Valid Monday meeting plus three blocks that must be skipped
		sectionRecord("1001", "CSCI", "CSCI1200", "Data Structures", 10,
			meetingBlock("1000", "1050", Monday),
			meetingBlock("", "1050", Tuesday),
			meetingBlock("10x0", "1050", Wednesday),
			meetingBlock("1100", "1100", Thursday),
		),
		// Record with no valid meeting at all: dropped entirely
		sectionRecord("1002", "CSCI", "CSCI1200", "Data Structures", 10, meetingBlock("1300", "1200", Friday)),
	}

	// Act
	table := NewNormalizer().ExtractCourses(records, normalizerOptions())

	// Assert
	course := table.Courses["CSCI1200"]
	assert.Len(t, course.Sections, 1)
	assert.Equal(t, []MeetingTime{meeting(Monday, 600, 650)}, course.Sections[0].MeetingTimes)
}

func TestExtractCoursesElectives(t *testing.T) {
	// Arrange
	records := []SectionRecord{
		sectionRecord("3001", "INQR", "INQR1100", "Inquiry Seminar", 10, meetingBlock("1400", "1450", Thursday)),
		sectionRecord("3002", "INQR", "INQR1200", "Inquiry Writing", 10, meetingBlock("0800", "0850", Monday)),
	}

	// Act
	table := NewNormalizer().ExtractCourses(records, normalizerOptions())

	// Assert
	assert.Empty(t, table.Courses)
	assert.Len(t, table.Electives, 2)
	assert.Len(t, table.Electives["INQR1100"].Sections, 1)
}

func TestComputeSectionCredits(t *testing.T) {
	t.Run("explicit credit hours preferred", func(t *testing.T) {
		record := sectionRecord("1", "CSCI", "CSCI1200", "", 10)
		record.CreditHours = 4.0

		assert.Equal(t, 4.0, computeSectionCredits(record))
	})

	t.Run("falls back to per-meeting session sum", func(t *testing.T) {
		record := sectionRecord("1", "CSCI", "CSCI1200", "", 10,
			meetingBlock("1000", "1050", Monday),
			meetingBlock("1100", "1150", Tuesday),
		)
		record.MeetingsFaculty[0].MeetingTime.CreditHourSession = 2.0
		record.MeetingsFaculty[1].MeetingTime.CreditHourSession = 1.0

		assert.Equal(t, 3.0, computeSectionCredits(record))
	})

	t.Run("malformed values count as zero", func(t *testing.T) {
		record := sectionRecord("1", "CSCI", "CSCI1200", "", 10)
		record.CreditHours = "not-a-number"

		assert.Equal(t, 0.0, computeSectionCredits(record))
	})
}
