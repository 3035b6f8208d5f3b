package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Section is one offered instance of a course, identified by its CRN
// (course reference number). A section always owns at least one valid
// meeting time; the normalizer drops records that would violate this.
type Section struct {
	Crn          string
	MeetingTimes []MeetingTime
	Course       *Course // back-reference for label lookup only
}

// ConflictsWith reports whether any meeting of the section overlaps with
// any meeting of the other section.
func (section *Section) ConflictsWith(other *Section) bool {
	return lo.SomeBy(section.MeetingTimes, func(mt1 MeetingTime) bool {
		return lo.SomeBy(other.MeetingTimes, func(mt2 MeetingTime) bool {
			return mt1.OverlapsWith(mt2)
		})
	})
}

func (section *Section) String() string {
	return fmt.Sprintf("Section(%v, times=%v, course=%v)", section.Crn, section.MeetingTimes, section.Course.SubjectCourse)
}

// Course aggregates every section offered for one subject+number code in a
// term. Courses are created once per code and accumulate sections while the
// normalizer processes records; afterwards they are treated as immutable and
// shared by reference across requirement groups.
type Course struct {
	SubjectCourse string
	Title         string
	Credits       float64
	Sections      []*Section
}

func (course *Course) String() string {
	return fmt.Sprintf("Course(course=%v, title=%v, credits=%v)", course.SubjectCourse, course.Title, course.Credits)
}

// CourseTable is the normalized catalog: required courses keyed by code,
// plus the courses offered under the configured elective subject.
type CourseTable struct {
	Courses   map[string]*Course
	Electives map[string]*Course
}
