package model

// Shared builders for test data across the package tests.

func meetingBlock(begin, end string, days ...Day) MeetingBlockRecord {
	mt := MeetingTimeRecord{BeginTime: begin, EndTime: end}
	for _, day := range days {
		switch day {
		case Monday:
			mt.Monday = true
		case Tuesday:
			mt.Tuesday = true
		case Wednesday:
			mt.Wednesday = true
		case Thursday:
			mt.Thursday = true
		case Friday:
			mt.Friday = true
		}
	}
	return MeetingBlockRecord{MeetingTime: mt}
}

func sectionRecord(crn, subject, subjectCourse, title string, seats int, blocks ...MeetingBlockRecord) SectionRecord {
	return SectionRecord{
		CourseReferenceNumber: crn,
		Subject:               subject,
		SubjectCourse:         subjectCourse,
		CourseTitle:           title,
		SeatsAvailable:        seats,
		MeetingsFaculty:       blocks,
	}
}

func testCourse(code string) *Course {
	return &Course{SubjectCourse: code, Title: code + " title", Credits: 4}
}

func withSection(course *Course, crn string, meetings ...MeetingTime) *Section {
	section := &Section{Crn: crn, MeetingTimes: meetings, Course: course}
	course.Sections = append(course.Sections, section)
	return section
}

func meeting(day Day, begin, end int) MeetingTime {
	return MeetingTime{Day: day, BeginTime: begin, EndTime: end}
}
