package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"courseplanner/internal/model"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

var (
	dayNameToWeekday = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
	weekdayToRruleDay = map[time.Weekday]string{
		time.Monday:    "MO",
		time.Tuesday:   "TU",
		time.Wednesday: "WE",
		time.Thursday:  "TH",
		time.Friday:    "FR",
		time.Saturday:  "SA",
		time.Sunday:    "SU",
	}
)

// SectionMetadata carries per-CRN details from the raw feed that the
// optimizer output does not include: the section's own date range and room.
type SectionMetadata struct {
	StartDate time.Time
	EndDate   time.Time
	Location  string
}

// CollectSectionMetadata builds a CRN -> metadata map from raw feed
// records. The first meeting block with actual times is preferred; records
// without one fall back to their first block.
func CollectSectionMetadata(records []model.SectionRecord) map[string]SectionMetadata {
	metadata := make(map[string]SectionMetadata, len(records))

	for _, record := range records {
		crn := record.Crn()
		if crn == "" {
			continue
		}

		var meeting model.MeetingTimeRecord
		for _, block := range record.MeetingsFaculty {
			if meeting.BeginTime == "" {
				meeting = block.MeetingTime
			}
			if block.MeetingTime.BeginTime != "" {
				meeting = block.MeetingTime
				break
			}
		}

		building := meeting.BuildingDescription
		if building == "" {
			building = meeting.Building
		}
		location := strings.TrimSpace(strings.Join([]string{building, meeting.Room}, " "))

		metadata[crn] = SectionMetadata{
			StartDate: parseFeedDate(meeting.StartDate),
			EndDate:   parseFeedDate(meeting.EndDate),
			Location:  location,
		}
	}

	return metadata
}

// DeriveTermBounds finds the earliest start and latest end date among the
// sections the schedules reference. The second return value is false when
// no dated metadata matches.
func DeriveTermBounds(output model.Output, metadata map[string]SectionMetadata) (time.Time, time.Time, bool) {
	var termStart, termEnd time.Time

	for _, entry := range output {
		for _, section := range entry.Sections {
			meta, ok := metadata[section.Crn]
			if !ok {
				continue
			}
			if !meta.StartDate.IsZero() && (termStart.IsZero() || meta.StartDate.Before(termStart)) {
				termStart = meta.StartDate
			}
			if !meta.EndDate.IsZero() && (termEnd.IsZero() || meta.EndDate.After(termEnd)) {
				termEnd = meta.EndDate
			}
		}
	}

	return termStart, termEnd, !termStart.IsZero() && !termEnd.IsZero()
}

// GenerateICS writes one calendar for the given schedule. Every weekly
// meeting becomes a recurring event anchored at the first occurrence of its
// weekday within the term and repeated until the last occurrence. The
// projection only reads the optimizer output; it never alters it.
func GenerateICS(
	name string,
	entry model.ScheduleEntry,
	termStart, termEnd time.Time,
	timezone string,
	metadata map[string]SectionMetadata,
	w io.Writer,
) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	if termEnd.Before(termStart) {
		return fmt.Errorf("term end %v precedes term start %v", termEnd.Format(time.DateOnly), termStart.Format(time.DateOnly))
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)

	for _, section := range entry.Sections {
		for _, meeting := range section.MeetingTimes {
			weekday, ok := dayNameToWeekday[strings.ToLower(strings.TrimSpace(meeting.Day))]
			if !ok {
				return fmt.Errorf("unknown day name: %q", meeting.Day)
			}

			beginMinutes, err := model.HhmmToMinutes(meeting.BeginTime)
			if err != nil {
				return err
			}
			endMinutes, err := model.HhmmToMinutes(meeting.EndTime)
			if err != nil {
				return err
			}

			firstDate := nextWeekdayOnOrAfter(termStart, weekday)
			lastDate := lastWeekdayOnOrBefore(termEnd, weekday)
			if lastDate.Before(firstDate) {
				lastDate = firstDate
			}

			start := atMinutes(firstDate, beginMinutes, loc)
			end := atMinutes(firstDate, endMinutes, loc)
			until := atMinutes(lastDate, endMinutes, loc)

			// Stable UID so re-exports replace events instead of duplicating them
			uidSeed := fmt.Sprintf("%s-%s-%s-%s-%s", name, section.Crn, meeting.Day, meeting.BeginTime, meeting.EndTime)
			uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(uidSeed))

			event := cal.AddEvent(uid.String())
			event.SetDtStampTime(time.Now().UTC())
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(strings.TrimSpace(section.SubjectCourse + " " + section.Title))
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", weekdayToRruleDay[weekday], until.UTC().Format("20060102T150405Z")))

			if meta, ok := metadata[section.Crn]; ok && meta.Location != "" {
				event.SetLocation(meta.Location)
			}
			if section.Crn != "" {
				event.SetDescription("CRN: " + section.Crn)
			}
		}
	}

	return cal.SerializeTo(w)
}

// CalendarFileName derives an on-disk name from a schedule label, e.g.
// "Schedule 1" -> "schedule_1.ics".
func CalendarFileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".ics"
}

func nextWeekdayOnOrAfter(start time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, delta)
}

func lastWeekdayOnOrBefore(end time.Time, target time.Weekday) time.Time {
	delta := (int(end.Weekday()) - int(target) + 7) % 7
	return end.AddDate(0, 0, -delta)
}

func atMinutes(day time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
}

func parseFeedDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse("01/02/2006", value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
