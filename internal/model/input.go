package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MeetingTimeRecord is one meeting block of a raw section record. The time
// and credit fields are kept loosely typed because the feed routinely ships
// nulls and numbers-as-strings; safeFloat and stringify absorb those.
type MeetingTimeRecord struct {
	BeginTime           string `mapstructure:"beginTime"`
	EndTime             string `mapstructure:"endTime"`
	Monday              bool
	Tuesday             bool
	Wednesday           bool
	Thursday            bool
	Friday              bool
	CreditHourSession   any    `mapstructure:"creditHourSession"`
	StartDate           string `mapstructure:"startDate"`
	EndDate             string `mapstructure:"endDate"`
	Building            string
	BuildingDescription string `mapstructure:"buildingDescription"`
	Room                string
}

// DayFlags returns the weekday booleans indexed by Day.
func (mt MeetingTimeRecord) DayFlags() [TotalDays]bool {
	return [TotalDays]bool{mt.Monday, mt.Tuesday, mt.Wednesday, mt.Thursday, mt.Friday}
}

// MeetingBlockRecord wraps a meeting block as nested by the feed.
type MeetingBlockRecord struct {
	MeetingTime MeetingTimeRecord `mapstructure:"meetingTime"`
}

// SectionRecord is a raw section entry of the registration feed.
type SectionRecord struct {
	CourseReferenceNumber any                  `mapstructure:"courseReferenceNumber"`
	Subject               string               `mapstructure:"subject"`
	SubjectCourse         string               `mapstructure:"subjectCourse"`
	CourseTitle           string               `mapstructure:"courseTitle"`
	CreditHours           any                  `mapstructure:"creditHours"`
	SeatsAvailable        any                  `mapstructure:"seatsAvailable"`
	MeetingsFaculty       []MeetingBlockRecord `mapstructure:"meetingsFaculty"`
}

// Crn returns the section's course reference number as a trimmed string.
func (record SectionRecord) Crn() string {
	return strings.TrimSpace(stringify(record.CourseReferenceNumber))
}

// Seats returns the available-seat count, treating missing or malformed
// values as zero.
func (record SectionRecord) Seats() int {
	return int(safeFloat(record.SeatsAvailable))
}

// RecordsFromJson reads a registration-feed export and decodes its section
// records. A record that only partially decodes is kept as-is; the
// normalizer's zero-meeting rule drops it later if nothing usable remains.
func RecordsFromJson(file string) ([]SectionRecord, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read records file: %w", err)
	}

	var recordsJson []map[string]any
	if err := json.Unmarshal(bytes, &recordsJson); err != nil {
		return nil, fmt.Errorf("cannot parse records file: %w", err)
	}

	return DecodeRecords(recordsJson), nil
}

// DecodeRecords turns raw key/value section entries into typed records.
func DecodeRecords(entries []map[string]any) []SectionRecord {
	records := make([]SectionRecord, 0, len(entries))
	for _, entry := range entries {
		var record SectionRecord
		if err := mapstructure.Decode(entry, &record); err != nil {
			slog.Debug("section record decoded partially", "crn", record.Crn(), "error", err)
		}
		records = append(records, record)
	}
	return records
}

func safeFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
