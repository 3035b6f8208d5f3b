package model

import (
	"fmt"
	"strconv"
)

// Day indexes the weekdays the registration feed can flag: 0=Monday through 4=Friday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// TotalDays is the size of the weekday domain (Monday through Friday).
const TotalDays = 5

var (
	dayNamesShort = [TotalDays]string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	dayNamesLong  = [TotalDays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

func (day Day) String() string {
	return dayNamesShort[day]
}

// LongName returns the full weekday name used in serialized output.
func (day Day) LongName() string {
	return dayNamesLong[day]
}

// MeetingTime is one weekly recurring time block on a single weekday.
// Times are minutes since midnight, with BeginTime < EndTime.
type MeetingTime struct {
	Day       Day
	BeginTime int
	EndTime   int
}

// OverlapsWith reports whether two meetings collide. Intervals are half-open,
// so a meeting ending at 10:00 does not conflict with one beginning at 10:00.
func (mt MeetingTime) OverlapsWith(other MeetingTime) bool {
	if mt.Day != other.Day {
		return false
	}
	return !(mt.EndTime <= other.BeginTime || mt.BeginTime >= other.EndTime)
}

func (mt MeetingTime) String() string {
	return fmt.Sprintf("%v %v-%v", mt.Day, MinutesToClock(mt.BeginTime), MinutesToClock(mt.EndTime))
}

// HhmmToMinutes converts a feed time string like "0930" to minutes since midnight.
func HhmmToMinutes(hhmm string) (int, error) {
	if len(hhmm) != 4 {
		return 0, fmt.Errorf("invalid time format: %q", hhmm)
	}
	hours, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %q", hhmm)
	}
	minutes, err := strconv.Atoi(hhmm[2:])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %q", hhmm)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time out of range: %q", hhmm)
	}
	return hours*60 + minutes, nil
}

// MinutesToHhmm converts minutes since midnight back to the feed's "HHMM" form.
func MinutesToHhmm(minutes int) string {
	return fmt.Sprintf("%02d%02d", minutes/60, minutes%60)
}

// MinutesToClock converts minutes since midnight to a readable "HH:MM" form.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
