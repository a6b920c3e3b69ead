package model

import (
	"sort"
	"time"
)

// CourseLevel describes course difficulty as reported by the catalog.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

// Course describes a bookable course from the catalog. Immutable once fetched.
type Course struct {
	ID          int64
	Name        string
	Description string
	Teacher     string
	Level       CourseLevel
	FeePerHour  int64
	TotalLength int // weeks
	WeekLength  int // hours per week
	StartDates  []time.Time
}

// DurationHours returns the total course duration in hours.
func (c Course) DurationHours() int {
	return c.TotalLength * c.WeekLength
}

// Intensive reports whether the course qualifies for the intensive surcharge.
func (c Course) Intensive() bool {
	return c.WeekLength >= 5
}

// StartDays returns the unique start dates in ascending order, time-of-day stripped.
func (c Course) StartDays() []string {
	seen := make(map[string]struct{}, len(c.StartDates))
	days := make([]string, 0, len(c.StartDates))
	for _, ts := range c.StartDates {
		day := ts.Format("2006-01-02")
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// TimesFor returns the "HH:MM" start times offered on the given day, ascending.
func (c Course) TimesFor(day string) []string {
	var times []string
	for _, ts := range c.StartDates {
		if ts.Format("2006-01-02") == day {
			times = append(times, ts.Format("15:04"))
		}
	}
	sort.Strings(times)
	return times
}

// EndDate returns the date of the last lesson for a course started on the given day.
func (c Course) EndDate(start time.Time) time.Time {
	return start.AddDate(0, 0, c.TotalLength*7)
}
