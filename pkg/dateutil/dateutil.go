package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat is the canonical storage format for calendar dates.
// It sorts lexicographically and carries no time-of-day or timezone.
const DateFormat = "2006-01-02"

// ErrInvalidFormat is returned when a date string is not a well-formed
// YYYY-MM-DD (or YYYY-MM for month inputs) value.
var ErrInvalidFormat = errors.New("invalid date format")

// ToDateString normalizes a date to its canonical YYYY-MM-DD string,
// discarding any time-of-day component.
func ToDateString(date time.Time) string {
	return date.Format(DateFormat)
}

// FromDateString parses a canonical YYYY-MM-DD string into a calendar date
// at midnight UTC.
func FromDateString(dateString string) (time.Time, error) {
	date, err := time.Parse(DateFormat, dateString)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, dateString)
	}
	return date, nil
}

// DisplayDate renders a canonical date string as DD/MM/YYYY for display.
func DisplayDate(dateString string) (string, error) {
	date, err := FromDateString(dateString)
	if err != nil {
		return "", err
	}
	return date.Format("02/01/2006"), nil
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// AddDays shifts a date by n calendar days (n may be negative), crossing
// month and year boundaries as needed.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// AddDaysToDateString shifts a canonical date string by n calendar days.
func AddDaysToDateString(dateString string, n int) (string, error) {
	date, err := FromDateString(dateString)
	if err != nil {
		return "", err
	}
	return ToDateString(AddDays(date, n)), nil
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return AddDays(date, 1-weekday)
}

// TwoWeekRange returns the 14 consecutive date strings of an iteration
// starting at the given date.
func TwoWeekRange(start time.Time) []string {
	dates := make([]string, 14)
	for offset := range dates {
		dates[offset] = ToDateString(AddDays(start, offset))
	}
	return dates
}

// MonthRange returns a date string for every day of the given YYYY-MM
// month, first to last.
func MonthRange(yearMonth string) ([]string, error) {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, yearMonth)
	}

	// Day 0 of the next month is the last day of this one.
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, last.Day())
	for date := first; !date.After(last); date = AddDays(date, 1) {
		dates = append(dates, ToDateString(date))
	}
	return dates, nil
}

// DateRange returns every date string from the earlier to the later of the
// two inputs, inclusive, in ascending order. Reversed inputs are swapped
// rather than rejected.
func DateRange(startDateString, endDateString string) ([]string, error) {
	start, err := FromDateString(startDateString)
	if err != nil {
		return nil, err
	}
	end, err := FromDateString(endDateString)
	if err != nil {
		return nil, err
	}

	if start.After(end) {
		start, end = end, start
	}

	var dates []string
	for date := start; !date.After(end); date = AddDays(date, 1) {
		dates = append(dates, ToDateString(date))
	}
	return dates, nil
}

// NextWorkingDateString returns the date itself if it falls on a weekday,
// otherwise the first weekday after it. It never scans backward.
func NextWorkingDateString(dateString string) (string, error) {
	date, err := FromDateString(dateString)
	if err != nil {
		return "", err
	}

	for IsWeekend(date) {
		date = AddDays(date, 1)
	}
	return ToDateString(date), nil
}

// DayDifference returns the signed whole-day count from the first date to
// the second (positive if the second is later). Dates parse to UTC
// midnights, so daylight-saving transitions cannot skew the count.
func DayDifference(startDateString, endDateString string) (int, error) {
	start, err := FromDateString(startDateString)
	if err != nil {
		return 0, err
	}
	end, err := FromDateString(endDateString)
	if err != nil {
		return 0, err
	}

	return int(end.Sub(start) / (24 * time.Hour)), nil
}

// WeekdayShortName returns the three-letter weekday label for report grids.
func WeekdayShortName(date time.Time) string {
	return date.Format("Mon")
}

// Today returns today's date (start of day)
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentYearMonth returns the current month as YYYY-MM.
func CurrentYearMonth() string {
	return Today().Format("2006-01")
}
