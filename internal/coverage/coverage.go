// Package coverage computes working-capacity statistics for a roster over
// calendar dates. All functions are pure: they read the supplied snapshot
// and never touch a clock or mutate their inputs.
package coverage

import (
	"strings"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/status"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// UnassignedRole buckets people whose role is blank after trimming.
const UnassignedRole = "Unassigned"

// RoleStat accumulates headcount and working units for one role on one day.
type RoleStat struct {
	TotalPeople  int
	WorkingUnits float64
}

// DayAvailability is the availability picture for a single date.
type DayAvailability struct {
	IsWeekend    bool
	TotalPeople  int
	WorkingUnits float64
	// RoleStats is keyed by the exact trimmed role string. Casing is
	// significant: "Dev" and "dev" are separate buckets.
	RoleStats map[string]RoleStat
}

// RoleAverage is a role's averaged availability over a range of weekdays.
type RoleAverage struct {
	TotalPeople         int
	AverageWorkingUnits float64
}

// RangeAvailability summarizes availability over a date range. Weekends in
// the range are excluded before any statistics are computed.
type RangeAvailability struct {
	WeekdayCount        int
	AverageWorkingUnits float64
	LowestWorkingUnits  float64
	// LowestWorkingDate is the earliest weekday with the fewest working
	// units, or empty when the range contains no weekdays.
	LowestWorkingDate string
	RoleAverages      map[string]RoleAverage
}

// RoleName resolves a person's role bucket: the trimmed role string, or
// UnassignedRole when blank.
func RoleName(person model.Person) string {
	name := strings.TrimSpace(person.Role)
	if name == "" {
		return UnassignedRole
	}
	return name
}

// CalculateDayAvailability computes per-person and per-role working units
// for one date. Weekends short-circuit before any override lookup: a stored
// override never makes a Saturday count as working.
func CalculateDayAvailability(people []model.Person, overrides model.Overrides, dateString string) (*DayAvailability, error) {
	date, err := dateutil.FromDateString(dateString)
	if err != nil {
		return nil, err
	}

	if dateutil.IsWeekend(date) {
		return &DayAvailability{
			IsWeekend:   true,
			TotalPeople: len(people),
			RoleStats:   map[string]RoleStat{},
		}, nil
	}

	day := &DayAvailability{
		TotalPeople: len(people),
		RoleStats:   make(map[string]RoleStat),
	}

	for _, person := range people {
		role := RoleName(person)
		stat := day.RoleStats[role]
		stat.TotalPeople++

		personStatus := status.Working
		if entry, ok := overrides.Get(person.ID, dateString); ok {
			personStatus = entry.Status
		}

		units := personStatus.WorkingUnits()
		stat.WorkingUnits += units
		day.WorkingUnits += units

		day.RoleStats[role] = stat
	}

	return day, nil
}

// CalculateRangeAvailability computes the average and lowest-day statistics
// over the weekdays of a date range. A range with no weekdays yields a
// zeroed result and performs no division.
func CalculateRangeAvailability(people []model.Person, overrides model.Overrides, dateRange []string) (*RangeAvailability, error) {
	var weekdays []string
	for _, dateString := range dateRange {
		date, err := dateutil.FromDateString(dateString)
		if err != nil {
			return nil, err
		}
		if !dateutil.IsWeekend(date) {
			weekdays = append(weekdays, dateString)
		}
	}

	if len(weekdays) == 0 {
		return &RangeAvailability{RoleAverages: map[string]RoleAverage{}}, nil
	}

	type roleTotal struct {
		totalPeople       int
		workingUnitsTotal float64
	}

	var totalUnits float64
	lowestUnits := 0.0
	lowestDate := ""
	roleTotals := make(map[string]roleTotal)

	for i, dateString := range weekdays {
		day, err := CalculateDayAvailability(people, overrides, dateString)
		if err != nil {
			return nil, err
		}

		totalUnits += day.WorkingUnits

		// Strict < keeps the earliest date on ties.
		if i == 0 || day.WorkingUnits < lowestUnits {
			lowestUnits = day.WorkingUnits
			lowestDate = dateString
		}

		for role, stat := range day.RoleStats {
			total := roleTotals[role]
			total.totalPeople = stat.TotalPeople
			total.workingUnitsTotal += stat.WorkingUnits
			roleTotals[role] = total
		}
	}

	weekdayCount := len(weekdays)
	roleAverages := make(map[string]RoleAverage, len(roleTotals))
	for role, total := range roleTotals {
		roleAverages[role] = RoleAverage{
			TotalPeople:         total.totalPeople,
			AverageWorkingUnits: total.workingUnitsTotal / float64(weekdayCount),
		}
	}

	return &RangeAvailability{
		WeekdayCount:        weekdayCount,
		AverageWorkingUnits: totalUnits / float64(weekdayCount),
		LowestWorkingUnits:  lowestUnits,
		LowestWorkingDate:   lowestDate,
		RoleAverages:        roleAverages,
	}, nil
}
