package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/username/holiday-tracker/internal/coverage"
	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/status"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// resolveDisplayStatus picks the status shown for a person on a date: a
// stored override wins for display even on weekends, otherwise the default
// of Weekend or Working.
func resolveDisplayStatus(overrides model.Overrides, personID, dateString string, weekend bool) (status.Status, status.HalfDayPart) {
	if entry, ok := overrides.Get(personID, dateString); ok {
		return entry.Status, entry.HalfDayPart
	}
	if weekend {
		return status.Weekend, ""
	}
	return status.Working, ""
}

// writeDayReport prints the per-person status list and day stats for one
// date.
func writeDayReport(w io.Writer, people []model.Person, overrides model.Overrides, dateString string) error {
	date, err := dateutil.FromDateString(dateString)
	if err != nil {
		return err
	}
	display, err := dateutil.DisplayDate(dateString)
	if err != nil {
		return err
	}

	weekend := dateutil.IsWeekend(date)

	fmt.Fprintf(w, "%s %s\n", dateutil.WeekdayShortName(date), display)
	for _, person := range people {
		personStatus, part := resolveDisplayStatus(overrides, person.ID, dateString, weekend)
		meta := status.MetaFor(personStatus, part)

		role := coverage.RoleName(person)
		fmt.Fprintf(w, "  %-20s %-12s %-5s %s\n", person.Name, role, meta.ShortLabel, meta.Label)
	}

	day, err := coverage.CalculateDayAvailability(people, overrides, dateString)
	if err != nil {
		return err
	}

	if day.IsWeekend {
		fmt.Fprintf(w, "Working: weekend\n")
		return nil
	}

	fmt.Fprintf(w, "Working: %.1f / %d\n", day.WorkingUnits, day.TotalPeople)
	for _, role := range sortedRoles(day.RoleStats) {
		stat := day.RoleStats[role]
		fmt.Fprintf(w, "  %-12s %.1f / %d\n", role, stat.WorkingUnits, stat.TotalPeople)
	}
	return nil
}

// writeRangeReport prints the aggregate coverage stats for a date range.
func writeRangeReport(w io.Writer, people []model.Person, overrides model.Overrides, dateRange []string) error {
	stats, err := coverage.CalculateRangeAvailability(people, overrides, dateRange)
	if err != nil {
		return err
	}

	if stats.WeekdayCount == 0 {
		fmt.Fprintln(w, "No weekdays in range")
		return nil
	}

	fmt.Fprintf(w, "Weekdays:    %d\n", stats.WeekdayCount)
	fmt.Fprintf(w, "Avg working: %.1f / %d\n", stats.AverageWorkingUnits, len(people))

	lowestDisplay, err := dateutil.DisplayDate(stats.LowestWorkingDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Lowest day:  %.1f on %s\n", stats.LowestWorkingUnits, lowestDisplay)

	roles := make([]string, 0, len(stats.RoleAverages))
	for role := range stats.RoleAverages {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		avg := stats.RoleAverages[role]
		fmt.Fprintf(w, "  %-12s %.1f / %d\n", role, avg.AverageWorkingUnits, avg.TotalPeople)
	}
	return nil
}

func sortedRoles(roleStats map[string]coverage.RoleStat) []string {
	roles := make([]string, 0, len(roleStats))
	for role := range roleStats {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
