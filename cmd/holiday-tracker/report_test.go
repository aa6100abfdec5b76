package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/status"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

func reportRoster() []model.Person {
	return []model.Person{
		{ID: "p1", Name: "Alice Morgan", Role: "Dev"},
		{ID: "p2", Name: "Ben Carter", Role: "QA"},
		{ID: "p3", Name: "Erin Walsh", Role: ""},
	}
}

func TestWriteDayReportWeekday(t *testing.T) {
	overrides := model.Overrides{
		"p1": {"2024-01-08": {Status: status.HalfDayHoliday, HalfDayPart: status.HalfDayAM}},
	}

	var buf bytes.Buffer
	if err := writeDayReport(&buf, reportRoster(), overrides, "2024-01-08"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Mon 08/01/2024",
		"Alice Morgan",
		"AM",
		"Half-day holiday",
		"Working: 2.5 / 3",
		"Unassigned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("day report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDayReportWeekend(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDayReport(&buf, reportRoster(), model.Overrides{}, "2024-01-06"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "Working: weekend") {
		t.Errorf("weekend report missing weekend marker:\n%s", out)
	}
	if !strings.Contains(out, "WKND") {
		t.Errorf("weekend report missing weekend status labels:\n%s", out)
	}
}

func TestWriteDayReportRejectsBadDate(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDayReport(&buf, reportRoster(), model.Overrides{}, "garbage"); err == nil {
		t.Error("writeDayReport accepted a malformed date")
	}
}

func TestWriteRangeReport(t *testing.T) {
	overrides := model.Overrides{
		"p2": {"2024-01-09": {Status: status.Holiday}},
	}

	dateRange, err := dateutil.DateRange("2024-01-08", "2024-01-12")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeRangeReport(&buf, reportRoster(), overrides, dateRange); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Weekdays:    5",
		"Lowest day:  2.0 on 09/01/2024",
		"Dev",
		"QA",
		"Unassigned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("range report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRangeReportNoWeekdays(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRangeReport(&buf, reportRoster(), model.Overrides{}, []string{"2024-01-06", "2024-01-07"}); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "No weekdays in range") {
		t.Errorf("zero-weekday report wrong:\n%s", buf.String())
	}
}

func TestResolveDisplayStatus(t *testing.T) {
	overrides := model.Overrides{
		"p1": {"2024-01-06": {Status: status.Holiday}},
	}

	// A stored override wins for display even on a weekend.
	s, _ := resolveDisplayStatus(overrides, "p1", "2024-01-06", true)
	if s != status.Holiday {
		t.Errorf("override on weekend displayed as %s, want H", s)
	}

	s, _ = resolveDisplayStatus(overrides, "p2", "2024-01-06", true)
	if s != status.Weekend {
		t.Errorf("weekend default = %s, want WEEKEND", s)
	}

	s, _ = resolveDisplayStatus(overrides, "p2", "2024-01-08", false)
	if s != status.Working {
		t.Errorf("weekday default = %s, want W", s)
	}
}
