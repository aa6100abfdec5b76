package iteration

import (
	"errors"
	"testing"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

func testSettings() model.Settings {
	return model.Settings{
		PIStartAnchorDate: "2024-01-01",
		IterationsPerPI:   6,
		StartingPINumber:  7,
	}
}

func TestCalculateIndex(t *testing.T) {
	tests := []struct {
		name      string
		focusDate string
		wantIndex int
		wantStart string
		wantEnd   string
	}{
		{"anchor day", "2024-01-01", 0, "2024-01-01", "2024-01-14"},
		{"last day of first iteration", "2024-01-14", 0, "2024-01-01", "2024-01-14"},
		{"first day of second iteration", "2024-01-15", 1, "2024-01-15", "2024-01-28"},
		{"day before anchor", "2023-12-31", -1, "2023-12-18", "2023-12-31"},
		{"two weeks before anchor", "2023-12-18", -1, "2023-12-18", "2023-12-31"},
		{"fifteen days before anchor", "2023-12-17", -2, "2023-12-04", "2023-12-17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Calculate(testSettings(), tt.focusDate)
			if err != nil {
				t.Fatal(err)
			}
			if info.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", info.Index, tt.wantIndex)
			}
			if info.StartDate != tt.wantStart {
				t.Errorf("StartDate = %s, want %s", info.StartDate, tt.wantStart)
			}
			if info.EndDate != tt.wantEnd {
				t.Errorf("EndDate = %s, want %s", info.EndDate, tt.wantEnd)
			}
			if len(info.DateRange) != 14 {
				t.Errorf("DateRange has %d dates, want 14", len(info.DateRange))
			}
		})
	}
}

func TestCalculateLabels(t *testing.T) {
	// With 6 iterations per PI starting at PI 7, index 5 is the planning
	// iteration of PI 7 and index 6 rolls over to PI 8.
	tests := []struct {
		name         string
		index        int
		wantLabel    string
		wantPlanning bool
	}{
		{"first iteration of first PI", 0, "7.1", false},
		{"planning iteration", 5, "7.6 (PI Planning)", true},
		{"rollover to next PI", 6, "8.1", false},
		{"iteration before anchor", -1, "6.6 (PI Planning)", true},
		{"six iterations before anchor", -6, "6.1", false},
		{"seven iterations before anchor", -7, "5.6 (PI Planning)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			focusDate, err := dateutil.AddDaysToDateString("2024-01-01", tt.index*DaysPerIteration)
			if err != nil {
				t.Fatal(err)
			}

			info, err := Calculate(testSettings(), focusDate)
			if err != nil {
				t.Fatal(err)
			}
			if info.Index != tt.index {
				t.Fatalf("Index = %d, want %d", info.Index, tt.index)
			}
			if info.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", info.Label, tt.wantLabel)
			}
			if info.IsPlanning != tt.wantPlanning {
				t.Errorf("IsPlanning = %v, want %v", info.IsPlanning, tt.wantPlanning)
			}
		})
	}
}

func TestCalculateMonotonicAcrossAnchor(t *testing.T) {
	// Walk day by day across the anchor; the index must never decrease and
	// WithinPI must cycle through 1..6.
	settings := testSettings()
	prevIndex := -1 << 30

	focusDate := "2023-11-01"
	for i := 0; i < 120; i++ {
		info, err := Calculate(settings, focusDate)
		if err != nil {
			t.Fatal(err)
		}
		if info.Index < prevIndex {
			t.Fatalf("index decreased at %s: %d < %d", focusDate, info.Index, prevIndex)
		}
		if info.WithinPI < 1 || info.WithinPI > settings.IterationsPerPI {
			t.Fatalf("WithinPI out of range at %s: %d", focusDate, info.WithinPI)
		}
		if got := info.WithinPI == settings.IterationsPerPI; got != info.IsPlanning {
			t.Fatalf("IsPlanning mismatch at %s", focusDate)
		}
		prevIndex = info.Index

		focusDate, err = dateutil.AddDaysToDateString(focusDate, 1)
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestCalculateSinglePIPerIteration(t *testing.T) {
	settings := model.Settings{
		PIStartAnchorDate: "2024-01-01",
		IterationsPerPI:   1,
		StartingPINumber:  1,
	}

	info, err := Calculate(settings, "2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	// Every iteration is the planning iteration when the PI has one.
	if !info.IsPlanning || info.Label != "1.1 (PI Planning)" {
		t.Errorf("Label = %q, IsPlanning = %v", info.Label, info.IsPlanning)
	}
}

func TestCalculateRejectsBadConfiguration(t *testing.T) {
	settings := testSettings()
	settings.IterationsPerPI = 0

	if _, err := Calculate(settings, "2024-01-01"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestCalculateRejectsBadDates(t *testing.T) {
	settings := testSettings()

	if _, err := Calculate(settings, "01/01/2024"); !errors.Is(err, dateutil.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}

	settings.PIStartAnchorDate = "bogus"
	if _, err := Calculate(settings, "2024-01-01"); !errors.Is(err, dateutil.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}
