// Package iteration derives which 14-day iteration and PI (Program
// Increment) a given date falls into, counted from a configurable anchor
// date.
package iteration

import (
	"errors"
	"fmt"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// DaysPerIteration is the fixed length of one iteration.
const DaysPerIteration = 14

// ErrInvalidConfiguration is returned for settings the numbering scheme is
// undefined over, such as a non-positive iterations-per-PI.
var ErrInvalidConfiguration = errors.New("invalid iteration configuration")

// Info describes the iteration containing a focus date.
type Info struct {
	// Index counts iterations from the anchor; the iteration starting at
	// the anchor is 0, and dates before the anchor yield negative indexes.
	Index     int
	StartDate string
	EndDate   string
	// DateRange holds the iteration's 14 consecutive date strings.
	DateRange []string
	PINumber  int
	// WithinPI is the 1-based position of the iteration inside its PI.
	WithinPI int
	// IsPlanning marks the final iteration of a PI.
	IsPlanning bool
	Label      string
}

// Calculate resolves the iteration containing focusDate under the given
// settings. The index uses mathematical floor division so numbering stays
// monotonic across the anchor instead of collapsing toward zero.
func Calculate(settings model.Settings, focusDate string) (*Info, error) {
	if settings.IterationsPerPI < 1 {
		return nil, fmt.Errorf("%w: iterations per PI must be at least 1, got %d",
			ErrInvalidConfiguration, settings.IterationsPerPI)
	}

	dayDifference, err := dateutil.DayDifference(settings.PIStartAnchorDate, focusDate)
	if err != nil {
		return nil, err
	}

	index := floorDiv(dayDifference, DaysPerIteration)

	start, err := dateutil.FromDateString(settings.PIStartAnchorDate)
	if err != nil {
		return nil, err
	}
	start = dateutil.AddDays(start, index*DaysPerIteration)

	dateRange := dateutil.TwoWeekRange(start)

	piNumber := settings.StartingPINumber + floorDiv(index, settings.IterationsPerPI)
	withinPI := floorMod(index, settings.IterationsPerPI) + 1
	isPlanning := withinPI == settings.IterationsPerPI

	label := fmt.Sprintf("%d.%d", piNumber, withinPI)
	if isPlanning {
		label += " (PI Planning)"
	}

	return &Info{
		Index:      index,
		StartDate:  dateRange[0],
		EndDate:    dateRange[len(dateRange)-1],
		DateRange:  dateRange,
		PINumber:   piNumber,
		WithinPI:   withinPI,
		IsPlanning: isPlanning,
		Label:      label,
	}, nil
}

// floorDiv rounds toward negative infinity, unlike Go's truncating "/".
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is always non-negative for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
