// Package model defines the persisted data shapes shared by the
// availability core: the team roster, the sparse override map, and the
// iteration settings.
package model

import (
	"errors"
	"fmt"

	"github.com/username/holiday-tracker/internal/status"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// ErrInvalidSettings is returned when iteration settings fall outside the
// accepted ranges.
var ErrInvalidSettings = errors.New("invalid settings")

// MaxIterationsPerPI bounds the iterations-per-PI setting.
const MaxIterationsPerPI = 20

// Person is a team member. ID is unique and immutable once created.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Override is a per-person, per-date exception to the default Working
// status. HalfDayPart is only meaningful when Status is HALF.
type Override struct {
	Status      status.Status      `json:"status"`
	HalfDayPart status.HalfDayPart `json:"halfDayPart,omitempty"`
}

// Overrides maps person ID to date string to override. Absent entries mean
// default status: Working on weekdays, Weekend on Saturday/Sunday.
type Overrides map[string]map[string]Override

// Get returns the override for a person on a date, if one is stored.
func (o Overrides) Get(personID, dateString string) (Override, bool) {
	entry, ok := o[personID][dateString]
	return entry, ok
}

// Settings anchors the iteration numbering scheme.
type Settings struct {
	PIStartAnchorDate string `json:"piStartAnchorDate"`
	IterationsPerPI   int    `json:"iterationsPerPi"`
	StartingPINumber  int    `json:"startingPiNumber"`
}

// Validate checks the settings before they reach the iteration calculator.
func (s Settings) Validate() error {
	if _, err := dateutil.FromDateString(s.PIStartAnchorDate); err != nil {
		return fmt.Errorf("%w: anchor date: %v", ErrInvalidSettings, err)
	}
	if s.IterationsPerPI < 1 || s.IterationsPerPI > MaxIterationsPerPI {
		return fmt.Errorf("%w: iterations per PI must be 1-%d, got %d",
			ErrInvalidSettings, MaxIterationsPerPI, s.IterationsPerPI)
	}
	if s.StartingPINumber < 1 {
		return fmt.Errorf("%w: starting PI number must be at least 1, got %d",
			ErrInvalidSettings, s.StartingPINumber)
	}
	return nil
}

// Snapshot is the full persisted state. Mutations replace the whole
// snapshot; nothing patches it in place.
type Snapshot struct {
	People    []Person  `json:"people"`
	Overrides Overrides `json:"overrides"`
	Settings  Settings  `json:"settings"`
}

// DefaultSettings returns the seed iteration settings: anchor at the given
// date, six iterations per PI, numbering from PI 7.
func DefaultSettings(anchorDate string) Settings {
	return Settings{
		PIStartAnchorDate: anchorDate,
		IterationsPerPI:   6,
		StartingPINumber:  7,
	}
}

// SamplePeople returns the starter roster used when no snapshot exists yet.
func SamplePeople() []Person {
	return []Person{
		{ID: "p-alice", Name: "Alice Morgan", Role: "Dev"},
		{ID: "p-ben", Name: "Ben Carter", Role: "Dev"},
		{ID: "p-chloe", Name: "Chloe Singh", Role: "QA"},
		{ID: "p-dan", Name: "Dan Okafor", Role: "BA"},
		{ID: "p-erin", Name: "Erin Walsh", Role: ""},
	}
}

// DefaultSnapshot returns the snapshot seeded on first run.
func DefaultSnapshot(anchorDate string) Snapshot {
	return Snapshot{
		People:    SamplePeople(),
		Overrides: Overrides{},
		Settings:  DefaultSettings(anchorDate),
	}
}
