package status

import (
	"errors"
	"fmt"
)

// Status is a day-status code for a person on a calendar date.
type Status string

const (
	// Default is a pseudo-status: applying it deletes the override and
	// reverts the day to its default (Working, or Weekend on Sat/Sun).
	Default Status = "DEFAULT"

	Working        Status = "W"
	Holiday        Status = "H"
	HalfDayHoliday Status = "HALF"
	BankHoliday    Status = "BH"
	NonWorkingDay  Status = "NWD"
	// ProgramIncrement marks PI planning days; it still counts as working.
	ProgramIncrement Status = "PI"
	// Weekend is derived from the calendar, never stored as an override.
	Weekend Status = "WEEKEND"
)

// ErrUnknownStatus is returned when parsing a code outside the enumeration.
var ErrUnknownStatus = errors.New("unknown status code")

// HalfDayPart says which half of a half-day holiday is taken off.
type HalfDayPart string

const (
	HalfDayAM HalfDayPart = "AM"
	HalfDayPM HalfDayPart = "PM"
)

// Options lists the statuses offered when entering an override. Weekend is
// excluded: it is derived, not stored.
func Options() []Status {
	return []Status{Default, Working, Holiday, HalfDayHoliday, BankHoliday, NonWorkingDay, ProgramIncrement}
}

// Parse validates a raw status code.
func Parse(raw string) (Status, error) {
	switch s := Status(raw); s {
	case Default, Working, Holiday, HalfDayHoliday, BankHoliday, NonWorkingDay, ProgramIncrement, Weekend:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// WorkingUnits returns the availability contribution of a status:
// 1.0 for Working and PI, 0.5 for a half-day holiday, 0 otherwise.
func (s Status) WorkingUnits() float64 {
	switch s {
	case Working, ProgramIncrement:
		return 1
	case HalfDayHoliday:
		return 0.5
	default:
		return 0
	}
}

// Meta carries the display metadata for a status.
type Meta struct {
	Label      string
	ShortLabel string
}

// MetaFor returns the display metadata for a status. For half-day holidays
// the short label is the half-day part when one is set.
func MetaFor(s Status, part HalfDayPart) Meta {
	switch s {
	case Holiday:
		return Meta{Label: "Holiday", ShortLabel: "H"}
	case BankHoliday:
		return Meta{Label: "Bank Holiday", ShortLabel: "BH"}
	case NonWorkingDay:
		return Meta{Label: "Non-working day", ShortLabel: "NWD"}
	case ProgramIncrement:
		return Meta{Label: "PI (working)", ShortLabel: "PI"}
	case HalfDayHoliday:
		short := "HALF"
		if part != "" {
			short = string(part)
		}
		return Meta{Label: "Half-day holiday", ShortLabel: short}
	case Weekend:
		return Meta{Label: "Weekend", ShortLabel: "WKND"}
	default:
		return Meta{Label: "Working", ShortLabel: "W"}
	}
}
