package model

import (
	"testing"

	"github.com/username/holiday-tracker/internal/status"
)

func TestOverridesGet(t *testing.T) {
	overrides := Overrides{
		"p1": {"2024-01-08": {Status: status.Holiday}},
	}

	if entry, ok := overrides.Get("p1", "2024-01-08"); !ok || entry.Status != status.Holiday {
		t.Errorf("Get(p1, 2024-01-08) = %+v, %v", entry, ok)
	}
	if _, ok := overrides.Get("p1", "2024-01-09"); ok {
		t.Error("Get found an override for an unset date")
	}
	if _, ok := overrides.Get("p2", "2024-01-08"); ok {
		t.Error("Get found an override for an unknown person")
	}

	// Lookups on a nil map are safe.
	var empty Overrides
	if _, ok := empty.Get("p1", "2024-01-08"); ok {
		t.Error("Get on nil overrides returned an entry")
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snapshot := DefaultSnapshot("2024-01-01")

	if len(snapshot.People) == 0 {
		t.Error("default snapshot has an empty roster")
	}
	if snapshot.Overrides == nil || len(snapshot.Overrides) != 0 {
		t.Errorf("default overrides = %v, want empty non-nil map", snapshot.Overrides)
	}
	if err := snapshot.Settings.Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}

	ids := make(map[string]bool)
	for _, person := range snapshot.People {
		if person.ID == "" || ids[person.ID] {
			t.Errorf("person %q has a missing or duplicate ID", person.Name)
		}
		ids[person.ID] = true
	}
}
