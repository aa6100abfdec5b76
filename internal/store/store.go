// Package store persists the tracker's snapshot (roster, overrides,
// settings) to a JSON file. Every mutation builds a new snapshot from the
// old one plus the delta; the stored snapshot is never patched in place, so
// values handed out to the computation core cannot alias pending edits.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/status"
)

// Change is a status edit applied to a person over a date range.
type Change struct {
	Status      status.Status
	HalfDayPart status.HalfDayPart
}

// Store manages the snapshot file.
type Store struct {
	filePath string
	snapshot model.Snapshot
	logger   *zap.Logger
}

// New creates a store backed by the given file. defaultSnapshot seeds the
// state when the file does not exist yet.
func New(filePath string, defaultSnapshot model.Snapshot, logger *zap.Logger) *Store {
	return &Store{
		filePath: filePath,
		snapshot: defaultSnapshot,
		logger:   logger,
	}
}

// Load reads the snapshot from file. A missing file is not an error: the
// default snapshot stands and is written on the first save.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("No snapshot file yet, starting from defaults",
				zap.String("file", s.filePath))
			return nil
		}
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	if snapshot.Overrides == nil {
		snapshot.Overrides = model.Overrides{}
	}

	s.snapshot = snapshot
	s.logger.Info("Snapshot loaded",
		zap.String("file", s.filePath),
		zap.Int("people", len(snapshot.People)))

	return nil
}

// Save writes the snapshot to file via a temp file and rename, so a crash
// mid-write cannot truncate the previous state.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	s.logger.Info("Snapshot saved",
		zap.String("file", s.filePath),
		zap.Int("people", len(s.snapshot.People)))

	return nil
}

// Snapshot returns the current state.
func (s *Store) Snapshot() model.Snapshot {
	return s.snapshot
}

// ApplyChange applies a status change for one person across a date range
// and saves. A Default status deletes the overrides instead; the half-day
// part is kept only for half-day holidays.
func (s *Store) ApplyChange(personID string, dateRange []string, change Change) error {
	part := change.HalfDayPart
	if change.Status != status.HalfDayHoliday {
		part = ""
	}

	next := s.snapshot
	next.Overrides = cloneOverridesExcept(s.snapshot.Overrides, personID)

	personOverrides := make(map[string]model.Override, len(s.snapshot.Overrides[personID])+len(dateRange))
	for dateString, entry := range s.snapshot.Overrides[personID] {
		personOverrides[dateString] = entry
	}

	for _, dateString := range dateRange {
		if change.Status == status.Default {
			delete(personOverrides, dateString)
		} else {
			personOverrides[dateString] = model.Override{Status: change.Status, HalfDayPart: part}
		}
	}

	if len(personOverrides) > 0 {
		next.Overrides[personID] = personOverrides
	}

	s.snapshot = next
	s.logger.Info("Override change applied",
		zap.String("person", personID),
		zap.String("status", string(change.Status)),
		zap.Int("dates", len(dateRange)))

	return s.Save()
}

// SetPeople replaces the roster and prunes overrides belonging to removed
// people, then saves.
func (s *Store) SetPeople(people []model.Person) error {
	validIDs := make(map[string]bool, len(people))
	for _, person := range people {
		validIDs[person.ID] = true
	}

	next := s.snapshot
	next.People = append([]model.Person(nil), people...)
	next.Overrides = make(model.Overrides, len(s.snapshot.Overrides))
	for personID, personOverrides := range s.snapshot.Overrides {
		if validIDs[personID] {
			next.Overrides[personID] = personOverrides
		}
	}

	s.snapshot = next
	return s.Save()
}

// SaveSettings validates and replaces the iteration settings, then saves.
func (s *Store) SaveSettings(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	next := s.snapshot
	next.Settings = settings

	s.snapshot = next
	s.logger.Info("Settings saved",
		zap.String("anchor", settings.PIStartAnchorDate),
		zap.Int("iterations_per_pi", settings.IterationsPerPI),
		zap.Int("starting_pi", settings.StartingPINumber))

	return s.Save()
}

// Reset restores the given default snapshot and saves.
func (s *Store) Reset(defaultSnapshot model.Snapshot) error {
	s.snapshot = defaultSnapshot
	s.logger.Info("Snapshot reset to defaults")
	return s.Save()
}

// cloneOverridesExcept shallow-copies the override map, skipping the entry
// for one person (the caller supplies a fresh map for them).
func cloneOverridesExcept(overrides model.Overrides, personID string) model.Overrides {
	clone := make(model.Overrides, len(overrides)+1)
	for id, personOverrides := range overrides {
		if id != personID {
			clone[id] = personOverrides
		}
	}
	return clone
}
