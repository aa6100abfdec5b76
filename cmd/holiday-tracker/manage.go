package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/holiday-tracker/internal/coverage"
	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/status"
	"github.com/username/holiday-tracker/internal/store"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

func setCmd() *cobra.Command {
	var personID, rawStatus, halfPart, fromDate, toDate string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Apply a status override for a person across a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if personID == "" || rawStatus == "" || fromDate == "" {
				return fmt.Errorf("--person, --status and --from are required")
			}

			parsedStatus, err := status.Parse(rawStatus)
			if err != nil {
				return err
			}
			if parsedStatus == status.Weekend {
				return fmt.Errorf("WEEKEND is derived from the calendar and cannot be set")
			}

			var part status.HalfDayPart
			switch halfPart {
			case "":
			case "AM":
				part = status.HalfDayAM
			case "PM":
				part = status.HalfDayPM
			default:
				return fmt.Errorf("--half must be AM or PM, got %q", halfPart)
			}

			if toDate == "" {
				toDate = fromDate
			}
			dateRange, err := dateutil.DateRange(fromDate, toDate)
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			if findPerson(s.Snapshot().People, personID) == nil {
				return fmt.Errorf("unknown person: %s", personID)
			}

			change := store.Change{Status: parsedStatus, HalfDayPart: part}
			if err := s.ApplyChange(personID, dateRange, change); err != nil {
				return err
			}

			if parsedStatus == status.Default {
				outPrintf("Cleared overrides for %s on %d date(s)\n", personID, len(dateRange))
			} else {
				outPrintf("Set %s for %s on %d date(s)\n", parsedStatus, personID, len(dateRange))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&personID, "person", "", "Person ID")
	cmd.Flags().StringVar(&rawStatus, "status", "", "Status code (DEFAULT, W, H, HALF, BH, NWD, PI)")
	cmd.Flags().StringVar(&halfPart, "half", "", "Half-day part for HALF status (AM or PM)")
	cmd.Flags().StringVar(&fromDate, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "Last date (YYYY-MM-DD, default: same as --from)")

	return cmd
}

func peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage the team roster",
	}

	cmd.AddCommand(peopleListCmd())
	cmd.AddCommand(peopleAddCmd())
	cmd.AddCommand(peopleRemoveCmd())

	return cmd
}

func peopleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			people := s.Snapshot().People
			for _, person := range people {
				outPrintf("%-12s %-20s %s\n", person.ID, person.Name, coverage.RoleName(person))
			}
			outPrintf("%d people\n", len(people))
			return nil
		},
	}
}

func peopleAddCmd() *cobra.Command {
	var id, name, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || name == "" {
				return fmt.Errorf("--id and --name are required")
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			people := s.Snapshot().People
			if findPerson(people, id) != nil {
				return fmt.Errorf("person %s already exists", id)
			}

			next := append(append([]model.Person(nil), people...), model.Person{ID: id, Name: name, Role: role})
			if err := s.SetPeople(next); err != nil {
				return err
			}

			outPrintf("Added %s (%s)\n", name, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Unique person ID")
	cmd.Flags().StringVar(&name, "name", "", "Person name")
	cmd.Flags().StringVar(&role, "role", "", "Person role")

	return cmd
}

func peopleRemoveCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a person and their overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			people := s.Snapshot().People
			if findPerson(people, id) == nil {
				return fmt.Errorf("unknown person: %s", id)
			}

			next := make([]model.Person, 0, len(people)-1)
			for _, person := range people {
				if person.ID != id {
					next = append(next, person)
				}
			}
			if err := s.SetPeople(next); err != nil {
				return err
			}

			outPrintf("Removed %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Person ID to remove")

	return cmd
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change iteration settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current iteration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			settings := s.Snapshot().Settings
			outPrintf("PI start anchor:    %s\n", settings.PIStartAnchorDate)
			outPrintf("Iterations per PI:  %d\n", settings.IterationsPerPI)
			outPrintf("Starting PI number: %d\n", settings.StartingPINumber)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var anchor string
	var iterationsPerPI, startingPI int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change iteration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			settings := s.Snapshot().Settings
			if cmd.Flags().Changed("anchor") {
				settings.PIStartAnchorDate = anchor
			}
			if cmd.Flags().Changed("iterations-per-pi") {
				settings.IterationsPerPI = iterationsPerPI
			}
			if cmd.Flags().Changed("starting-pi") {
				settings.StartingPINumber = startingPI
			}

			if err := s.SaveSettings(settings); err != nil {
				return err
			}

			outPrintf("Settings saved: anchor %s, %d iterations per PI, starting PI %d\n",
				settings.PIStartAnchorDate, settings.IterationsPerPI, settings.StartingPINumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "PI start anchor date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&iterationsPerPI, "iterations-per-pi", 0, fmt.Sprintf("Iterations per PI (1-%d)", model.MaxIterationsPerPI))
	cmd.Flags().IntVar(&startingPI, "starting-pi", 0, "Starting PI number")

	return cmd
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the snapshot to the sample roster and default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			anchor := dateutil.ToDateString(dateutil.Today())
			if err := s.Reset(model.DefaultSnapshot(anchor)); err != nil {
				return err
			}

			outPrintln("Snapshot reset to defaults")
			return nil
		},
	}
}

func findPerson(people []model.Person, id string) *model.Person {
	for i := range people {
		if people[i].ID == id {
			return &people[i]
		}
	}
	return nil
}
