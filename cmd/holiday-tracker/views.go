package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/holiday-tracker/internal/iteration"
	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/store"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// viewFilters are the roster filters shared by the view commands.
type viewFilters struct {
	nameSearch string
	roleFilter string
}

func (f *viewFilters) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nameSearch, "name", "", "Filter people by name substring")
	cmd.Flags().StringVar(&f.roleFilter, "role", store.RoleFilterAll, "Filter people by exact role")
}

func (f *viewFilters) apply(people []model.Person) []model.Person {
	return store.FilterPeople(people, f.nameSearch, f.roleFilter)
}

func todayCmd() *cobra.Command {
	var focusDate string
	var filters viewFilters

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show per-person availability for the focus date",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			if focusDate == "" {
				focusDate = defaultFocusDate()
			}

			snapshot := s.Snapshot()
			people := filters.apply(snapshot.People)

			outPrintln("Today")
			outPrintln("═════")
			return writeDayReport(outWriter, people, snapshot.Overrides, focusDate)
		},
	}

	cmd.Flags().StringVar(&focusDate, "date", "", "Focus date (YYYY-MM-DD, default: next working day)")
	filters.register(cmd)

	return cmd
}

func iterationCmd() *cobra.Command {
	var focusDate string
	var filters viewFilters

	cmd := &cobra.Command{
		Use:   "iteration",
		Short: "Show the iteration containing the focus date with coverage stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			if focusDate == "" {
				focusDate = defaultFocusDate()
			}

			snapshot := s.Snapshot()
			info, err := iteration.Calculate(snapshot.Settings, focusDate)
			if err != nil {
				return err
			}

			startDisplay, err := dateutil.DisplayDate(info.StartDate)
			if err != nil {
				return err
			}
			endDisplay, err := dateutil.DisplayDate(info.EndDate)
			if err != nil {
				return err
			}

			outPrintf("Iteration %s\n", info.Label)
			outPrintf("%s .. %s\n", startDisplay, endDisplay)
			outPrintln("═════════════════════════")

			people := filters.apply(snapshot.People)
			return writeRangeReport(outWriter, people, snapshot.Overrides, info.DateRange)
		},
	}

	cmd.Flags().StringVar(&focusDate, "date", "", "Focus date (YYYY-MM-DD, default: next working day)")
	filters.register(cmd)

	return cmd
}

func monthCmd() *cobra.Command {
	var yearMonth string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show coverage stats for a calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			if yearMonth == "" {
				yearMonth = dateutil.CurrentYearMonth()
			}

			dateRange, err := dateutil.MonthRange(yearMonth)
			if err != nil {
				return err
			}

			snapshot := s.Snapshot()
			outPrintf("Month %s\n", yearMonth)
			outPrintln("═════════════")
			return writeRangeReport(outWriter, snapshot.People, snapshot.Overrides, dateRange)
		},
	}

	cmd.Flags().StringVar(&yearMonth, "month", "", "Month to show (YYYY-MM, default: current month)")

	return cmd
}

func rangeCmd() *cobra.Command {
	var fromDate, toDate string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show coverage stats for an arbitrary date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromDate == "" || toDate == "" {
				return fmt.Errorf("both --from and --to are required")
			}

			s, err := openStore()
			if err != nil {
				return err
			}

			// Reversed bounds are swapped, not rejected.
			dateRange, err := dateutil.DateRange(fromDate, toDate)
			if err != nil {
				return err
			}

			snapshot := s.Snapshot()
			outPrintf("Range %s .. %s\n", dateRange[0], dateRange[len(dateRange)-1])
			outPrintln("═══════════════════════════")
			return writeRangeReport(outWriter, snapshot.People, snapshot.Overrides, dateRange)
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "Range end (YYYY-MM-DD)")

	return cmd
}
