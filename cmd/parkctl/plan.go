package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"park-itinerary-service/internal/adapters/repositories"
	"park-itinerary-service/internal/config"
	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/scheduler"
)

type planOptions struct {
	venuePath       string
	attractionsPath string
	ids             []string
	classes         []string
	arrival         string
	ropeDrop        []string
	autoMeals       bool
	includeBreak    bool
	maxPerDay       int
	rerides         bool
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build an itinerary offline from a venue YAML file and an attractions JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.venuePath, "venue", "data/venues/adventure-park.yaml", "venue YAML file")
	cmd.Flags().StringVar(&opts.attractionsPath, "attractions", "data/seeds/attractions.json", "attractions JSON file")
	cmd.Flags().StringSliceVar(&opts.ids, "ids", nil, "attraction ids to schedule (default: all)")
	cmd.Flags().StringSliceVar(&opts.classes, "classes", []string{"regular"}, "day class per trip day (one entry per day)")
	cmd.Flags().StringVar(&opts.arrival, "arrival", "", "arrival time HH:MM (default: venue open)")
	cmd.Flags().StringSliceVar(&opts.ropeDrop, "rope-drop", nil, "attraction ids to target at opening")
	cmd.Flags().BoolVar(&opts.autoMeals, "meals", false, "auto-place lunch and dinner")
	cmd.Flags().BoolVar(&opts.includeBreak, "break", false, "place an afternoon rest break")
	cmd.Flags().IntVar(&opts.maxPerDay, "max-per-day", 0, "per-day attraction capacity (0 = default)")
	cmd.Flags().BoolVar(&opts.rerides, "rerides", false, "offer repeat visits once every attraction is placed")

	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	venueCfg, err := config.LoadVenueFile(opts.venuePath)
	if err != nil {
		return err
	}
	venue, err := venueCfg.DomainVenue()
	if err != nil {
		return err
	}

	seeds, err := loadSeeds(opts.attractionsPath)
	if err != nil {
		return err
	}
	selected, err := selectSeeds(seeds, opts.ids)
	if err != nil {
		return err
	}

	prefs := scheduler.Preferences{
		RopeDropIDs:    opts.ropeDrop,
		AutoMeals:      opts.autoMeals,
		IncludeBreak:   opts.includeBreak,
		MaxItemsPerDay: opts.maxPerDay,
	}
	if opts.arrival != "" {
		m, err := scheduler.ParseClock(opts.arrival)
		if err != nil {
			return fmt.Errorf("--arrival: %w", err)
		}
		prefs.ArrivalMin = m
	}

	cfg := scheduler.DefaultConfig()
	zones := venueCfg.ZoneMap()
	out := cmd.OutOrStdout()

	if len(opts.classes) == 1 {
		class := domain.DayClass(opts.classes[0])
		hours := venue.HoursFor(class)
		req := scheduler.DayRequest{
			Day:            1,
			VenueID:        venue.ID,
			Class:          class,
			OpenMin:        hours.OpenMin,
			CloseMin:       hours.CloseMin,
			CloseBufferMin: venueCfg.Venue.CloseBufferMin,
			Items:          seedsToItems(selected, class),
			Prefs:          prefs,
		}
		sched, err := scheduler.BuildDaySchedule(cfg, zones, req)
		if err != nil {
			return err
		}
		printDay(out, sched)
		return nil
	}

	days := make([]scheduler.TripDay, 0, len(opts.classes))
	for _, c := range opts.classes {
		class := domain.DayClass(c)
		hours := venue.HoursFor(class)
		days = append(days, scheduler.TripDay{
			Class:          class,
			OpenMin:        hours.OpenMin,
			CloseMin:       hours.CloseMin,
			CloseBufferMin: venueCfg.Venue.CloseBufferMin,
		})
	}

	trip, err := scheduler.BuildTripSchedule(cfg, zones, scheduler.TripRequest{
		VenueID:      venue.ID,
		Days:         days,
		Items:        seedsToTripItems(selected),
		Prefs:        prefs,
		AllowRerides: opts.rerides,
	})
	if err != nil {
		return err
	}

	for _, day := range trip.Days {
		printDay(out, day)
		fmt.Fprintln(out)
	}
	for _, in := range trip.Insights {
		fmt.Fprintf(out, "trip: %s\n", in)
	}
	return nil
}

func loadSeeds(path string) ([]repositories.AttractionSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load attractions: read %q: %w", path, err)
	}
	var seeds []repositories.AttractionSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("load attractions: parse %q: %w", path, err)
	}
	return seeds, nil
}

func selectSeeds(seeds []repositories.AttractionSeed, ids []string) ([]repositories.AttractionSeed, error) {
	if len(ids) == 0 {
		return seeds, nil
	}
	byID := make(map[string]repositories.AttractionSeed, len(seeds))
	for _, s := range seeds {
		byID[s.AttractionID] = s
	}
	out := make([]repositories.AttractionSeed, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown attraction id %q", id)
		}
		out = append(out, s)
	}
	return out, nil
}

func seedAttraction(s repositories.AttractionSeed) domain.Attraction {
	return domain.Attraction{
		ID:          s.AttractionID,
		Name:        s.Name,
		Zone:        s.Zone,
		DurationMin: s.DurationMin,
		Tier:        domain.ParseTier(s.Tier),
	}
}

func seedsToItems(seeds []repositories.AttractionSeed, class domain.DayClass) []scheduler.Item {
	items := make([]scheduler.Item, 0, len(seeds))
	for _, s := range seeds {
		it := scheduler.Item{Attraction: seedAttraction(s)}
		if f, ok := s.Forecasts[string(class)]; ok {
			it.Curve = domain.WaitCurve{StartHour: f.StartHour, Values: f.Waits}
		}
		items = append(items, it)
	}
	return items
}

func seedsToTripItems(seeds []repositories.AttractionSeed) []scheduler.TripItem {
	items := make([]scheduler.TripItem, 0, len(seeds))
	for _, s := range seeds {
		ti := scheduler.TripItem{
			Attraction: seedAttraction(s),
			Curves:     make(map[domain.DayClass]domain.WaitCurve, len(s.Forecasts)),
		}
		for class, f := range s.Forecasts {
			ti.Curves[domain.DayClass(class)] = domain.WaitCurve{StartHour: f.StartHour, Values: f.Waits}
		}
		items = append(items, ti)
	}
	return items
}

func printDay(out io.Writer, d *domain.DaySchedule) {
	fmt.Fprintf(out, "Day %d (%s) %s-%s\n", d.Day, d.Class,
		scheduler.FormatClock(d.OpenMin), scheduler.FormatClock(d.CloseMin))

	for _, e := range d.Entries {
		line := fmt.Sprintf("  %s-%s  %-10s %s",
			scheduler.FormatClock(e.StartMin), scheduler.FormatClock(e.EndMin), e.Kind, e.Name)
		if e.Kind == domain.EntryAttraction {
			line += fmt.Sprintf("  (wait ~%.0f min)", e.ExpectedWait)
		}
		if e.Reason != "" {
			line += "  " + e.Reason
		}
		fmt.Fprintln(out, line)
	}

	if len(d.Overflow) > 0 {
		fmt.Fprintln(out, "  could not fit:")
		for _, o := range d.Overflow {
			fmt.Fprintf(out, "    %s [%s] %s\n", o.Name, o.Reason, o.Suggestion)
		}
	}
	for _, in := range d.Insights {
		fmt.Fprintf(out, "  note: %s\n", in)
	}

	fmt.Fprintf(out, "  totals: wait %.0f min, walk %d min, %d scheduled, %d overflowed\n",
		d.Stats.TotalWaitMin, d.Stats.TotalWalkMin, d.Stats.ItemsScheduled, d.Stats.ItemsOverflowed)
}
