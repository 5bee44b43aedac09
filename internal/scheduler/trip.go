package scheduler

import (
	"fmt"
	"sort"

	"park-itinerary-service/internal/domain"
)

// TripRequest is the full input for a multi-day trip build.
type TripRequest struct {
	VenueID      string
	Days         []TripDay
	Items        []TripItem
	Prefs        Preferences
	AllowRerides bool
}

// BuildTripSchedule runs the Distribution phase once, then builds each day
// in order, threading trip-level state (which items have been scheduled at
// least once) explicitly from day to day. Re-rides are only offered once
// every requested item has appeared somewhere in the trip.
func BuildTripSchedule(cfg Config, zones *ZoneMap, req TripRequest) (*domain.TripSchedule, error) {
	if len(req.Days) == 0 {
		return nil, ErrNoDays
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range req.Items {
		if it.DurationMin <= 0 {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrInvalidDuration)
		}
	}

	capacity := cfg.MaxItemsPerDay
	if req.Prefs.MaxItemsPerDay > 0 {
		capacity = req.Prefs.MaxItemsPerDay
	}

	assignments, tripInsights := distributeItems(cfg, req.Days, req.Items, capacity)
	trip := &domain.TripSchedule{Insights: tripInsights}

	placedOnce := make(map[string]bool, len(req.Items))

	for di, day := range req.Days {
		dayItems := make([]Item, 0, len(assignments[di]))
		for _, ti := range assignments[di] {
			dayItems = append(dayItems, tripItemForDay(ti, day.Class))
		}

		if len(dayItems) == 0 {
			trip.Days = append(trip.Days, freeDaySchedule(cfg, day, di+1))
			continue
		}

		dayReq := DayRequest{
			Day:            di + 1,
			VenueID:        req.VenueID,
			Class:          day.Class,
			OpenMin:        day.OpenMin,
			CloseMin:       day.CloseMin,
			CloseBufferMin: day.CloseBufferMin,
			Items:          dayItems,
			Events:         day.Events,
			Prefs:          req.Prefs,
		}

		// Only the whole-trip completeness rule unlocks repeats: every
		// requested item must already be placed on an earlier day.
		if req.AllowRerides && allPlaced(req.Items, placedOnce) {
			dayReq.Rerides = rerideCandidates(req.Items, day.Class, placedOnce)
		}

		sched, err := BuildDaySchedule(cfg, zones, dayReq)
		if err != nil {
			return nil, fmt.Errorf("build trip: day %d: %w", di+1, err)
		}

		for _, e := range sched.Entries {
			if e.Kind == domain.EntryAttraction && e.AttractionID != "" {
				placedOnce[e.AttractionID] = true
			}
		}

		trip.Days = append(trip.Days, sched)
	}

	return trip, nil
}

// freeDaySchedule renders a day that received no attractions. Fixed events
// still belong on the timetable, so the anchor phase runs against an
// otherwise empty day.
func freeDaySchedule(cfg Config, day TripDay, dayNum int) *domain.DaySchedule {
	closeEff := day.CloseMin - day.CloseBufferMin
	d := &dayScheduler{
		cfg: cfg,
		req: DayRequest{
			Day:      dayNum,
			Class:    day.Class,
			OpenMin:  day.OpenMin,
			CloseMin: day.CloseMin,
			Events:   day.Events,
		},
		openMin:  day.OpenMin,
		closeMin: closeEff,
		blocks:   newBlockSet(day.OpenMin, closeEff, cfg.MinBlockMin, cfg.GapStrideMin),
	}
	d.anchorPhase()
	d.addInsight("no attractions assigned; a free day for shows and wandering")

	return &domain.DaySchedule{
		Day:      dayNum,
		Class:    day.Class,
		OpenMin:  day.OpenMin,
		CloseMin: day.CloseMin,
		Entries:  d.entries,
		Insights: d.insights,
	}
}

func tripItemForDay(ti TripItem, class domain.DayClass) Item {
	curve, ok := ti.curveFor(class)
	return Item{
		Attraction:     ti.Attraction,
		VenueID:        ti.VenueID,
		Curve:          curve,
		CurveEstimated: !ok,
	}
}

func allPlaced(items []TripItem, placedOnce map[string]bool) bool {
	for _, it := range items {
		if !placedOnce[it.ID] {
			return false
		}
	}
	return true
}

// rerideCandidates orders previously enjoyed items by ascending average
// wait, so the cheapest repeats are attempted first.
func rerideCandidates(items []TripItem, class domain.DayClass, placedOnce map[string]bool) []Item {
	cands := make([]Item, 0, len(items))
	for _, it := range items {
		if placedOnce[it.ID] {
			cands = append(cands, tripItemForDay(it, class))
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Curve.Avg() < cands[j].Curve.Avg()
	})
	return cands
}
