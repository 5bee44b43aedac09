package scheduler

import (
	"fmt"
	"sort"

	"park-itinerary-service/internal/domain"
)

// Item is an attraction enriched with its wait-time forecast, ready to be
// scheduled. Enrichment happens once, outside the engine; the engine never
// fetches data mid-computation.
type Item struct {
	domain.Attraction

	// VenueID is set for items belonging to a secondary venue reached via a
	// configured hop. Empty means the day's primary venue.
	VenueID string

	Curve domain.WaitCurve

	// CurveEstimated marks the neutral fallback curve substituted when no
	// forecast exists; surfaced as a lower-confidence insight.
	CurveEstimated bool
}

// EventInput is a fixed external entertainment event for the target date.
type EventInput struct {
	Name     string
	Kind     domain.AnchorKind
	StartMin int
	EndMin   int
}

// HopConfig describes a venue transition for multi-venue passes: the
// earliest eligible time of day and the travel-time table between venues.
type HopConfig struct {
	FromVenue        string
	ToVenue          string
	RequestedMin     int
	EligibleAfterMin int
	TravelMin        map[string]int
	DefaultTravelMin int
}

// travelFor looks up the configured travel time for a venue pair, with the
// default fallback when the pair is unconfigured.
func (h *HopConfig) travelFor(from, to string) int {
	if m, ok := h.TravelMin[from+"|"+to]; ok {
		return m
	}
	return h.DefaultTravelMin
}

// Preferences carries per-visitor scheduling choices.
type Preferences struct {
	ArrivalMin     int
	RopeDropIDs    []string
	AutoMeals      bool
	IncludeBreak   bool
	MaxItemsPerDay int
	Hop            *HopConfig
}

// DayRequest is the full input for one day's schedule build. All forecasts
// and hours are resolved before the engine is invoked.
type DayRequest struct {
	Day            int
	VenueID        string
	Class          domain.DayClass
	OpenMin        int
	CloseMin       int
	CloseBufferMin int
	Items          []Item
	Events         []EventInput

	// Rerides are optional repeat-visit candidates, only offered by the trip
	// orchestrator once every requested item is placed somewhere in the trip.
	Rerides []Item

	Prefs Preferences
}

// dayScheduler is the mutable-by-convention scheduling context threaded
// through the phases of a single day. One instance per invocation; never
// shared, never reused.
type dayScheduler struct {
	cfg   Config
	zones *ZoneMap
	req   DayRequest

	openMin  int
	closeMin int

	blocks   *blockSet
	anchors  []domain.Anchor
	entries  []domain.ScheduledItem
	overflow []domain.OverflowItem
	insights []string

	placed     map[string]bool
	overflowed map[string]bool

	// hopReadyMin is the earliest minute items of the hop target venue may
	// start; -1 when no usable transition exists.
	hopReadyMin int

	headlinersAtBest int
}

// BuildDaySchedule runs the full phase pipeline for one day:
// Setup -> Anchor -> Rope-Drop -> Headliner -> Fill -> Result.
// The computation is pure and synchronous; cancellation is simply not
// invoking it.
func BuildDaySchedule(cfg Config, zones *ZoneMap, req DayRequest) (*domain.DaySchedule, error) {
	d, err := newDayScheduler(cfg, zones, req)
	if err != nil {
		return nil, err
	}

	d.anchorPhase()
	d.ropeDropPhase()
	d.headlinerPhase()
	d.fillPhase()

	return d.buildResult()
}

func newDayScheduler(cfg Config, zones *ZoneMap, req DayRequest) (*dayScheduler, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range req.Items {
		if it.DurationMin <= 0 {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrInvalidDuration)
		}
	}

	open := req.OpenMin
	if req.Prefs.ArrivalMin > open {
		open = req.Prefs.ArrivalMin
	}
	closeEff := req.CloseMin - req.CloseBufferMin
	if closeEff <= open {
		return nil, fmt.Errorf("open %s close %s: %w",
			FormatClock(open), FormatClock(closeEff), ErrInvalidHours)
	}

	d := &dayScheduler{
		cfg:         cfg,
		zones:       zones,
		req:         req,
		openMin:     open,
		closeMin:    closeEff,
		blocks:      newBlockSet(open, closeEff, cfg.MinBlockMin, cfg.GapStrideMin),
		placed:      make(map[string]bool, len(req.Items)),
		overflowed:  make(map[string]bool),
		hopReadyMin: -1,
	}
	if d.zones == nil {
		d.zones = NewZoneMap(2, 8, 18, nil)
	}
	if d.cfg.ReasonFor == nil {
		d.cfg.ReasonFor = DefaultReason
	}

	// Substitute a neutral flat curve for items with no forecast; recovered
	// locally, surfaced only as a lower-confidence insight.
	for i := range d.req.Items {
		if d.req.Items[i].Curve.IsZero() {
			d.req.Items[i].Curve = domain.FlatCurve(open/60, closeEff/60-open/60+1, d.cfg.NeutralWaitMin)
			d.req.Items[i].CurveEstimated = true
			d.addInsight("no wait forecast for %s; using a neutral estimate (lower confidence)", d.req.Items[i].Name)
		}
	}

	return d, nil
}

func (d *dayScheduler) addInsight(format string, args ...any) {
	d.insights = append(d.insights, fmt.Sprintf(format, args...))
}

// insertEntry keeps the schedule ordered by start time as items are placed.
func (d *dayScheduler) insertEntry(e domain.ScheduledItem) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].StartMin > e.StartMin
	})
	d.entries = append(d.entries, domain.ScheduledItem{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = e
}

// neighbors returns the scheduled entries immediately before and after the
// interval [start, end), used as proximity anchors by the scorer.
func (d *dayScheduler) neighbors(start, end int) (prev, next *domain.ScheduledItem) {
	for i := range d.entries {
		e := &d.entries[i]
		if e.EndMin <= start {
			prev = e
		}
		if next == nil && e.StartMin >= end {
			next = e
		}
	}
	return prev, next
}

// minStartFor returns the earliest minute an item may begin. Items of the
// hop target venue cannot start before the transition completes.
func (d *dayScheduler) minStartFor(it Item) (int, bool) {
	if it.VenueID == "" || it.VenueID == d.req.VenueID {
		return d.openMin, true
	}
	if d.hopReadyMin < 0 {
		return 0, false
	}
	return d.hopReadyMin, true
}

// addOverflow records a structured rejection for a requested item.
func (d *dayScheduler) addOverflow(it Item, reason domain.OverflowReason, suggestion string) {
	d.overflowed[it.ID] = true
	d.overflow = append(d.overflow, domain.OverflowItem{
		AttractionID: it.ID,
		Name:         it.Name,
		Reason:       reason,
		Suggestion:   suggestion,
	})
}

// scheduleItem reserves the slot and records the placed entry. The walk
// happens immediately before the visit, so that interval is carved out of the
// open blocks too; remove tolerates overlap with already-dropped slivers.
func (d *dayScheduler) scheduleItem(it Item, start int, walk int, reason string) error {
	end := start + it.DurationMin
	if err := d.blocks.reserve(start, end); err != nil {
		return err
	}
	if walk > 0 {
		d.blocks.remove(start-walk, start)
	}

	d.placed[it.ID] = true
	d.insertEntry(domain.ScheduledItem{
		Kind:         domain.EntryAttraction,
		Name:         it.Name,
		AttractionID: it.ID,
		Zone:         it.Zone,
		StartMin:     start,
		EndMin:       end,
		ExpectedWait: it.Curve.WaitAt(start),
		WalkMin:      walk,
		Reason:       reason,
	})
	return nil
}

// attractionCount is the number of attraction visits placed so far, used to
// enforce the per-day capacity on re-ride passes.
func (d *dayScheduler) attractionCount() int {
	n := 0
	for _, e := range d.entries {
		if e.Kind == domain.EntryAttraction {
			n++
		}
	}
	return n
}

// maxItems resolves the per-day capacity preference.
func (d *dayScheduler) maxItems() int {
	if d.req.Prefs.MaxItemsPerDay > 0 {
		return d.req.Prefs.MaxItemsPerDay
	}
	return d.cfg.MaxItemsPerDay
}
