package scheduler

import (
	"fmt"

	"park-itinerary-service/internal/domain"
)

// buildResult assembles the final ordered schedule, statistics, insights,
// and the overflow list. Every requested item is accounted for exactly once
// as either a scheduled entry or an overflow entry; the invariant checks
// here guard against engine bugs, not caller input.
func (d *dayScheduler) buildResult() (*domain.DaySchedule, error) {
	// Safety net for the completeness invariant: anything neither placed
	// nor rejected becomes a no-capacity overflow.
	for _, it := range d.req.Items {
		if !d.placed[it.ID] && !d.overflowed[it.ID] {
			reason, suggestion := d.classifyOverflow(it)
			d.addOverflow(it, reason, suggestion)
		}
	}

	for i := 1; i < len(d.entries); i++ {
		prev, cur := d.entries[i-1], d.entries[i]
		if overlaps(prev.StartMin, prev.EndMin, cur.StartMin, cur.EndMin) {
			return nil, fmt.Errorf("build result: %q and %q overlap at %s",
				prev.Name, cur.Name, FormatClock(cur.StartMin))
		}
	}
	for _, e := range d.entries {
		if e.StartMin < d.openMin || e.EndMin > d.closeMin {
			return nil, fmt.Errorf("build result: %q at %s-%s outside %s-%s",
				e.Name, FormatClock(e.StartMin), FormatClock(e.EndMin),
				FormatClock(d.openMin), FormatClock(d.closeMin))
		}
	}

	requested := make(map[string]bool, len(d.req.Items))
	for _, it := range d.req.Items {
		requested[it.ID] = true
	}

	stats := domain.DayStats{ItemsOverflowed: len(d.overflow)}
	requestedScheduled := 0
	for _, e := range d.entries {
		stats.TotalWaitMin += e.ExpectedWait
		stats.TotalWalkMin += e.WalkMin
		if e.Kind == domain.EntryAttraction {
			stats.ItemsScheduled++
			if requested[e.AttractionID] {
				requestedScheduled++
			}
		}
	}

	d.addInsight("%d of %d requested attractions scheduled", requestedScheduled, len(d.req.Items))
	if stats.TotalWaitMin > 0 {
		d.addInsight("about %.0f minutes of predicted waiting across the day", stats.TotalWaitMin)
	}

	return &domain.DaySchedule{
		Day:      d.req.Day,
		Class:    d.req.Class,
		OpenMin:  d.req.OpenMin,
		CloseMin: d.req.CloseMin,
		Entries:  d.entries,
		Stats:    stats,
		Insights: d.insights,
		Overflow: d.overflow,
	}, nil
}
