package scheduler

import (
	"sort"

	"park-itinerary-service/internal/domain"
)

// fillPhase places every remaining requested item (including headliner
// fallbacks) into remaining gaps using the slot scorer, in descending
// importance order. With re-ride candidates present, additional passes fill
// leftover capacity with repeat visits.
func (d *dayScheduler) fillPhase() {
	remaining := make([]Item, 0, len(d.req.Items))
	for _, it := range d.req.Items {
		if !d.placed[it.ID] && !d.overflowed[it.ID] {
			remaining = append(remaining, it)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		if remaining[i].Tier != remaining[j].Tier {
			return remaining[i].Tier > remaining[j].Tier
		}
		return remaining[i].Name < remaining[j].Name
	})

	for _, it := range remaining {
		if !d.placeByScore(it) {
			reason, suggestion := d.classifyOverflow(it)
			d.addOverflow(it, reason, suggestion)
		}
	}

	d.rerideSweep()
}

// placeByScore runs the scorer across all open gaps and reserves the winner.
func (d *dayScheduler) placeByScore(it Item) bool {
	gaps := d.blocks.candidateGaps(it.DurationMin)
	start, dec, ok := d.findBestSlot(it, gaps)
	if !ok {
		return false
	}
	return d.scheduleItem(it, start, dec.WalkMin, d.cfg.ReasonFor(dec)) == nil
}

// rerideSweep fills remaining capacity with repeat visits. Candidates are
// only supplied by the trip orchestrator once every requested item has been
// scheduled at least once across the trip; each may repeat at most once per
// day.
func (d *dayScheduler) rerideSweep() {
	if len(d.req.Rerides) == 0 {
		return
	}

	for _, it := range d.req.Rerides {
		if d.attractionCount() >= d.maxItems() {
			return
		}
		if d.placed[it.ID] {
			continue
		}

		gaps := d.blocks.candidateGaps(it.DurationMin)
		start, dec, ok := d.findBestSlot(it, gaps)
		if !ok {
			continue
		}
		dec.Dominant = "wait"
		if d.scheduleItem(it, start, dec.WalkMin, "repeat visit: "+d.cfg.ReasonFor(dec)) == nil {
			d.addInsight("added a repeat visit to %s", it.Name)
		}
	}
}

// classifyOverflow maps an unplaceable item to its categorical reason.
func (d *dayScheduler) classifyOverflow(it Item) (domain.OverflowReason, string) {
	if _, eligible := d.minStartFor(it); !eligible {
		return domain.OverflowIneligibleTransition,
			"requested before the venue transition is eligible; plan it after the hop"
	}

	if it.DurationMin > d.closeMin-d.openMin {
		return domain.OverflowClosed,
			"the visit is longer than the operating day allows"
	}

	// The item would fit somewhere in the bare day, so only immovable
	// anchors are in the way.
	if d.fitsAroundScheduledOnly(it.DurationMin) {
		return domain.OverflowAnchorConflict,
			"every feasible window collides with a fixed commitment; try a day with fewer shows"
	}

	return domain.OverflowNoCapacity,
		"no gap of sufficient size remains; drop a lower-priority pick or add a day"
}

// fitsAroundScheduledOnly checks whether a duration would fit in the day if
// anchors were ignored and only scheduled attraction visits consumed time.
func (d *dayScheduler) fitsAroundScheduledOnly(duration int) bool {
	cursor := d.openMin
	for _, e := range d.entries {
		if e.Kind != domain.EntryAttraction {
			continue
		}
		if e.StartMin-cursor >= duration {
			return true
		}
		if e.EndMin > cursor {
			cursor = e.EndMin
		}
	}
	return d.closeMin-cursor >= duration
}
