package scheduler

import "park-itinerary-service/internal/domain"

// anchorPhase converts fixed external events, the optional venue hop, and
// opted-in meal/break windows into immovable anchors and folds them into the
// block set. All anchors are committed before any item placement begins.
// Events that cannot fit are dropped with an insight, never a hard error.
func (d *dayScheduler) anchorPhase() {
	for _, ev := range d.req.Events {
		a := domain.Anchor{
			Kind:     ev.Kind,
			Name:     ev.Name,
			StartMin: ev.StartMin,
			EndMin:   ev.EndMin,
		}
		if ev.Kind == domain.AnchorShow {
			a.BufferBefore = d.cfg.ShowArrivalBufferMin
			a.BufferAfter = d.cfg.ShowDispersalMin
		}
		d.commitAnchor(a)
	}

	if hop := d.req.Prefs.Hop; hop != nil {
		if a, ok := transitionAnchor(hop, d.openMin, d.closeMin); ok && d.commitAnchor(a) {
			d.hopReadyMin = a.EndMin
		} else {
			d.addInsight("venue transition to %s does not fit the day and was skipped", hop.ToVenue)
		}
	}

	if d.req.Prefs.AutoMeals {
		d.placeMeal("lunch", d.cfg.LunchWindow)
		d.placeMeal("dinner", d.cfg.DinnerWindow)
	}
	if d.req.Prefs.IncludeBreak {
		d.placeWindowAnchor("afternoon break", domain.AnchorBreak, d.cfg.BreakWindow, d.cfg.BreakDurationMin)
	}
}

// commitAnchor validates an anchor against open hours and existing anchors,
// carves it out of the block set, and records its schedule entry. Returns
// false when the anchor was dropped.
func (d *dayScheduler) commitAnchor(a domain.Anchor) bool {
	if a.EndMin <= a.StartMin {
		d.addInsight("%s has an empty time window and was skipped", a.Name)
		return false
	}
	if a.BlockedStart() < d.openMin || a.BlockedEnd() > d.closeMin {
		d.addInsight("%s at %s falls outside operating hours and was skipped",
			a.Name, FormatClock(a.StartMin))
		return false
	}
	for _, other := range d.anchors {
		if overlaps(a.BlockedStart(), a.BlockedEnd(), other.BlockedStart(), other.BlockedEnd()) {
			d.addInsight("%s overlaps %s and was skipped", a.Name, other.Name)
			return false
		}
	}

	d.anchors = append(d.anchors, a)
	d.blocks.carve(a)
	d.insertEntry(domain.ScheduledItem{
		Kind:     entryKindFor(a.Kind),
		Name:     a.Name,
		StartMin: a.StartMin,
		EndMin:   a.EndMin,
		Reason:   "fixed commitment",
	})
	return true
}

// placeMeal inserts a meal anchor with a randomized duration inside the
// preferred window, scanning for a start that avoids existing anchors.
func (d *dayScheduler) placeMeal(name string, win Window) {
	d.placeWindowAnchor(name, domain.AnchorMeal, win, d.cfg.mealDuration())
}

func (d *dayScheduler) placeWindowAnchor(name string, kind domain.AnchorKind, win Window, duration int) {
	for start := win.StartMin; start+duration <= win.EndMin; start += d.cfg.GapStrideMin {
		if start < d.openMin || start+duration > d.closeMin {
			continue
		}
		if d.anchorOverlap(start, start+duration) {
			continue
		}

		d.commitAnchor(domain.Anchor{
			Kind:     kind,
			Name:     name,
			StartMin: start,
			EndMin:   start + duration,
		})
		return
	}

	d.addInsight("no room for %s in its preferred window", name)
}

func (d *dayScheduler) anchorOverlap(start, end int) bool {
	for _, a := range d.anchors {
		if overlaps(start, end, a.BlockedStart(), a.BlockedEnd()) {
			return true
		}
	}
	return false
}

func entryKindFor(k domain.AnchorKind) domain.EntryKind {
	switch k {
	case domain.AnchorShow:
		return domain.EntryShow
	case domain.AnchorMeal:
		return domain.EntryMeal
	case domain.AnchorBreak:
		return domain.EntryBreak
	case domain.AnchorTransition:
		return domain.EntryTransition
	default:
		return domain.EntryShow
	}
}
