package scheduler

import "sort"

// headlinerTarget pairs a flagship item with its individually optimal
// window.
type headlinerTarget struct {
	item     Item
	startMin int
	endMin   int
	delta    float64
}

// resolveContest decides which of two flagship items wins an overlapping
// optimal window: the larger savings delta takes it, the loser is
// re-evaluated against its next-best hour. Anchors never participate; they
// always win by having carved their space before any item placement.
func resolveContest(a, b headlinerTarget) (winner, loser headlinerTarget) {
	if b.delta > a.delta {
		return b, a
	}
	return a, b
}

// findAlternativeTimes searches for the best remaining window for an item
// whose optimal slot was taken, trying hours in ascending order of predicted
// wait. The taken window is excluded implicitly: reserved intervals are no
// longer part of any open block.
func (d *dayScheduler) findAlternativeTimes(it Item) (int, bool) {
	minStart, eligible := d.minStartFor(it)
	if !eligible {
		return 0, false
	}

	type hourWait struct {
		minute int
		wait   float64
	}
	hours := make([]hourWait, 0, len(it.Curve.Values))
	for i := range it.Curve.Values {
		m := (it.Curve.StartHour + i) * 60
		if m < minStart {
			m = minStart
		}
		hours = append(hours, hourWait{minute: m, wait: it.Curve.Values[i]})
	}
	sort.SliceStable(hours, func(i, j int) bool {
		if hours[i].wait != hours[j].wait {
			return hours[i].wait < hours[j].wait
		}
		return hours[i].minute < hours[j].minute
	})

	for _, h := range hours {
		if d.blocks.fits(h.minute, h.minute+it.DurationMin) {
			return h.minute, true
		}
	}

	// No hour-aligned window left; settle for the earliest opening anywhere.
	if start, ok := d.blocks.earliestFitAfter(minStart, it.DurationMin); ok {
		return start, true
	}
	return 0, false
}
