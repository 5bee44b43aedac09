package scheduler

import (
	"sort"

	"park-itinerary-service/internal/domain"
)

// headlinerPhase places each flagship item not already handled by rope-drop
// at its individually best-predicted hour. Overlapping optimal windows are
// contested: the larger savings delta wins and the loser is re-targeted via
// findAlternativeTimes. Losers with no alternative fall through to the fill
// phase as normal candidates rather than failing outright.
func (d *dayScheduler) headlinerPhase() {
	targets := make([]headlinerTarget, 0, len(d.req.Items))
	for _, it := range d.req.Items {
		if it.Tier != domain.TierFlagship || d.placed[it.ID] {
			continue
		}

		minStart, eligible := d.minStartFor(it)
		if !eligible {
			continue // hop-gated with no usable transition; fill reports it
		}

		_, bestHour := it.Curve.Min()
		start := bestHour * 60
		if start < minStart {
			start = minStart
		}
		if start+it.DurationMin > d.closeMin {
			start = d.closeMin - it.DurationMin
		}

		targets = append(targets, headlinerTarget{
			item:     it,
			startMin: start,
			endMin:   start + it.DurationMin,
			delta:    savingsDelta(it, start),
		})
	}

	// Contest winners place first: by the time a contested window is
	// reached a second time, the higher-delta item already owns it and the
	// loser is re-targeted below.
	sort.SliceStable(targets, func(i, j int) bool {
		ti, tj := targets[i], targets[j]
		if overlaps(ti.startMin, ti.endMin, tj.startMin, tj.endMin) {
			winner, _ := resolveContest(ti, tj)
			return winner.item.ID == ti.item.ID
		}
		if ti.delta != tj.delta {
			return ti.delta > tj.delta
		}
		return ti.item.Name < tj.item.Name
	})

	for _, t := range targets {
		if d.blocks.fits(t.startMin, t.endMin) {
			reason := d.cfg.ReasonFor(SlotDecision{
				ItemName:     t.item.Name,
				StartMin:     t.startMin,
				ExpectedWait: t.item.Curve.WaitAt(t.startMin),
				Dominant:     "importance",
			})
			if err := d.scheduleItem(t.item, t.startMin, 0, reason); err == nil {
				d.headlinersAtBest++
				continue
			}
		}

		if start, ok := d.findAlternativeTimes(t.item); ok {
			reason := d.cfg.ReasonFor(SlotDecision{
				ItemName:     t.item.Name,
				StartMin:     start,
				ExpectedWait: t.item.Curve.WaitAt(start),
				Dominant:     "wait",
			})
			if d.scheduleItem(t.item, start, 0, reason) == nil {
				continue
			}
		}
		// No window today; the item competes again in the fill phase.
	}

	if d.headlinersAtBest > 0 {
		d.addInsight("%d headliner(s) placed at their optimal hour", d.headlinersAtBest)
	}
}
