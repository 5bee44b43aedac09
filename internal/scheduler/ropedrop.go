package scheduler

import "sort"

// savingsDelta is the primary prioritization currency: predicted peak-hour
// wait minus the predicted wait at the candidate minute.
func savingsDelta(it Item, atMin int) float64 {
	peak, _ := it.Curve.Peak()
	return peak - it.Curve.WaitAt(atMin)
}

// ropeDropPhase places the user-nominated arrive-early targets back-to-back
// from venue open, ordered by descending savings delta. Targets whose delta
// falls under the configured threshold are not worth prioritizing and fall
// through to the later phases. Placement bypasses the slot scorer: the order
// is fixed by this phase's own rule.
func (d *dayScheduler) ropeDropPhase() {
	if len(d.req.Prefs.RopeDropIDs) == 0 {
		return
	}

	byID := make(map[string]Item, len(d.req.Items))
	for _, it := range d.req.Items {
		byID[it.ID] = it
	}

	type target struct {
		item  Item
		delta float64
	}
	targets := make([]target, 0, len(d.req.Prefs.RopeDropIDs))
	for _, id := range d.req.Prefs.RopeDropIDs {
		it, ok := byID[id]
		if !ok || d.placed[it.ID] {
			continue
		}
		if delta := savingsDelta(it, d.openMin); delta >= d.cfg.RopeDropMinSavingsMin {
			targets = append(targets, target{item: it, delta: delta})
		}
	}

	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].delta != targets[j].delta {
			return targets[i].delta > targets[j].delta
		}
		return targets[i].item.Name < targets[j].item.Name
	})
	if len(targets) > d.cfg.MaxRopeDrop {
		targets = targets[:d.cfg.MaxRopeDrop]
	}

	cursor := d.openMin
	prevZone := ""
	for _, t := range targets {
		minStart, eligible := d.minStartFor(t.item)
		if !eligible || minStart > d.openMin {
			// A hop-venue target cannot be at this venue's gate at opening;
			// it competes after the transition in the later phases.
			continue
		}

		walk := 0
		if prevZone != "" {
			walk = d.zones.WalkTime(prevZone, t.item.Zone)
		}
		start := cursor + walk

		if err := d.scheduleItem(t.item, start, walk, "rope drop: lowest wait of the day at opening"); err != nil {
			// An anchor took the slot; the target competes normally later.
			continue
		}
		cursor = start + t.item.DurationMin
		prevZone = t.item.Zone
	}
}
