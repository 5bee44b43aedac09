package scheduler

// scoreGap evaluates one candidate gap for an item. It returns the adjusted
// start minute (shifted for the walk from the previous neighbor when the gap
// begins back-to-back with it), the total score, and the structured decision
// feeding the reasoning formatter. ok is false when the gap cannot hold the
// item at all.
func (d *dayScheduler) scoreGap(it Item, g gap) (start int, score float64, dec SlotDecision, ok bool) {
	minStart, eligible := d.minStartFor(it)
	if !eligible {
		return 0, 0, SlotDecision{}, false
	}

	start = g.start
	if start < minStart {
		start = minStart
	}

	prev, next := d.neighbors(start, start+it.DurationMin)

	// The start shifts past the walk from the previous stop; scheduleItem
	// carves the walk interval itself out of the open blocks on placement.
	walk := 0
	if prev != nil {
		walk = d.zones.WalkTime(prev.Zone, it.Zone)
		if start < prev.EndMin+walk {
			start = prev.EndMin + walk
		}
	}

	end := start + it.DurationMin
	if end > g.limit || !d.blocks.fits(start, end) {
		return 0, 0, SlotDecision{}, false
	}

	// The walk to the following stop must fit before it starts; a gap that
	// leaves less free time than that walk is not reachable in practice.
	if next != nil && end+d.zones.WalkTime(it.Zone, next.Zone) > next.StartMin {
		return 0, 0, SlotDecision{}, false
	}

	w := d.cfg.Weights
	wait := it.Curve.WaitAt(start)
	peak, _ := it.Curve.Peak()
	dailyMin, _ := it.Curve.Min()
	avg := it.Curve.Avg()

	// Wait component: normalized and inverted so lower waits score higher.
	waitScore := 100.0
	if peak > 0 {
		waitScore = (1 - wait/peak) * 100
	}
	nearMin := wait <= dailyMin+w.MinToleranceMin
	if nearMin {
		waitScore += w.NearMinBonus
	}
	if wait > avg+w.AvgToleranceMin {
		waitScore -= w.AboveAvgPenalty
	}

	// Proximity components against the immediate neighbors.
	prevScore := proximityNeutral
	if prev != nil {
		prevScore = d.zones.ProximityScore(prev.Zone, it.Zone)
	}
	nextScore := proximityNeutral
	if next != nil {
		nextScore = d.zones.ProximityScore(it.Zone, next.Zone)
	}
	proxScore := prevScore*w.ProximityPrev + nextScore*w.ProximityNext

	// Net-benefit rule: staying close only earns the proximity bonus when
	// the extra wait paid here, versus the item's daily minimum, stays
	// under the walk minutes saved times the configured rate.
	suppressed := false
	walkSaved := d.zones.distantWalkMin - walk
	if wait-dailyMin > float64(walkSaved)*w.NetBenefitRate {
		proxScore = 0
		suppressed = true
	}

	importance := d.cfg.tierScore(it.Tier) * w.Importance

	weightedWait := waitScore * w.Wait
	total := weightedWait + proxScore + importance

	dominant := "wait"
	if proxScore > weightedWait && proxScore > importance {
		dominant = "proximity"
	} else if importance > weightedWait && importance > proxScore {
		dominant = "importance"
	}

	dec = SlotDecision{
		ItemName:            it.Name,
		StartMin:            start,
		ExpectedWait:        wait,
		WalkMin:             walk,
		WaitScore:           weightedWait,
		ProximityScore:      proxScore,
		ImportanceScore:     importance,
		Dominant:            dominant,
		NearDailyMin:        nearMin,
		ProximitySuppressed: suppressed,
	}
	return start, total, dec, true
}

// findBestSlot evaluates all candidate gaps for an item and returns the
// single highest-scoring placement. Candidates arrive ordered by start time
// and only a strictly higher score displaces the incumbent, so ties break
// to the earliest start.
func (d *dayScheduler) findBestSlot(it Item, gaps []gap) (bestStart int, bestDec SlotDecision, found bool) {
	bestScore := 0.0
	for _, g := range gaps {
		start, score, dec, ok := d.scoreGap(it, g)
		if !ok {
			continue
		}
		if !found || score > bestScore {
			found = true
			bestScore = score
			bestStart = start
			bestDec = dec
		}
	}
	return bestStart, bestDec, found
}
