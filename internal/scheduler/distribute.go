package scheduler

import (
	"fmt"
	"sort"

	"park-itinerary-service/internal/domain"
)

// TripItem is an attraction enriched with one wait curve per day
// classification, as consumed by the distribution phase.
type TripItem struct {
	domain.Attraction

	VenueID string
	Curves  map[domain.DayClass]domain.WaitCurve
}

// curveFor selects the curve matching a day class, falling back to the
// regular-day shape. ok is false when no usable curve exists at all.
func (t TripItem) curveFor(class domain.DayClass) (domain.WaitCurve, bool) {
	if c, ok := t.Curves[class]; ok && !c.IsZero() {
		return c, true
	}
	if c, ok := t.Curves[domain.DayRegular]; ok && !c.IsZero() {
		return c, true
	}
	return domain.WaitCurve{}, false
}

// TripDay describes one calendar day of a trip.
type TripDay struct {
	Class          domain.DayClass
	OpenMin        int
	CloseMin       int
	CloseBufferMin int
	Events         []EventInput
}

// distributeItems assigns every requested item to exactly one day of the
// trip before any day is scheduled, so no day is starved while another gets
// repeat visits. Each item goes to the day with the lowest predicted average
// wait that still has capacity; an earlier day keeps the item unless a later
// day saves more than the significance threshold.
func distributeItems(cfg Config, days []TripDay, items []TripItem, capacity int) ([][]TripItem, []string) {
	assignments := make([][]TripItem, len(days))
	var insights []string

	// Higher tiers pick their day first so capacity pressure lands on the
	// least important items.
	ordered := make([]TripItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Tier != ordered[j].Tier {
			return ordered[i].Tier > ordered[j].Tier
		}
		return ordered[i].Name < ordered[j].Name
	})

	for _, it := range ordered {
		avgs := make([]float64, len(days))
		for di, day := range days {
			if c, ok := it.curveFor(day.Class); ok {
				avgs[di] = c.Avg()
			} else {
				avgs[di] = cfg.NeutralWaitMin
			}
		}

		chosen := -1
		minAvg := 0.0
		for di := range days {
			if len(assignments[di]) >= capacity {
				continue
			}
			if chosen == -1 || avgs[di] < minAvg {
				chosen = di
				minAvg = avgs[di]
			}
		}
		if chosen == -1 {
			// Every day is at capacity; put it on the least loaded day and
			// let that day's fill phase account for it.
			chosen = 0
			for di := range days {
				if len(assignments[di]) < len(assignments[chosen]) {
					chosen = di
				}
			}
		} else {
			// Prefer the earliest day whose average is within the
			// significance threshold of the best one.
			for di := 0; di < chosen; di++ {
				if len(assignments[di]) >= capacity {
					continue
				}
				if avgs[di]-minAvg <= cfg.DistributionSignificance {
					chosen = di
					break
				}
			}
		}

		assignments[chosen] = append(assignments[chosen], it)

		if it.Tier == domain.TierFlagship {
			worst, worstDay := avgs[chosen], chosen
			for di, a := range avgs {
				if a > worst {
					worst, worstDay = a, di
				}
			}
			if worst-avgs[chosen] >= cfg.DistributionSignificance {
				insights = append(insights, fmt.Sprintf(
					"%s planned for day %d to save about %.0f minutes of waiting versus day %d",
					it.Name, chosen+1, worst-avgs[chosen], worstDay+1))
			}
		}
	}

	return assignments, insights
}
