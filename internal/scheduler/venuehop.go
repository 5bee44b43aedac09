package scheduler

import "park-itinerary-service/internal/domain"

// transitionAnchor computes the earliest legal venue transition for a
// configured hop: the later of the requested time and the eligibility time,
// lasting the configured travel time for the venue pair. Exactly one
// transition anchor is produced per configured hop per day. ok is false when
// the transition cannot complete inside the schedulable day.
func transitionAnchor(hop *HopConfig, openMin, closeMin int) (domain.Anchor, bool) {
	start := hop.RequestedMin
	if hop.EligibleAfterMin > start {
		start = hop.EligibleAfterMin
	}
	if start < openMin {
		start = openMin
	}

	travel := hop.travelFor(hop.FromVenue, hop.ToVenue)
	end := start + travel
	if end > closeMin {
		return domain.Anchor{}, false
	}

	return domain.Anchor{
		Kind:     domain.AnchorTransition,
		Name:     hop.FromVenue + " to " + hop.ToVenue,
		StartMin: start,
		EndMin:   end,
	}, true
}
