package scheduler

import "strings"

// Proximity scores per zone tier, on the 0-100 scale consumed by the slot
// scorer.
const (
	proximitySame     = 100.0
	proximityAdjacent = 60.0
	proximityDistant  = 20.0

	// proximityNeutral is used when an item has no scheduled neighbor to
	// compare against.
	proximityNeutral = 50.0
)

// ZoneMap estimates walking time between named venue zones using a
// same / adjacent / distant classification backed by a static adjacency
// table. The table is venue-specific configuration data, not computed.
type ZoneMap struct {
	sameWalkMin     int
	adjacentWalkMin int
	distantWalkMin  int
	adjacent        map[string]map[string]struct{}
}

// ZonePair names two zones that are walkably adjacent. Adjacency is
// symmetric; pairs are stored both ways.
type ZonePair struct {
	A string
	B string
}

// NewZoneMap builds the proximity model from walk-minute constants and the
// adjacency pairs for a venue.
func NewZoneMap(sameMin, adjacentMin, distantMin int, pairs []ZonePair) *ZoneMap {
	z := &ZoneMap{
		sameWalkMin:     sameMin,
		adjacentWalkMin: adjacentMin,
		distantWalkMin:  distantMin,
		adjacent:        make(map[string]map[string]struct{}, len(pairs)),
	}

	for _, p := range pairs {
		a := NormalizeZone(p.A)
		b := NormalizeZone(p.B)
		if a == "" || b == "" || a == b {
			continue
		}
		z.link(a, b)
		z.link(b, a)
	}

	return z
}

func (z *ZoneMap) link(from, to string) {
	if z.adjacent[from] == nil {
		z.adjacent[from] = make(map[string]struct{})
	}
	z.adjacent[from][to] = struct{}{}
}

// NormalizeZone ensures consistent table keys by lower-casing and collapsing
// whitespace.
func NormalizeZone(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// WalkTime estimates the walking minutes between two zones.
func (z *ZoneMap) WalkTime(zoneA, zoneB string) int {
	switch z.tier(zoneA, zoneB) {
	case proximitySame:
		return z.sameWalkMin
	case proximityAdjacent:
		return z.adjacentWalkMin
	default:
		return z.distantWalkMin
	}
}

// ProximityScore maps the zone pair to a 0-100 score for the slot scorer.
func (z *ZoneMap) ProximityScore(zoneA, zoneB string) float64 {
	return z.tier(zoneA, zoneB)
}

func (z *ZoneMap) tier(zoneA, zoneB string) float64 {
	a := NormalizeZone(zoneA)
	b := NormalizeZone(zoneB)

	if a == b {
		return proximitySame
	}
	if peers, ok := z.adjacent[a]; ok {
		if _, ok := peers[b]; ok {
			return proximityAdjacent
		}
	}
	return proximityDistant
}
