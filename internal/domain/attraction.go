package domain

// Importance tier of an attraction, ordered from least to most important.
// Tiers are assigned by an external classification step; the scheduler only
// consumes them.
type Tier int

const (
	TierMinor Tier = iota
	TierStandard
	TierPopular
	TierFlagship
)

func (t Tier) String() string {
	switch t {
	case TierFlagship:
		return "flagship"
	case TierPopular:
		return "popular"
	case TierStandard:
		return "standard"
	default:
		return "minor"
	}
}

// ParseTier maps a stored tier label back to its Tier value.
// Unknown labels fall back to TierStandard, the documented default tier.
func ParseTier(s string) Tier {
	switch s {
	case "flagship":
		return TierFlagship
	case "popular":
		return TierPopular
	case "minor":
		return TierMinor
	default:
		return TierStandard
	}
}

// Crowd classification of a calendar day. Selects which historical wait
// curve shape applies.
type DayClass string

const (
	DayRegular  DayClass = "regular"
	DayElevated DayClass = "elevated"
	DayPeak     DayClass = "peak"
)

// Represents a single schedulable attraction.
// An Attraction is enriched once by external metadata classification and is
// immutable thereafter; the scheduler never mutates it.
type Attraction struct {
	ID          string
	Name        string
	Zone        string
	DurationMin int
	Tier        Tier
}
