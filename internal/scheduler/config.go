package scheduler

import (
	"math/rand"

	"park-itinerary-service/internal/domain"
)

// Half-open preferred window for auto-placed anchors, in minutes since
// midnight.
type Window struct {
	StartMin int
	EndMin   int
}

// Weights tunes the slot scoring function. The net-benefit rate governs
// proximity suppression: the proximity component is only awarded when the
// extra wait paid at a gap, relative to the item's daily minimum, does not
// exceed the walk minutes saved times this rate. The source values are
// empirical, so they are configuration rather than constants.
type Weights struct {
	Wait          float64
	ProximityPrev float64
	ProximityNext float64
	Importance    float64

	NearMinBonus    float64
	AboveAvgPenalty float64
	MinToleranceMin float64
	AvgToleranceMin float64

	NetBenefitRate float64
}

// Config carries every tunable of the scheduling engine. A zero Config is
// not usable; start from DefaultConfig and override fields as needed.
type Config struct {
	Weights    Weights
	TierScores map[domain.Tier]float64

	// Block management.
	MinBlockMin  int
	GapStrideMin int

	// Rope-drop phase.
	MaxRopeDrop           int
	RopeDropMinSavingsMin float64

	// Anchor phase.
	ShowArrivalBufferMin int
	ShowDispersalMin     int
	MealMinDurationMin   int
	MealMaxDurationMin   int
	LunchWindow          Window
	DinnerWindow         Window
	BreakDurationMin     int
	BreakWindow          Window

	// Distribution phase.
	MaxItemsPerDay           int
	DistributionSignificance float64

	// NeutralWaitMin is the flat wait estimate substituted when an item has
	// no usable forecast, both for day-level placement and for picking a
	// trip day.
	NeutralWaitMin float64

	// Rand drives meal-duration randomization. Tests inject a seeded source
	// for determinism; nil falls back to the fixed minimum duration.
	Rand *rand.Rand

	// ReasonFor renders the structured slot decision into user-facing text.
	// Swappable so presentation wording stays out of the algorithm.
	ReasonFor ReasonFormatter
}

// DefaultConfig returns the engine defaults. Thresholds mirror the tuning
// the planner ships with; callers may override any field before building.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Wait:            0.50,
			ProximityPrev:   0.15,
			ProximityNext:   0.10,
			Importance:      0.25,
			NearMinBonus:    10,
			AboveAvgPenalty: 8,
			MinToleranceMin: 5,
			AvgToleranceMin: 10,
			NetBenefitRate:  1.5,
		},
		TierScores: map[domain.Tier]float64{
			domain.TierFlagship: 100,
			domain.TierPopular:  75,
			domain.TierStandard: 50,
			domain.TierMinor:    25,
		},
		MinBlockMin:  10,
		GapStrideMin: 15,

		MaxRopeDrop:           3,
		RopeDropMinSavingsMin: 15,

		ShowArrivalBufferMin: 15,
		ShowDispersalMin:     10,
		MealMinDurationMin:   45,
		MealMaxDurationMin:   75,
		LunchWindow:          Window{StartMin: 11*60 + 30, EndMin: 13*60 + 30},
		DinnerWindow:         Window{StartMin: 17*60 + 30, EndMin: 19*60 + 30},
		BreakDurationMin:     30,
		BreakWindow:          Window{StartMin: 14 * 60, EndMin: 16 * 60},

		MaxItemsPerDay:           8,
		DistributionSignificance: 10,
		NeutralWaitMin:           15,

		ReasonFor: DefaultReason,
	}
}

// tierScore looks up the importance score for a tier, defaulting to the
// standard-tier score for unknown values.
func (c Config) tierScore(t domain.Tier) float64 {
	if s, ok := c.TierScores[t]; ok {
		return s
	}
	return c.TierScores[domain.TierStandard]
}

// mealDuration picks a randomized duration inside [min, max] when a random
// source is configured, otherwise the fixed minimum.
func (c Config) mealDuration() int {
	if c.Rand == nil || c.MealMaxDurationMin <= c.MealMinDurationMin {
		return c.MealMinDurationMin
	}
	return c.MealMinDurationMin + c.Rand.Intn(c.MealMaxDurationMin-c.MealMinDurationMin+1)
}
