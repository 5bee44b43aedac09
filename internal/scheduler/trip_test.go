package scheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-itinerary-service/internal/domain"
)

func tripItem(id, name, zone string, dur int, tier domain.Tier, curves map[domain.DayClass]domain.WaitCurve) TripItem {
	return TripItem{
		Attraction: domain.Attraction{ID: id, Name: name, Zone: zone, DurationMin: dur, Tier: tier},
		Curves:     curves,
	}
}

func TestBuildTripScheduleMovesFlagshipToQuieterDay(t *testing.T) {
	item := tripItem("a", "Apex", "z", 30, domain.TierFlagship, map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 20),
		domain.DayPeak:    domain.FlatCurve(9, 12, 60),
	})

	req := TripRequest{
		VenueID: "adventure-park",
		Days: []TripDay{
			{Class: domain.DayPeak, OpenMin: 8 * 60, CloseMin: 23 * 60},
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
		},
		Items: []TripItem{item},
	}

	trip, err := BuildTripSchedule(DefaultConfig(), nil, req)
	require.NoError(t, err)
	require.Len(t, trip.Days, 2)

	// The 40 minute average saving outweighs the earliest-day preference.
	assert.Equal(t, 0, trip.Days[0].Stats.ItemsScheduled)
	assert.Equal(t, 1, trip.Days[1].Stats.ItemsScheduled)

	require.NotEmpty(t, trip.Days[0].Insights)
	assert.Contains(t, trip.Days[0].Insights[0], "free day")

	found := false
	for _, in := range trip.Insights {
		if strings.Contains(in, "Apex") && strings.Contains(in, "day 2") {
			found = true
		}
	}
	assert.True(t, found, "expected a flagship distribution insight, got %v", trip.Insights)
}

func TestBuildTripScheduleFreeDayKeepsEvents(t *testing.T) {
	item := tripItem("a", "Apex", "z", 30, domain.TierPopular, map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 20),
	})

	req := TripRequest{
		VenueID: "adventure-park",
		Days: []TripDay{
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
			{
				Class:    domain.DayRegular,
				OpenMin:  9 * 60,
				CloseMin: 21 * 60,
				Events: []EventInput{
					{Name: "Night Parade", Kind: domain.AnchorShow, StartMin: 18 * 60, EndMin: 18*60 + 45},
				},
			},
		},
		Items: []TripItem{item},
	}

	trip, err := BuildTripSchedule(DefaultConfig(), nil, req)
	require.NoError(t, err)
	require.Len(t, trip.Days, 2)

	// The only attraction lands on day 1; day 2 is free but its booked show
	// still appears on the timetable.
	assert.Equal(t, 0, trip.Days[1].Stats.ItemsScheduled)
	require.Len(t, trip.Days[1].Entries, 1)
	assert.Equal(t, domain.EntryShow, trip.Days[1].Entries[0].Kind)
	assert.Equal(t, "Night Parade", trip.Days[1].Entries[0].Name)
	assert.Equal(t, 18*60, trip.Days[1].Entries[0].StartMin)

	found := false
	for _, in := range trip.Days[1].Insights {
		if strings.Contains(in, "free day") {
			found = true
		}
	}
	assert.True(t, found, "expected a free-day insight, got %v", trip.Days[1].Insights)
}

func TestBuildTripScheduleEarliestDayWinsWithinThreshold(t *testing.T) {
	item := tripItem("a", "Apex", "z", 30, domain.TierPopular, map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 20),
	})

	req := TripRequest{
		VenueID: "adventure-park",
		Days: []TripDay{
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
		},
		Items: []TripItem{item},
	}

	trip, err := BuildTripSchedule(DefaultConfig(), nil, req)
	require.NoError(t, err)

	assert.Equal(t, 1, trip.Days[0].Stats.ItemsScheduled)
	assert.Equal(t, 0, trip.Days[1].Stats.ItemsScheduled)
}

func TestBuildTripScheduleRespectsPerDayCapacity(t *testing.T) {
	curves := map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 15),
	}
	req := TripRequest{
		VenueID: "adventure-park",
		Days: []TripDay{
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
		},
		Items: []TripItem{
			tripItem("a", "Apex", "z", 30, domain.TierPopular, curves),
			tripItem("b", "Blaze", "z", 30, domain.TierPopular, curves),
		},
		Prefs: Preferences{MaxItemsPerDay: 1},
	}

	trip, err := BuildTripSchedule(DefaultConfig(), nil, req)
	require.NoError(t, err)

	assert.Equal(t, 1, trip.Days[0].Stats.ItemsScheduled)
	assert.Equal(t, 1, trip.Days[1].Stats.ItemsScheduled)
}

func TestBuildTripScheduleMissingClassCurveFallsBackToRegular(t *testing.T) {
	item := tripItem("a", "Apex", "z", 30, domain.TierPopular, map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 20),
	})

	req := TripRequest{
		VenueID: "adventure-park",
		Days:    []TripDay{{Class: domain.DayPeak, OpenMin: 8 * 60, CloseMin: 23 * 60}},
		Items:   []TripItem{item},
	}

	trip, err := BuildTripSchedule(DefaultConfig(), nil, req)
	require.NoError(t, err)
	require.Len(t, trip.Days, 1)
	assert.Equal(t, 1, trip.Days[0].Stats.ItemsScheduled)
}

func TestBuildTripSchedulePreconditions(t *testing.T) {
	cfg := DefaultConfig()

	_, err := BuildTripSchedule(cfg, nil, TripRequest{Items: []TripItem{tripItem("a", "A", "z", 30, domain.TierMinor, nil)}})
	assert.ErrorIs(t, err, ErrNoDays)

	_, err = BuildTripSchedule(cfg, nil, TripRequest{Days: []TripDay{{Class: domain.DayRegular, OpenMin: 540, CloseMin: 1260}}})
	assert.ErrorIs(t, err, ErrNoItems)

	bad := tripItem("a", "A", "z", 0, domain.TierMinor, nil)
	_, err = BuildTripSchedule(cfg, nil, TripRequest{
		Days:  []TripDay{{Class: domain.DayRegular, OpenMin: 540, CloseMin: 1260}},
		Items: []TripItem{bad},
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestDistributeItemsHigherTiersPickFirst(t *testing.T) {
	days := []TripDay{
		{Class: domain.DayRegular, OpenMin: 540, CloseMin: 1260},
		{Class: domain.DayRegular, OpenMin: 540, CloseMin: 1260},
	}
	curves := map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 15),
	}
	items := []TripItem{
		tripItem("m", "Minor Ride", "z", 20, domain.TierMinor, curves),
		tripItem("f", "Flagship Ride", "z", 30, domain.TierFlagship, curves),
	}

	assignments, _ := distributeItems(DefaultConfig(), days, items, 1)

	require.Len(t, assignments[0], 1)
	require.Len(t, assignments[1], 1)
	assert.Equal(t, "f", assignments[0][0].ID, "the flagship claims the first day")
	assert.Equal(t, "m", assignments[1][0].ID)
}

func TestDistributeItemsNeutralEstimateIsConfigurable(t *testing.T) {
	days := []TripDay{
		{Class: domain.DayPeak, OpenMin: 540, CloseMin: 1260},
		{Class: domain.DayElevated, OpenMin: 540, CloseMin: 1260},
	}
	// Only the peak day has a forecast; the other day falls back to the
	// neutral estimate.
	item := tripItem("a", "Apex", "z", 30, domain.TierStandard, map[domain.DayClass]domain.WaitCurve{
		domain.DayPeak: domain.FlatCurve(9, 12, 30),
	})

	assignments, _ := distributeItems(DefaultConfig(), days, []TripItem{item}, 8)
	require.Len(t, assignments[1], 1, "the default neutral estimate of 15 beats a 30 minute average")

	raised := DefaultConfig()
	raised.NeutralWaitMin = 40
	assignments, _ = distributeItems(raised, days, []TripItem{item}, 8)
	require.Len(t, assignments[0], 1, "a raised neutral estimate keeps the item on the forecast day")
}

func TestDistributeItemsOverCapacityFallsBackToLeastLoaded(t *testing.T) {
	days := []TripDay{{Class: domain.DayRegular, OpenMin: 540, CloseMin: 1260}}
	curves := map[domain.DayClass]domain.WaitCurve{
		domain.DayRegular: domain.FlatCurve(9, 12, 15),
	}
	items := []TripItem{
		tripItem("a", "A", "z", 20, domain.TierStandard, curves),
		tripItem("b", "B", "z", 20, domain.TierStandard, curves),
	}

	assignments, _ := distributeItems(DefaultConfig(), days, items, 1)

	assert.Len(t, assignments[0], 2, "with every day at capacity the least loaded day still takes the item")
}
