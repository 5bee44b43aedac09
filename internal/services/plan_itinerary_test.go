package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"park-itinerary-service/internal/adapters/forecast"
	"park-itinerary-service/internal/adapters/repositories"
	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/scheduler"
)

func testRepo() *repositories.MockAttractionRepository {
	return repositories.NewMockAttractionRepository([]*domain.Attraction{
		{ID: "falcon-run", Name: "Falcon Run", Zone: "frontier falls", DurationMin: 35, Tier: domain.TierFlagship},
		{ID: "timber-flume", Name: "Timber Flume", Zone: "frontier falls", DurationMin: 20, Tier: domain.TierStandard},
	})
}

func testForecast() *forecast.MockForecastProvider {
	return forecast.NewMockForecastProvider([]forecast.MockCurve{
		{
			AttractionID: "falcon-run",
			Class:        domain.DayRegular,
			Curve:        domain.WaitCurve{StartHour: 9, Values: []float64{20, 45, 70, 85, 70, 45, 20}},
		},
	})
}

func TestPlanItinerary(t *testing.T) {
	req := PlanItineraryRequest{
		Day:           1,
		VenueID:       "adventure-park",
		Class:         domain.DayRegular,
		OpenMin:       9 * 60,
		CloseMin:      21 * 60,
		AttractionIDs: []string{"falcon-run", "timber-flume"},
	}

	sched, err := PlanItinerary(context.Background(), req, testRepo(), testForecast(), scheduler.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sched.Stats.ItemsScheduled != 2 {
		t.Fatalf("scheduled = %d, want 2", sched.Stats.ItemsScheduled)
	}
	if len(sched.Overflow) != 0 {
		t.Fatalf("overflow = %d, want 0", len(sched.Overflow))
	}

	// Timber Flume has no forecast; planning proceeds on a neutral estimate.
	found := false
	for _, in := range sched.Insights {
		if strings.Contains(in, "Timber Flume") && strings.Contains(in, "neutral estimate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a lower-confidence insight, got %v", sched.Insights)
	}
}

func TestPlanItineraryUnknownAttraction(t *testing.T) {
	req := PlanItineraryRequest{
		Day:           1,
		VenueID:       "adventure-park",
		Class:         domain.DayRegular,
		OpenMin:       9 * 60,
		CloseMin:      21 * 60,
		AttractionIDs: []string{"falcon-run", "ghost-ride"},
	}

	_, err := PlanItinerary(context.Background(), req, testRepo(), testForecast(), scheduler.DefaultConfig(), nil)
	if !errors.Is(err, ErrUnknownAttraction) {
		t.Fatalf("expected ErrUnknownAttraction, got %v", err)
	}
	if !strings.Contains(err.Error(), "ghost-ride") {
		t.Fatalf("error should name the unknown id, got: %v", err)
	}
}

func TestPlanTrip(t *testing.T) {
	req := PlanTripRequest{
		VenueID: "adventure-park",
		Days: []scheduler.TripDay{
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
			{Class: domain.DayRegular, OpenMin: 9 * 60, CloseMin: 21 * 60},
		},
		AttractionIDs: []string{"falcon-run", "timber-flume"},
	}

	trip, err := PlanTrip(context.Background(), req, testRepo(), testForecast(), scheduler.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trip.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(trip.Days))
	}

	total := 0
	for _, day := range trip.Days {
		total += day.Stats.ItemsScheduled
	}
	if total != 2 {
		t.Fatalf("total scheduled across trip = %d, want 2", total)
	}
}
