package forecast

import (
	"context"
	"fmt"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
)

type MockCurve struct {
	AttractionID string
	Class        domain.DayClass
	Curve        domain.WaitCurve
}

// In-memory ForecastProvider for tests.
type MockForecastProvider struct {
	m map[string]domain.WaitCurve
}

func NewMockForecastProvider(curves []MockCurve) *MockForecastProvider {
	m := make(map[string]domain.WaitCurve, len(curves))
	for _, c := range curves {
		m[c.AttractionID+"|"+string(c.Class)] = c.Curve
	}
	return &MockForecastProvider{m: m}
}

func (p *MockForecastProvider) GetCurve(ctx context.Context, attractionID string, class domain.DayClass) (domain.WaitCurve, error) {
	c, ok := p.m[attractionID+"|"+string(class)]
	if !ok {
		return domain.WaitCurve{}, fmt.Errorf("mock curve %q/%s: %w", attractionID, class, ports.ErrNoForecast)
	}

	return c, nil
}
