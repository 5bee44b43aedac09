package repositories

import (
	"context"
	"sort"

	"park-itinerary-service/internal/domain"
)

// In-memory AttractionRepository for tests.
type MockAttractionRepository struct {
	m map[string]*domain.Attraction
}

func NewMockAttractionRepository(attractions []*domain.Attraction) *MockAttractionRepository {
	m := make(map[string]*domain.Attraction, len(attractions))
	for _, a := range attractions {
		m[a.ID] = a
	}
	return &MockAttractionRepository{m: m}
}

func (r *MockAttractionRepository) ListAttractions(ctx context.Context) ([]*domain.Attraction, error) {
	out := make([]*domain.Attraction, 0, len(r.m))
	for _, a := range r.m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MockAttractionRepository) GetAttractions(ctx context.Context, ids []string) (map[string]*domain.Attraction, error) {
	out := make(map[string]*domain.Attraction, len(ids))
	for _, id := range ids {
		if a, ok := r.m[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}
