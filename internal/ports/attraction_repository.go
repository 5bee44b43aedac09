package ports

import (
	"context"

	"park-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving classified Attraction entities from a
// data source.
type AttractionRepository interface {
	// Retrieve all attractions available for planning.
	ListAttractions(ctx context.Context) ([]*domain.Attraction, error)

	// Retrieve the attractions for the given ids, keyed by id. Missing ids
	// are simply absent from the result, not an error.
	GetAttractions(ctx context.Context, ids []string) (map[string]*domain.Attraction, error)
}
