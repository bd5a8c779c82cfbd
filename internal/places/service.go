package places

import (
	"context"
	"log"

	"restaurantapi/internal/platform/googleplaces"
	"restaurantapi/internal/restaurant"
)

// Source is the upstream places provider.
type Source interface {
	Configured() bool
	TextSearch(ctx context.Context, query string) ([]googleplaces.Place, error)
}

// Service wraps the places provider with the fallback policy: an
// unconfigured provider never touches the network, and a transport failure,
// parse failure, or empty result is logged and absorbed into the fixed
// fallback catalog.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Search returns restaurant records for the query. It never fails.
func (s *Service) Search(ctx context.Context, query string) []restaurant.Restaurant {
	if !s.source.Configured() {
		return FallbackCatalog()
	}
	found, err := s.source.TextSearch(ctx, query)
	if err != nil {
		log.Printf("places search failed, serving fallback: %v", err)
		return FallbackCatalog()
	}
	if len(found) == 0 {
		return FallbackCatalog()
	}

	restaurants := make([]restaurant.Restaurant, 0, len(found))
	for _, p := range found {
		restaurants = append(restaurants, restaurant.Restaurant{
			Name:          p.Name,
			Address:       p.FormattedAddress,
			Phone:         p.FormattedPhone,
			Website:       p.Website,
			CuisineType:   CuisineFromTypes(p.Types),
			PriceRange:    PriceRangeFromLevel(p.PriceLevel),
			AverageRating: p.Rating,
			TotalReviews:  p.UserRatingsTotal,
			PlaceID:       p.PlaceID,
		})
	}
	return restaurants
}
