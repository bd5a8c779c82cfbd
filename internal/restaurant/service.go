package restaurant

import (
	"context"
	"errors"
	"log"
)

// PlacesSource supplies restaurant records from an external places provider.
// Implementations degrade to fallback data instead of failing, so Search
// never returns an error.
type PlacesSource interface {
	Search(ctx context.Context, query string) []Restaurant
}

// Service provides restaurant-related business logic.
type Service struct {
	repo   Repository
	places PlacesSource
}

// NewService creates a new restaurant service.
func NewService(repo Repository, places PlacesSource) *Service {
	return &Service{repo: repo, places: places}
}

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]Restaurant, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) ListByCuisine(ctx context.Context, cuisineType string) ([]Restaurant, error) {
	return s.repo.ListByCuisine(ctx, cuisineType)
}

func (s *Service) ListByPriceRange(ctx context.Context, priceRange string) ([]Restaurant, error) {
	return s.repo.ListByPriceRange(ctx, priceRange)
}

func (s *Service) ListByMinRating(ctx context.Context, minRating float64) ([]Restaurant, error) {
	return s.repo.ListByMinRating(ctx, minRating)
}

// ImportFromPlaces searches the places provider and stores every result not
// already present, deduplicated by provider place id (falling back to a name
// lookup for records without one). Returns the newly created restaurants.
func (s *Service) ImportFromPlaces(ctx context.Context, query string) ([]Restaurant, error) {
	found := s.places.Search(ctx, query)

	imported := make([]Restaurant, 0, len(found))
	for _, r := range found {
		exists, err := s.alreadyImported(ctx, r)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		created := r
		if err := s.repo.Create(ctx, &created); err != nil {
			return nil, err
		}
		imported = append(imported, created)
	}
	log.Printf("places import query=%q found=%d imported=%d", query, len(found), len(imported))
	return imported, nil
}

func (s *Service) alreadyImported(ctx context.Context, r Restaurant) (bool, error) {
	if r.PlaceID != "" {
		_, err := s.repo.GetByPlaceID(ctx, r.PlaceID)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return false, err
		}
		return false, nil
	}
	matches, err := s.repo.SearchByName(ctx, r.Name)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}
