package weather

import (
	"context"
	"log"
	"strings"

	"restaurantapi/internal/platform/openweather"
)

// Source is the upstream weather provider.
type Source interface {
	Configured() bool
	Current(ctx context.Context, city string) (openweather.Conditions, error)
}

// Service wraps the weather provider with the fallback policy: an
// unconfigured provider never touches the network, and any transport or
// parse failure is logged and absorbed into the fixed fallback report. Each
// call decides independently; there is no retry and no circuit breaker.
type Service struct {
	source Source
	city   string
}

func NewService(source Source) *Service {
	return &Service{source: source, city: "Montreal,CA"}
}

// Current returns the current weather. It never fails.
func (s *Service) Current(ctx context.Context) Report {
	if !s.source.Configured() {
		return FallbackReport()
	}
	cond, err := s.source.Current(ctx, s.city)
	if err != nil {
		log.Printf("weather fetch failed, serving fallback: %v", err)
		return FallbackReport()
	}
	return Report{
		Temperature: cond.Temperature,
		FeelsLike:   cond.FeelsLike,
		Humidity:    cond.Humidity,
		Condition:   cond.Condition,
		Description: cond.Description,
		City:        cond.City,
	}
}

// Recommendations returns the current weather together with a dining
// suggestion derived from it.
func (s *Service) Recommendations(ctx context.Context) (Report, Recommendation) {
	report := s.Current(ctx)
	return report, Recommend(report.Temperature, report.Condition)
}

// Recommend picks the temperature band for temp, then appends an indoor or
// outdoor suggestion from the condition. Bands are evaluated in order so
// exactly one applies: below freezing, below 15, below 25, and everything
// hotter.
func Recommend(temp float64, condition string) Recommendation {
	var rec Recommendation
	switch {
	case temp < 0:
		rec.Cuisine = "Hot soup, Comfort food, Warm beverages"
		rec.Restaurants = "Hot pot, Pho, Ramen, Coffee shops"
		rec.Reason = "Cold weather calls for warm, comforting food"
	case temp < 15:
		rec.Cuisine = "Hearty meals, Stews, Hot dishes"
		rec.Restaurants = "Steakhouses, Italian, French bistros"
		rec.Reason = "Cool weather perfect for hearty meals"
	case temp < 25:
		rec.Cuisine = "Variety of cuisines, Outdoor dining"
		rec.Restaurants = "Terrace restaurants, Cafes, Bistros"
		rec.Reason = "Pleasant weather for outdoor dining"
	default:
		rec.Cuisine = "Light meals, Salads, Cold beverages"
		rec.Restaurants = "Salad bars, Smoothie shops, Ice cream"
		rec.Reason = "Hot weather calls for light, refreshing food"
	}

	lower := strings.ToLower(condition)
	switch {
	case strings.Contains(lower, "rain"):
		rec.Indoor = "Perfect for cozy indoor dining"
	case strings.Contains(lower, "snow"):
		rec.Indoor = "Great for warm, comforting meals indoors"
	default:
		rec.Outdoor = "Consider outdoor dining options"
	}
	return rec
}
