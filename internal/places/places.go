package places

import (
	"strings"

	"restaurantapi/internal/restaurant"
)

// cuisineByTag maps provider category tags to the fixed cuisine vocabulary.
// Order matters: the first tag substring that matches wins.
var cuisineByTag = []struct {
	tag     string
	cuisine string
}{
	{"french", "French"},
	{"italian", "Italian"},
	{"chinese", "Chinese"},
	{"japanese", "Japanese"},
	{"indian", "Indian"},
	{"mexican", "Mexican"},
	{"pizza", "Pizza"},
	{"burger", "Burgers"},
	{"seafood", "Seafood"},
	{"steakhouse", "Steakhouse"},
}

// CuisineFromTypes inspects the provider's category tags and returns a
// cuisine from the fixed vocabulary, defaulting to "Restaurant".
func CuisineFromTypes(types []string) string {
	for _, t := range types {
		tag := strings.ToLower(t)
		if !strings.Contains(tag, "restaurant") {
			continue
		}
		for _, m := range cuisineByTag {
			if strings.Contains(tag, m.tag) {
				return m.cuisine
			}
		}
	}
	return "Restaurant"
}

// PriceRangeFromLevel converts the provider's numeric price level (1-4) to
// the price symbol vocabulary, defaulting to $$ when absent or out of range.
func PriceRangeFromLevel(level *int) string {
	if level == nil {
		return restaurant.PriceModerate
	}
	switch *level {
	case 1:
		return restaurant.PriceCheap
	case 2:
		return restaurant.PriceModerate
	case 3:
		return restaurant.PriceExpensive
	case 4:
		return restaurant.PriceLuxury
	default:
		return restaurant.PriceModerate
	}
}

// FallbackCatalog is the fixed substitute result served when live places
// data is unavailable.
func FallbackCatalog() []restaurant.Restaurant {
	return []restaurant.Restaurant{
		{
			Name:          "Joe Beef",
			Description:   "An iconic Montreal restaurant known for its exceptional steaks and creative dishes.",
			Address:       "2491 Rue Notre-Dame O, Montreal, QC H3J 1N6",
			Phone:         "(514) 935-6504",
			Website:       "http://joebeef.ca",
			CuisineType:   "French",
			PriceRange:    restaurant.PriceLuxury,
			AverageRating: 4.8,
			TotalReviews:  1250,
		},
		{
			Name:          "Schwartz's Deli",
			Description:   "Montreal's most famous smoked meat deli, serving since 1928.",
			Address:       "3895 Boul Saint-Laurent, Montreal, QC H2W 1X9",
			Phone:         "(514) 842-4813",
			Website:       "http://schwartzsdeli.com",
			CuisineType:   "Jewish Deli",
			PriceRange:    restaurant.PriceModerate,
			AverageRating: 4.5,
			TotalReviews:  2100,
		},
	}
}
