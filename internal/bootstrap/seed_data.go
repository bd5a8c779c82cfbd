package bootstrap

import (
	"restaurantapi/internal/restaurant"
)

// seedRestaurants is the fixed Montreal catalog. The rating fields are
// initial display values only; reconciliation overwrites them for any
// restaurant that has reviews.
func seedRestaurants() []restaurant.Restaurant {
	return []restaurant.Restaurant{
		{
			Name:          "Joe Beef",
			Description:   "An iconic Montreal restaurant known for its exceptional steaks and creative dishes.",
			Address:       "2491 Rue Notre-Dame O, Montreal, QC H3J 1N6",
			Phone:         "(514) 935-6504",
			Website:       "http://joebeef.ca",
			CuisineType:   "French",
			PriceRange:    restaurant.PriceLuxury,
			Latitude:      45.4761,
			Longitude:     -73.5737,
			AverageRating: 4.5,
		},
		{
			Name:          "Schwartz's Deli",
			Description:   "Montreal's most famous smoked meat deli, serving since 1928.",
			Address:       "3895 Boul Saint-Laurent, Montreal, QC H2W 1X9",
			Phone:         "(514) 842-4813",
			Website:       "http://schwartzsdeli.com",
			CuisineType:   "Jewish Deli",
			PriceRange:    restaurant.PriceModerate,
			Latitude:      45.5158,
			Longitude:     -73.5844,
			AverageRating: 4.2,
		},
		{
			Name:          "Au Pied de Cochon",
			Description:   "Chef Martin Picard's temple to Quebecois cuisine and foie gras.",
			Address:       "536 Av Duluth E, Montreal, QC H2L 1A9",
			Phone:         "(514) 281-1114",
			Website:       "http://restaurantaupieddecochon.ca",
			CuisineType:   "French Canadian",
			PriceRange:    restaurant.PriceExpensive,
			Latitude:      45.5200,
			Longitude:     -73.5800,
			AverageRating: 4.3,
		},
		{
			Name:          "Toqué!",
			Description:   "Montreal's premier fine dining restaurant with innovative Quebec cuisine.",
			Address:       "900 Place Jean-Paul-Riopelle, Montreal, QC H2Z 2B2",
			Phone:         "(514) 499-2084",
			Website:       "http://restaurant-toque.com",
			CuisineType:   "Fine Dining",
			PriceRange:    restaurant.PriceLuxury,
			Latitude:      45.5088,
			Longitude:     -73.5640,
			AverageRating: 4.6,
		},
		{
			Name:          "St-Viateur Bagel",
			Description:   "Original Montreal-style bagel shop, wood-fired ovens since 1957.",
			Address:       "263 Rue Saint-Viateur O, Montreal, QC H2V 1X5",
			Phone:         "(514) 276-8044",
			CuisineType:   "Bakery",
			PriceRange:    restaurant.PriceCheap,
			Latitude:      45.5230,
			Longitude:     -73.5960,
			AverageRating: 4.4,
		},
		{
			Name:          "La Banquise",
			Description:   "Famous 24/7 poutine restaurant with over 30 varieties.",
			Address:       "994 Rue Rachel E, Montreal, QC H2J 2J3",
			Phone:         "(514) 525-2415",
			CuisineType:   "Quebecois",
			PriceRange:    restaurant.PriceModerate,
			Latitude:      45.5267,
			Longitude:     -73.5756,
			AverageRating: 4.1,
		},
	}
}

type seedUser struct {
	username string
	email    string
	password string
	role     string
}

func seedUsers() []seedUser {
	return []seedUser{
		{username: "admin", email: "admin@montreal-restaurants.com", password: "admin123", role: "ADMIN"},
		{username: "foodlover", email: "foodlover@email.com", password: "password123", role: "USER"},
		{username: "montreal_eats", email: "montreal.eats@email.com", password: "password123", role: "USER"},
		{username: "reviewer123", email: "reviewer@email.com", password: "password123", role: "USER"},
	}
}

type seedReview struct {
	username       string
	restaurantName string
	rating         int
	comment        string
}

func seedReviews() []seedReview {
	return []seedReview{
		{
			username:       "foodlover",
			restaurantName: "Joe Beef",
			rating:         5,
			comment:        "Absolutely incredible! The steak was perfectly cooked and the atmosphere is amazing. A must-visit in Montreal!",
		},
		{
			username:       "montreal_eats",
			restaurantName: "Schwartz",
			rating:         4,
			comment:        "Classic Montreal smoked meat! The line was long but totally worth it. The meat is tender and flavorful.",
		},
		{
			username:       "reviewer123",
			restaurantName: "La Banquise",
			rating:         4,
			comment:        "Great poutine selection! Open 24/7 which is perfect for late night cravings. The 'La Banquise' poutine is my favorite.",
		},
	}
}
