package weather

// Report is the current-weather record returned to callers. Temperature is
// in degrees Celsius.
type Report struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	City        string  `json:"city"`
}

// FallbackReport is the fixed record served whenever live data is
// unavailable or the provider is unconfigured.
func FallbackReport() Report {
	return Report{
		Temperature: 22.5,
		FeelsLike:   24.0,
		Humidity:    65,
		Condition:   "Clear",
		Description: "clear sky",
		City:        "Montreal",
	}
}

// Recommendation suggests restaurants for the current weather.
type Recommendation struct {
	Cuisine     string `json:"cuisine"`
	Restaurants string `json:"restaurants"`
	Reason      string `json:"reason"`
	Indoor      string `json:"indoor,omitempty"`
	Outdoor     string `json:"outdoor,omitempty"`
}
