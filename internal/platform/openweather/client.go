package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// Configured reports whether an API key is present. Without one, no network
// call is ever attempted.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Conditions is a fully parsed current-weather observation. Every field is
// required; a response missing any of them fails the parse.
type Conditions struct {
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Condition   string
	Description string
	City        string
}

// currentResponse matches the provider's current-weather shape. Pointer
// fields let a missing value be told apart from a zero one.
type currentResponse struct {
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        *string `json:"main"`
		Description *string `json:"description"`
	} `json:"weather"`
	Name *string `json:"name"`
}

func (c *Client) Current(ctx context.Context, city string) (Conditions, error) {
	u := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Conditions{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Conditions{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Conditions{}, err
	}
	return body.conditions()
}

func (r currentResponse) conditions() (Conditions, error) {
	if r.Main == nil || r.Main.Temp == nil || r.Main.FeelsLike == nil || r.Main.Humidity == nil {
		return Conditions{}, fmt.Errorf("response missing main fields")
	}
	if len(r.Weather) == 0 || r.Weather[0].Main == nil || r.Weather[0].Description == nil {
		return Conditions{}, fmt.Errorf("response missing weather fields")
	}
	if r.Name == nil {
		return Conditions{}, fmt.Errorf("response missing place name")
	}
	return Conditions{
		Temperature: *r.Main.Temp,
		FeelsLike:   *r.Main.FeelsLike,
		Humidity:    *r.Main.Humidity,
		Condition:   *r.Weather[0].Main,
		Description: *r.Weather[0].Description,
		City:        *r.Name,
	}, nil
}
