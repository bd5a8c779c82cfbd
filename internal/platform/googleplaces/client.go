package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(apiKey string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// Configured reports whether an API key is present. Without one, no network
// call is ever attempted.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Place matches one result of the provider's text-search response.
type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	FormattedPhone   string   `json:"formatted_phone_number"`
	Website          string   `json:"website"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
	PriceLevel       *int     `json:"price_level"`
}

type textSearchResponse struct {
	Results []Place `json:"results"`
}

// TextSearch looks up restaurants matching query in Montreal.
func (c *Client) TextSearch(ctx context.Context, query string) ([]Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query+" restaurants Montreal")
	params.Set("key", c.apiKey)
	u := fmt.Sprintf("%s/textsearch/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Results, nil
}
