package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/mcolivver/heatpump/internal/domain"
)

// ErrLocationNotFound is returned when the geocoding API has no result
// for the requested place name. Callers fall back to their default
// location on this error.
var ErrLocationNotFound = errors.New("location not found")

// GeocodingClient resolves place names to coordinates via the
// Open-Meteo geocoding API.
type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
	config     *GeocodingConfig
}

// GeocodingConfig holds geocoding client configuration
type GeocodingConfig struct {
	BaseURL      string
	Language     string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultGeocodingConfig returns default geocoding client configuration
func DefaultGeocodingConfig() *GeocodingConfig {
	return &GeocodingConfig{
		BaseURL:      "https://geocoding-api.open-meteo.com",
		Language:     "de",
		Timeout:      30 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// geocodingResponse mirrors the geocoding API wire format.
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// NewGeocodingClient creates a new Open-Meteo geocoding client
func NewGeocodingClient(config *GeocodingConfig, log *zap.Logger) *GeocodingClient {
	if config == nil {
		config = DefaultGeocodingConfig()
	}

	return &GeocodingClient{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		baseURL: config.BaseURL,
		log:     log,
		config:  config,
	}
}

// Resolve looks up the best match for a place name. Only the top result
// is requested; no match yields ErrLocationNotFound.
func (c *GeocodingClient) Resolve(ctx context.Context, name string) (domain.Location, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", c.config.Language)
	q.Set("format", "json")

	endpoint := fmt.Sprintf("%s/v1/search?%s", c.baseURL, q.Encode())

	var response geocodingResponse
	if err := getJSON(ctx, c.httpClient, c.log, endpoint, c.config.MaxRetries, c.config.RetryBackoff, &response); err != nil {
		return domain.Location{}, fmt.Errorf("geocoding request failed: %w", err)
	}

	if len(response.Results) == 0 {
		return domain.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	result := response.Results[0]
	loc := domain.Location{
		Name:      result.Name,
		Country:   result.Country,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}

	c.log.Debug("Resolved location",
		zap.String("query", name),
		zap.String("name", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("latitude", loc.Latitude),
		zap.Float64("longitude", loc.Longitude),
	)

	return loc, nil
}
