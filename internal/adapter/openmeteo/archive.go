package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mcolivver/heatpump/internal/domain"
)

// ErrEmptySeries is returned when the archive responds without any
// hourly temperature values for the requested location and period.
var ErrEmptySeries = errors.New("weather archive returned no hourly temperatures")

// ArchiveClient fetches historical hourly temperatures from the
// Open-Meteo archive API.
type ArchiveClient struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
	config     *ArchiveConfig
}

// ArchiveConfig holds archive client configuration
type ArchiveConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultArchiveConfig returns default archive client configuration
func DefaultArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{
		BaseURL:      "https://archive-api.open-meteo.com",
		Timeout:      30 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// archiveResponse mirrors the archive API wire format. The hourly block
// carries parallel arrays; null entries in temperature_2m mark hours
// without a reading and are preserved as missing samples.
type archiveResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hourly    struct {
		Time          []string   `json:"time"`
		Temperature2M []*float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// NewArchiveClient creates a new Open-Meteo archive client
func NewArchiveClient(config *ArchiveConfig, log *zap.Logger) *ArchiveClient {
	if config == nil {
		config = DefaultArchiveConfig()
	}

	return &ArchiveClient{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		baseURL: config.BaseURL,
		log:     log,
		config:  config,
	}
}

// HourlyTemperatures fetches the hourly outdoor temperature series for a
// location over a historical period.
func (c *ArchiveClient) HourlyTemperatures(ctx context.Context, loc domain.Location, period domain.Period) (domain.TemperatureSeries, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("start_date", period.Start.Format("2006-01-02"))
	q.Set("end_date", period.End.Format("2006-01-02"))
	q.Set("hourly", "temperature_2m")

	endpoint := fmt.Sprintf("%s/v1/archive?%s", c.baseURL, q.Encode())

	var response archiveResponse
	if err := getJSON(ctx, c.httpClient, c.log, endpoint, c.config.MaxRetries, c.config.RetryBackoff, &response); err != nil {
		return domain.TemperatureSeries{}, fmt.Errorf("archive request failed: %w", err)
	}

	if len(response.Hourly.Temperature2M) == 0 {
		return domain.TemperatureSeries{}, ErrEmptySeries
	}

	samples := make([]domain.TemperatureSample, len(response.Hourly.Temperature2M))
	for i, temp := range response.Hourly.Temperature2M {
		samples[i] = domain.TemperatureSample{TemperatureC: temp}
		if i < len(response.Hourly.Time) {
			// The archive reports local civil time without a zone, e.g.
			// "2024-01-15T06:00".
			if ts, err := time.Parse("2006-01-02T15:04", response.Hourly.Time[i]); err == nil {
				samples[i].Time = ts
			}
		}
	}

	c.log.Debug("Fetched hourly temperature series",
		zap.Float64("latitude", response.Latitude),
		zap.Float64("longitude", response.Longitude),
		zap.Int("hours", len(samples)),
	)

	return domain.TemperatureSeries{
		Latitude:  response.Latitude,
		Longitude: response.Longitude,
		Samples:   samples,
	}, nil
}
