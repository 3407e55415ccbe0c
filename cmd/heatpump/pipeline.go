package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mcolivver/heatpump/internal/adapter/report"
	"github.com/mcolivver/heatpump/internal/domain"
	"github.com/mcolivver/heatpump/internal/ports"
	"github.com/mcolivver/heatpump/internal/service/estimator"
	"github.com/mcolivver/heatpump/pkg/config"
)

// runPipeline resolves the location, fetches the hourly temperature
// series and runs the estimator. locationInput overrides the configured
// default location; it may be a place name or an explicit "lat,lon"
// pair. A failed or empty geocoding lookup falls back to the configured
// default; a failed or empty weather fetch is fatal.
func runPipeline(
	ctx context.Context,
	cfg *config.Config,
	locationInput string,
	period domain.Period,
	geocoder ports.Geocoder,
	weather ports.WeatherProvider,
	service *estimator.Service,
	log *zap.Logger,
) (report.Input, error) {
	loc := domain.Location{
		Name:      cfg.Location.Name,
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
	}

	if locationInput != "" {
		if strings.Contains(locationInput, ",") {
			// Explicit coordinates were stated, so a parse failure is fatal
			// rather than silently defaulted.
			lat, lon, err := config.ParseCoordinates(locationInput)
			if err != nil {
				return report.Input{}, fmt.Errorf("invalid coordinates %q: %w", locationInput, err)
			}
			loc = domain.Location{Latitude: lat, Longitude: lon}
		} else {
			resolved, err := geocoder.Resolve(ctx, locationInput)
			if err != nil {
				log.Warn("Geocoding failed, using default location",
					zap.String("query", locationInput),
					zap.String("default", loc.Name),
					zap.Error(err),
				)
			} else {
				log.Info("Location resolved",
					zap.String("name", resolved.Name),
					zap.String("country", resolved.Country),
					zap.Float64("latitude", resolved.Latitude),
					zap.Float64("longitude", resolved.Longitude),
				)
				loc = resolved
			}
		}
	}

	log.Info("Fetching weather data",
		zap.Float64("latitude", loc.Latitude),
		zap.Float64("longitude", loc.Longitude),
		zap.String("start", period.Start.Format("2006-01-02")),
		zap.String("end", period.End.Format("2006-01-02")),
	)

	series, err := weather.HourlyTemperatures(ctx, loc, period)
	if err != nil {
		return report.Input{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}

	params := cfg.Building.ToParameters()
	summary := service.EstimateSeason(params, series.Samples)

	log.Info("Season estimate complete",
		zap.Int("total_hours", summary.TotalHours),
		zap.Int("heating_hours", summary.HeatingHours),
		zap.Float64("heat_demand_kwh", summary.HeatDemandKWh),
		zap.Float64("electrical_kwh", summary.ElectricalKWh),
		zap.Float64("seasonal_cop", summary.SeasonalCOP),
	)

	return report.Input{
		Location: loc,
		Period:   period,
		Params:   params,
		Summary:  summary,
	}, nil
}
