package ports

import (
	"context"

	"github.com/mcolivver/heatpump/internal/domain"
)

// WeatherProvider fetches the hourly outdoor temperature series for a
// location over a historical period. Missing readings are preserved as
// missing samples, never dropped.
type WeatherProvider interface {
	HourlyTemperatures(ctx context.Context, loc domain.Location, period domain.Period) (domain.TemperatureSeries, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (domain.Location, error)
}
