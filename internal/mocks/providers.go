package mocks

import (
	"context"

	"github.com/mcolivver/heatpump/internal/domain"
)

// MockWeatherProvider is a mock implementation of the WeatherProvider interface
type MockWeatherProvider struct {
	HourlyTemperaturesFunc func(ctx context.Context, loc domain.Location, period domain.Period) (domain.TemperatureSeries, error)
}

func (m *MockWeatherProvider) HourlyTemperatures(ctx context.Context, loc domain.Location, period domain.Period) (domain.TemperatureSeries, error) {
	if m.HourlyTemperaturesFunc != nil {
		return m.HourlyTemperaturesFunc(ctx, loc, period)
	}
	return domain.TemperatureSeries{}, nil
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	ResolveFunc func(ctx context.Context, name string) (domain.Location, error)
}

func (m *MockGeocoder) Resolve(ctx context.Context, name string) (domain.Location, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, name)
	}
	return domain.Location{}, nil
}
