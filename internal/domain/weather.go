package domain

import "time"

// TemperatureSample is one hourly outdoor reading. A nil TemperatureC
// marks a missing reading in the archive.
type TemperatureSample struct {
	Time         time.Time `json:"time"`
	TemperatureC *float64  `json:"temperature_c,omitempty"` // °C
}

// Missing reports whether the reading is absent.
func (s TemperatureSample) Missing() bool {
	return s.TemperatureC == nil
}

// TemperatureSeries is the chronologically ordered hourly series a
// weather provider returns for one location and period.
type TemperatureSeries struct {
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	Samples   []TemperatureSample `json:"samples"`
}

// Location identifies a geographic point, optionally with the resolved
// place name and country.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Period is an inclusive civil date range.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
