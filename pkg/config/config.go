package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcolivver/heatpump/internal/domain"
)

type Config struct {
	Building BuildingConfig `mapstructure:"building"`
	Period   PeriodConfig   `mapstructure:"period"`
	Location LocationConfig `mapstructure:"location"`
	Weather  WeatherConfig  `mapstructure:"weather"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type BuildingConfig struct {
	EfficiencyFactor float64 `mapstructure:"efficiency_factor"` // Carnot derating factor
	IndoorTempC      float64 `mapstructure:"indoor_temp_c"`     // °C
	HeatingCurveA    float64 `mapstructure:"heating_curve_a"`
	HeatingCurveB    float64 `mapstructure:"heating_curve_b"` // °C
	EnvelopeAreaM2   float64 `mapstructure:"envelope_area_m2"`
	UValueWM2K       float64 `mapstructure:"u_value_w_m2k"`
}

type PeriodConfig struct {
	Start string `mapstructure:"start"` // YYYY-MM-DD, empty derives the default
	End   string `mapstructure:"end"`   // YYYY-MM-DD, empty derives the default
}

type LocationConfig struct {
	Name      string  `mapstructure:"name"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

type WeatherConfig struct {
	ArchiveURL   string        `mapstructure:"archive_url"`
	GeocodingURL string        `mapstructure:"geocoding_url"`
	Language     string        `mapstructure:"language"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"` // empty disables file export
}

type LoggingConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the built-in defaults: a 100 m² envelope at U=0.5 with
// a plain a=1/b=22 heating curve, located in Hamburg, over the last year.
func Default() *Config {
	return &Config{
		Building: BuildingConfig{
			EfficiencyFactor: 0.5,
			IndoorTempC:      20.0,
			HeatingCurveA:    1.0,
			HeatingCurveB:    22.0,
			EnvelopeAreaM2:   100.0,
			UValueWM2K:       0.5,
		},
		Location: LocationConfig{
			Name:      "Hamburg",
			Latitude:  53.5511,
			Longitude: 9.9937,
		},
		Weather: WeatherConfig{
			ArchiveURL:   "https://archive-api.open-meteo.com",
			GeocodingURL: "https://geocoding-api.open-meteo.com",
			Language:     "de",
			Timeout:      30 * time.Second,
			MaxRetries:   2,
			RetryBackoff: 500 * time.Millisecond,
		},
	}
}

// ToParameters converts the validated building section into the immutable
// parameter set the estimator consumes.
func (b BuildingConfig) ToParameters() domain.BuildingParameters {
	return domain.BuildingParameters{
		EfficiencyFactor: b.EfficiencyFactor,
		IndoorTempC:      b.IndoorTempC,
		HeatingCurveA:    b.HeatingCurveA,
		HeatingCurveB:    b.HeatingCurveB,
		EnvelopeAreaM2:   b.EnvelopeAreaM2,
		UValueWM2K:       b.UValueWM2K,
	}
}

// Validate checks the physical plausibility of the building section.
// Violated positivity requirements are errors; an efficiency factor above
// 1 is accepted but reported as a warning.
func (b BuildingConfig) Validate() ([]string, error) {
	if b.EfficiencyFactor <= 0 {
		return nil, fmt.Errorf("efficiency factor must be positive, got %f", b.EfficiencyFactor)
	}
	if b.EnvelopeAreaM2 <= 0 {
		return nil, fmt.Errorf("envelope area must be positive, got %f", b.EnvelopeAreaM2)
	}
	if b.UValueWM2K <= 0 {
		return nil, fmt.Errorf("U-value must be positive, got %f", b.UValueWM2K)
	}

	var warnings []string
	if b.EfficiencyFactor > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"efficiency factor %.2f exceeds 1, which is physically implausible for a Carnot derating factor",
			b.EfficiencyFactor))
	}
	return warnings, nil
}

// ParseCoordinates parses an explicit "lat,lon" location input.
func ParseCoordinates(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,lon\", got %q", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return lat, lon, nil
}

// DefaultPeriod derives the default historical period: one year back
// through yesterday.
func DefaultPeriod(now time.Time) domain.Period {
	yesterday := now.AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
	return domain.Period{
		Start: yesterday.AddDate(0, 0, -365),
		End:   yesterday,
	}
}

// Resolve parses the configured period dates, substituting the derived
// defaults for empty fields.
func (p PeriodConfig) Resolve(now time.Time) (domain.Period, error) {
	period := DefaultPeriod(now)

	if p.Start != "" {
		start, err := time.Parse("2006-01-02", p.Start)
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid start date %q: %w", p.Start, err)
		}
		period.Start = start
	}
	if p.End != "" {
		end, err := time.Parse("2006-01-02", p.End)
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid end date %q: %w", p.End, err)
		}
		period.End = end
	}

	return period, nil
}

// ValidatePeriod checks the chronological ordering of a period. A start
// at or after the end is an error; an end not strictly in the past only
// produces a warning, since the archive simply has no data yet for it.
func ValidatePeriod(period domain.Period, now time.Time) (string, error) {
	if !period.Start.Before(period.End) {
		return "", fmt.Errorf("start date %s must be before end date %s",
			period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !period.End.Before(today) {
		return fmt.Sprintf("end date %s should lie in the past for historical data",
			period.End.Format("2006-01-02")), nil
	}

	return "", nil
}
