package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration from an optional YAML file and the
// environment, layered over the built-in defaults. An explicit file path
// overrides the search locations; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("heatpump")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("$HOME/.config/heatpump")
	}

	viper.SetEnvPrefix("HEATPUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without the HEATPUMP_ prefix
	viper.BindEnv("weather.archive_url", "OPEN_METEO_ARCHIVE_URL", "HEATPUMP_WEATHER_ARCHIVE_URL")
	viper.BindEnv("weather.geocoding_url", "OPEN_METEO_GEOCODING_URL", "HEATPUMP_WEATHER_GEOCODING_URL")
	viper.BindEnv("output.dir", "OUTPUT_DIR", "HEATPUMP_OUTPUT_DIR")

	setDefaults(Default())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file: defaults and env vars only
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(d *Config) {
	viper.SetDefault("building.efficiency_factor", d.Building.EfficiencyFactor)
	viper.SetDefault("building.indoor_temp_c", d.Building.IndoorTempC)
	viper.SetDefault("building.heating_curve_a", d.Building.HeatingCurveA)
	viper.SetDefault("building.heating_curve_b", d.Building.HeatingCurveB)
	viper.SetDefault("building.envelope_area_m2", d.Building.EnvelopeAreaM2)
	viper.SetDefault("building.u_value_w_m2k", d.Building.UValueWM2K)

	viper.SetDefault("location.name", d.Location.Name)
	viper.SetDefault("location.latitude", d.Location.Latitude)
	viper.SetDefault("location.longitude", d.Location.Longitude)

	viper.SetDefault("weather.archive_url", d.Weather.ArchiveURL)
	viper.SetDefault("weather.geocoding_url", d.Weather.GeocodingURL)
	viper.SetDefault("weather.language", d.Weather.Language)
	viper.SetDefault("weather.timeout", d.Weather.Timeout)
	viper.SetDefault("weather.max_retries", d.Weather.MaxRetries)
	viper.SetDefault("weather.retry_backoff", d.Weather.RetryBackoff)
}
