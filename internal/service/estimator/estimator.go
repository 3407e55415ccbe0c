package estimator

import (
	"go.uber.org/zap"

	"github.com/mcolivver/heatpump/internal/domain"
)

// kelvinOffset converts °C to K.
const kelvinOffset = 273.15

// Service computes the hourly heat pump energy balance over a season.
// It is pure computation: no I/O, no hidden state, identical inputs
// always produce identical summaries.
type Service struct {
	log    *zap.Logger
	config *Config
}

// Config holds the tuning constants of the estimator. The exact values
// are not physics; only their ordering matters (the sentinel must
// comfortably exceed the zero-power threshold).
type Config struct {
	// SentinelCarnotCOP stands in for an unbounded Carnot COP when the
	// heating curve puts the supply temperature at or below the outdoor
	// temperature.
	SentinelCarnotCOP float64

	// ZeroPowerCOP is the threshold above which a real COP is treated as
	// unbounded and the hour draws no electrical power at all, instead of
	// a spuriously tiny nonzero value.
	ZeroPowerCOP float64
}

// DefaultConfig returns the default estimator tuning constants.
func DefaultConfig() *Config {
	return &Config{
		SentinelCarnotCOP: 99999.0,
		ZeroPowerCOP:      20000.0,
	}
}

// NewService creates a new estimator. A nil config uses defaults. A
// config whose sentinel does not exceed the zero-power threshold is
// replaced by defaults with a warning; the estimator itself never fails.
func NewService(config *Config, log *zap.Logger) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	if config.SentinelCarnotCOP <= config.ZeroPowerCOP {
		log.Warn("Estimator sentinel COP does not exceed zero-power threshold, using defaults",
			zap.Float64("sentinel_carnot_cop", config.SentinelCarnotCOP),
			zap.Float64("zero_power_cop", config.ZeroPowerCOP),
		)
		config = DefaultConfig()
	}

	return &Service{
		log:    log,
		config: config,
	}
}

// EvaluateHour computes the load, supply temperature, COP and electrical
// power for a single hour. The second return value is false when the hour
// needs no heating (outdoor temperature at or above indoor).
func (s *Service) EvaluateHour(params domain.BuildingParameters, outdoorC float64) (domain.HourResult, bool) {
	if outdoorC >= params.IndoorTempC {
		return domain.HourResult{}, false
	}

	deltaC := params.IndoorTempC - outdoorC

	// Heat load Q = U * A * (Ti - Ta), in watts.
	heatLoadW := params.UValueWM2K * params.EnvelopeAreaM2 * deltaC

	// Heating curve: supply (flow) temperature from the indoor/outdoor delta.
	supplyC := params.HeatingCurveA*deltaC + params.HeatingCurveB

	supplyK := supplyC + kelvinOffset
	outdoorK := outdoorC + kelvinOffset

	// Carnot COP = T_hot / (T_hot - T_cold). A heating curve that puts the
	// supply at or below the outdoor temperature would make this infinite
	// or negative, so it is clamped to the sentinel instead.
	var carnotCOP float64
	if supplyK <= outdoorK {
		carnotCOP = s.config.SentinelCarnotCOP
	} else {
		carnotCOP = supplyK / (supplyK - outdoorK)
	}

	// A real heat pump is assumed never worse than resistive heating.
	realCOP := params.EfficiencyFactor * carnotCOP
	if realCOP < 1.0 {
		realCOP = 1.0
	}

	var electricalW float64
	if realCOP > s.config.ZeroPowerCOP {
		electricalW = 0.0
	} else {
		electricalW = heatLoadW / realCOP
	}

	return domain.HourResult{
		OutdoorTempC: outdoorC,
		HeatLoadW:    heatLoadW,
		SupplyTempC:  supplyC,
		CarnotCOP:    carnotCOP,
		RealCOP:      realCOP,
		ElectricalW:  electricalW,
	}, true
}

// EstimateSeason runs EvaluateHour over every sample and aggregates the
// season energy balance. Missing samples count toward the total hour
// count only. Hourly power values are accumulated as watt-hours on the
// assumption of exact one-hour timesteps.
func (s *Service) EstimateSeason(params domain.BuildingParameters, samples []domain.TemperatureSample) domain.SeasonSummary {
	var (
		heatDemandWh float64
		electricalWh float64
		heatingHours int
	)

	for _, sample := range samples {
		if sample.Missing() {
			continue
		}

		hour, ok := s.EvaluateHour(params, *sample.TemperatureC)
		if !ok {
			continue
		}

		heatDemandWh += hour.HeatLoadW
		electricalWh += hour.ElectricalW
		heatingHours++
	}

	summary := domain.SeasonSummary{
		TotalHours:    len(samples),
		HeatingHours:  heatingHours,
		HeatDemandKWh: heatDemandWh / 1000.0,
		ElectricalKWh: electricalWh / 1000.0,
	}

	if summary.ElectricalKWh > 0 {
		summary.SeasonalCOP = summary.HeatDemandKWh / summary.ElectricalKWh
	}

	return summary
}
