package domain

// BuildingParameters describes the building envelope and the heat pump
// efficiency assumptions for a single run. Immutable once constructed;
// positivity of the physical values is validated at the config boundary.
type BuildingParameters struct {
	EfficiencyFactor float64 `json:"efficiency_factor"` // Carnot derating factor, dimensionless
	IndoorTempC      float64 `json:"indoor_temp_c"`     // °C
	HeatingCurveA    float64 `json:"heating_curve_a"`   // heating curve slope
	HeatingCurveB    float64 `json:"heating_curve_b"`   // heating curve intercept, °C
	EnvelopeAreaM2   float64 `json:"envelope_area_m2"`  // m² (walls+roof+floor, not living area)
	UValueWM2K       float64 `json:"u_value_w_m2k"`     // W/(m²·K)
}

// HourResult holds the derived figures for one heating hour.
type HourResult struct {
	OutdoorTempC float64 `json:"outdoor_temp_c"` // °C
	HeatLoadW    float64 `json:"heat_load_w"`    // W
	SupplyTempC  float64 `json:"supply_temp_c"`  // °C flow temperature from the heating curve
	CarnotCOP    float64 `json:"carnot_cop"`
	RealCOP      float64 `json:"real_cop"`
	ElectricalW  float64 `json:"electrical_w"` // W
}

// SeasonSummary aggregates the full run over a temperature series.
type SeasonSummary struct {
	TotalHours    int     `json:"total_hours"`
	HeatingHours  int     `json:"heating_hours"`
	HeatDemandKWh float64 `json:"heat_demand_kwh"`
	ElectricalKWh float64 `json:"electrical_kwh"`
	SeasonalCOP   float64 `json:"seasonal_cop"` // JAZ: heat delivered / electricity consumed
}

// HasHeatingDemand reports whether any hour in the run needed heating.
func (s SeasonSummary) HasHeatingDemand() bool {
	return s.HeatingHours > 0
}
