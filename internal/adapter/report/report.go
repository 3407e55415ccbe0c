package report

import (
	"fmt"
	"io"

	"github.com/mcolivver/heatpump/internal/domain"
)

// Input carries everything a renderer needs to echo a completed run.
type Input struct {
	RunID    string
	Location domain.Location
	Period   domain.Period
	Params   domain.BuildingParameters
	Summary  domain.SeasonSummary
}

// Render writes the human readable season report.
func Render(w io.Writer, in Input) {
	fmt.Fprintln(w, "--- Heat Pump Season Report ---")

	place := in.Location.Name
	if place == "" {
		place = "custom coordinates"
	}
	if in.Location.Country != "" {
		place = fmt.Sprintf("%s, %s", place, in.Location.Country)
	}
	fmt.Fprintf(w, "Location: %s (%.4f, %.4f)\n", place, in.Location.Latitude, in.Location.Longitude)
	fmt.Fprintf(w, "Period: %s to %s\n",
		in.Period.Start.Format("2006-01-02"),
		in.Period.End.Format("2006-01-02"),
	)

	if !in.Summary.HasHeatingDemand() {
		fmt.Fprintf(w, "Total hours in period: %d\n", in.Summary.TotalHours)
		fmt.Fprintln(w, "No heating demand in period (outdoor temperature never below indoor).")
		return
	}

	fmt.Fprintf(w, "Total hours in period: %d\n", in.Summary.TotalHours)
	fmt.Fprintf(w, "Heating hours: %d\n", in.Summary.HeatingHours)
	fmt.Fprintf(w, "Total heat demand: %.2f kWh\n", in.Summary.HeatDemandKWh)
	fmt.Fprintf(w, "Expected electricity consumption: %.2f kWh\n", in.Summary.ElectricalKWh)
	fmt.Fprintf(w, "Seasonal COP (JAZ): %.2f\n", in.Summary.SeasonalCOP)

	if degenerateHeatingCurve(in.Params) {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "Note: with a=%.0f and b=%.0f the heating curve yields a supply temperature\n",
			in.Params.HeatingCurveA, in.Params.HeatingCurveB)
		fmt.Fprintln(w, "equal to the outdoor temperature for every hour. No temperature difference")
		fmt.Fprintln(w, "is pumped, so the COP is theoretically unbounded and the seasonal COP")
		fmt.Fprintln(w, "inflates. For realistic scenarios choose e.g. a = 1.")
	}
}

// degenerateHeatingCurve reports the parameter combination where the
// heating curve produces a supply temperature identical to the outdoor
// temperature for every sample: slope -1 with the intercept at the
// indoor temperature.
func degenerateHeatingCurve(p domain.BuildingParameters) bool {
	return p.HeatingCurveA == -1.0 && p.HeatingCurveB == p.IndoorTempC
}
