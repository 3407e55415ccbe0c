package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Writer exports a season report as timestamped JSON and CSV files.
type Writer struct {
	outputDir string
	log       *zap.Logger
}

// NewWriter creates a file report writer for the given output directory.
func NewWriter(outputDir string, log *zap.Logger) *Writer {
	return &Writer{
		outputDir: outputDir,
		log:       log,
	}
}

// fileOutput is the JSON export shape.
type fileOutput struct {
	// metadata
	RunID     string `json:"run_id"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Start     string `json:"start_date"`
	End       string `json:"end_date"`

	// inputs
	EfficiencyFactor float64 `json:"efficiency_factor"`
	IndoorTempC      float64 `json:"indoor_temp_c"`
	HeatingCurveA    float64 `json:"heating_curve_a"`
	HeatingCurveB    float64 `json:"heating_curve_b"`
	EnvelopeAreaM2   float64 `json:"envelope_area_m2"`
	UValueWM2K       float64 `json:"u_value_w_m2k"`

	// results
	TotalHours    int     `json:"total_hours"`
	HeatingHours  int     `json:"heating_hours"`
	HeatDemandKWh float64 `json:"heat_demand_kwh"`
	ElectricalKWh float64 `json:"electrical_kwh"`
	SeasonalCOP   float64 `json:"seasonal_cop"`
}

// Save writes the JSON and CSV report files and returns their paths.
func (w *Writer) Save(in Input) (jsonPath, csvPath string, err error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	now := time.Now()
	timestamp := now.Format("2006-01-02_150405")

	output := fileOutput{
		RunID:            in.RunID,
		Timestamp:        now.Format(time.RFC3339),
		Location:         in.Location.Name,
		Latitude:         in.Location.Latitude,
		Longitude:        in.Location.Longitude,
		Start:            in.Period.Start.Format("2006-01-02"),
		End:              in.Period.End.Format("2006-01-02"),
		EfficiencyFactor: in.Params.EfficiencyFactor,
		IndoorTempC:      in.Params.IndoorTempC,
		HeatingCurveA:    in.Params.HeatingCurveA,
		HeatingCurveB:    in.Params.HeatingCurveB,
		EnvelopeAreaM2:   in.Params.EnvelopeAreaM2,
		UValueWM2K:       in.Params.UValueWM2K,
		TotalHours:       in.Summary.TotalHours,
		HeatingHours:     in.Summary.HeatingHours,
		HeatDemandKWh:    in.Summary.HeatDemandKWh,
		ElectricalKWh:    in.Summary.ElectricalKWh,
		SeasonalCOP:      in.Summary.SeasonalCOP,
	}

	jsonPath = filepath.Join(w.outputDir, fmt.Sprintf("heatpump_%s.json", timestamp))
	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	csvPath = filepath.Join(w.outputDir, fmt.Sprintf("heatpump_%s.csv", timestamp))
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer csvFile.Close()

	writer := csv.NewWriter(csvFile)
	defer writer.Flush()

	headers := []string{
		"Run ID", "Timestamp", "Location", "Latitude", "Longitude",
		"Start Date", "End Date",
		"Efficiency Factor", "Indoor Temp (C)", "Curve a", "Curve b (C)",
		"Envelope Area (m2)", "U-Value (W/m2K)",
		"Total Hours", "Heating Hours",
		"Heat Demand (kWh)", "Electricity (kWh)", "Seasonal COP",
	}

	data := []string{
		output.RunID, output.Timestamp, output.Location,
		fmt.Sprintf("%.4f", output.Latitude),
		fmt.Sprintf("%.4f", output.Longitude),
		output.Start, output.End,
		fmt.Sprintf("%.2f", output.EfficiencyFactor),
		fmt.Sprintf("%.1f", output.IndoorTempC),
		fmt.Sprintf("%.2f", output.HeatingCurveA),
		fmt.Sprintf("%.1f", output.HeatingCurveB),
		fmt.Sprintf("%.1f", output.EnvelopeAreaM2),
		fmt.Sprintf("%.2f", output.UValueWM2K),
		fmt.Sprintf("%d", output.TotalHours),
		fmt.Sprintf("%d", output.HeatingHours),
		fmt.Sprintf("%.2f", output.HeatDemandKWh),
		fmt.Sprintf("%.2f", output.ElectricalKWh),
		fmt.Sprintf("%.2f", output.SeasonalCOP),
	}

	if err := writer.Write(headers); err != nil {
		return "", "", fmt.Errorf("failed to write CSV headers: %w", err)
	}
	if err := writer.Write(data); err != nil {
		return "", "", fmt.Errorf("failed to write CSV data: %w", err)
	}

	w.log.Info("Report files written",
		zap.String("run_id", in.RunID),
		zap.String("json", jsonPath),
		zap.String("csv", csvPath),
	)

	return jsonPath, csvPath, nil
}
