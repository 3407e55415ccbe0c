package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mcolivver/heatpump/internal/adapter/openmeteo"
	"github.com/mcolivver/heatpump/internal/adapter/report"
	"github.com/mcolivver/heatpump/internal/service/estimator"
	"github.com/mcolivver/heatpump/pkg/config"
)

const version = "1.0.0"

func main() {
	var (
		efficiency  float64
		indoorTemp  float64
		curveA      float64
		curveB      float64
		area        float64
		uValue      float64
		locationArg string
		startDate   string
		endDate     string
		outputDir   string
		configFile  string
		interactive bool
		verbose     bool
		showVersion bool
	)

	defaults := config.Default()

	pflag.Float64VarP(&efficiency, "efficiency", "e", defaults.Building.EfficiencyFactor,
		"Carnot derating factor (values above 1 are physically implausible)")
	pflag.Float64Var(&indoorTemp, "indoor-temp", defaults.Building.IndoorTempC,
		"Indoor temperature in °C")
	pflag.Float64Var(&curveA, "curve-a", defaults.Building.HeatingCurveA,
		"Heating curve slope a: supply = a*(indoor-outdoor) + b")
	pflag.Float64Var(&curveB, "curve-b", defaults.Building.HeatingCurveB,
		"Heating curve intercept b in °C")
	pflag.Float64VarP(&area, "area", "A", defaults.Building.EnvelopeAreaM2,
		"Building envelope area in m² (walls+roof+floor, not living area)")
	pflag.Float64VarP(&uValue, "u-value", "U", defaults.Building.UValueWM2K,
		"Heat transfer coefficient U in W/(m²·K)")
	pflag.StringVarP(&locationArg, "location", "l", "",
		"Location as place name or \"lat,lon\" (default: configured location)")
	pflag.StringVar(&startDate, "start", "",
		"Start date YYYY-MM-DD (default: one year before yesterday)")
	pflag.StringVar(&endDate, "end", "",
		"End date YYYY-MM-DD (default: yesterday)")
	pflag.StringVarP(&outputDir, "output", "o", "",
		"Output directory for JSON and CSV report files (empty disables export)")
	pflag.StringVar(&configFile, "config", "",
		"Path to a YAML config file")
	pflag.BoolVarP(&interactive, "interactive", "i", false,
		"Prompt for every parameter interactively")
	pflag.BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	pflag.BoolVarP(&showVersion, "version", "V", false,
		"Show program version")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Heat Pump Season Estimator v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Estimates the seasonal electricity consumption and seasonal COP (JAZ)\n")
		fmt.Fprintf(os.Stderr, "of an air-source heat pump from historical hourly outdoor temperatures.\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  heatpump [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  heatpump -l Hamburg --start 2024-10-01 --end 2025-03-31\n")
		fmt.Fprintf(os.Stderr, "  heatpump -l \"53.55,9.99\" -e 0.45 -A 220 -U 0.3 -o results\n")
		fmt.Fprintf(os.Stderr, "  heatpump -i\n")
	}

	pflag.Parse()

	if showVersion {
		fmt.Printf("heatpump v%s\n", version)
		os.Exit(0)
	}

	// 1. Initialize Logger
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger.Info("Starting heat pump season estimate",
		zap.String("version", version),
		zap.String("run_id", runID),
	)

	// 2. Load Configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Apply flag overrides
	flags := pflag.CommandLine
	if flags.Changed("efficiency") {
		cfg.Building.EfficiencyFactor = efficiency
	}
	if flags.Changed("indoor-temp") {
		cfg.Building.IndoorTempC = indoorTemp
	}
	if flags.Changed("curve-a") {
		cfg.Building.HeatingCurveA = curveA
	}
	if flags.Changed("curve-b") {
		cfg.Building.HeatingCurveB = curveB
	}
	if flags.Changed("area") {
		cfg.Building.EnvelopeAreaM2 = area
	}
	if flags.Changed("u-value") {
		cfg.Building.UValueWM2K = uValue
	}
	if flags.Changed("start") {
		cfg.Period.Start = startDate
	}
	if flags.Changed("end") {
		cfg.Period.End = endDate
	}
	if flags.Changed("output") {
		cfg.Output.Dir = outputDir
	}

	locationInput := ""
	if flags.Changed("location") {
		locationInput = locationArg
	}

	// 4. Interactive overrides
	if interactive {
		locationInput = runInteractive(bufio.NewScanner(os.Stdin), os.Stdout, cfg)
	}

	// 5. Validate the boundary inputs
	warnings, err := cfg.Building.Validate()
	if err != nil {
		logger.Fatal("Invalid building parameters", zap.Error(err))
	}
	for _, warning := range warnings {
		logger.Warn(warning)
	}

	now := time.Now()
	period, err := cfg.Period.Resolve(now)
	if err != nil {
		logger.Fatal("Invalid period", zap.Error(err))
	}
	if warning, err := config.ValidatePeriod(period, now); err != nil {
		logger.Fatal("Invalid period", zap.Error(err))
	} else if warning != "" {
		logger.Warn(warning)
	}

	// 6. Wire clients and run the pipeline
	geocoder := openmeteo.NewGeocodingClient(&openmeteo.GeocodingConfig{
		BaseURL:      cfg.Weather.GeocodingURL,
		Language:     cfg.Weather.Language,
		Timeout:      cfg.Weather.Timeout,
		MaxRetries:   cfg.Weather.MaxRetries,
		RetryBackoff: cfg.Weather.RetryBackoff,
	}, logger)

	archive := openmeteo.NewArchiveClient(&openmeteo.ArchiveConfig{
		BaseURL:      cfg.Weather.ArchiveURL,
		Timeout:      cfg.Weather.Timeout,
		MaxRetries:   cfg.Weather.MaxRetries,
		RetryBackoff: cfg.Weather.RetryBackoff,
	}, logger)

	service := estimator.NewService(nil, logger)

	in, err := runPipeline(context.Background(), cfg, locationInput, period, geocoder, archive, service, logger)
	if err != nil {
		logger.Fatal("Run failed", zap.Error(err))
	}
	in.RunID = runID

	// 7. Render the report and export files
	fmt.Println()
	report.Render(os.Stdout, in)

	if cfg.Output.Dir != "" {
		writer := report.NewWriter(cfg.Output.Dir, logger)
		if _, _, err := writer.Save(in); err != nil {
			logger.Fatal("Failed to write report files", zap.Error(err))
		}
	}
}
