package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mcolivver/heatpump/pkg/config"
)

// Interactive prompt helpers. Empty or unparseable entries fall back to
// the stated default; only explicit flag and config values are treated
// as fatal when invalid.

func promptFloat(scanner *bufio.Scanner, w io.Writer, label string, def float64) float64 {
	fmt.Fprintf(w, "%s [default: %g]: ", label, def)
	if !scanner.Scan() {
		return def
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return def
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintf(w, "Invalid input. Using default: %g\n", def)
		return def
	}
	return value
}

func promptDate(scanner *bufio.Scanner, w io.Writer, label, def string) string {
	fmt.Fprintf(w, "%s (YYYY-MM-DD) [default: %s]: ", label, def)
	if !scanner.Scan() {
		return def
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return def
	}
	if _, err := time.Parse("2006-01-02", line); err != nil {
		fmt.Fprintf(w, "Wrong format. Using default: %s\n", def)
		return def
	}
	return line
}

func promptString(scanner *bufio.Scanner, w io.Writer, label, def string) string {
	fmt.Fprintf(w, "%s [default: %s]: ", label, def)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// runInteractive walks the operator through every parameter, writing the
// answers back into cfg. It returns the location input; an empty string
// keeps the configured default location.
func runInteractive(scanner *bufio.Scanner, w io.Writer, cfg *config.Config) string {
	fmt.Fprintln(w, "--- Heat Pump Season Estimator ---")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Enter parameters (empty keeps the default):")

	cfg.Building.EfficiencyFactor = promptFloat(scanner, w,
		"Efficiency factor (Carnot derating, 0-1)", cfg.Building.EfficiencyFactor)

	defaults := config.DefaultPeriod(time.Now())
	startDef := cfg.Period.Start
	if startDef == "" {
		startDef = defaults.Start.Format("2006-01-02")
	}
	endDef := cfg.Period.End
	if endDef == "" {
		endDef = defaults.End.Format("2006-01-02")
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Define the period (both dates must lie in the past).")
	cfg.Period.Start = promptDate(scanner, w, "Start date", startDef)
	cfg.Period.End = promptDate(scanner, w, "End date", endDef)

	cfg.Building.IndoorTempC = promptFloat(scanner, w,
		"Indoor temperature in °C", cfg.Building.IndoorTempC)

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Heating curve: supply = a * (indoor - outdoor) + b")
	cfg.Building.HeatingCurveA = promptFloat(scanner, w, "Parameter a", cfg.Building.HeatingCurveA)
	cfg.Building.HeatingCurveB = promptFloat(scanner, w, "Parameter b in °C", cfg.Building.HeatingCurveB)

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Note: the area is the building envelope (walls+roof+floor), not the living area.")
	fmt.Fprintln(w, "Rule of thumb: envelope is roughly 2 to 3 times the living area.")
	cfg.Building.EnvelopeAreaM2 = promptFloat(scanner, w,
		"Building envelope area in m²", cfg.Building.EnvelopeAreaM2)
	cfg.Building.UValueWM2K = promptFloat(scanner, w,
		"Heat transfer coefficient U in W/(m²·K)", cfg.Building.UValueWM2K)

	fmt.Fprintln(w, "")
	return promptString(scanner, w, "Location (name or \"lat,lon\")", cfg.Location.Name)
}
