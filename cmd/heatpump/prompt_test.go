package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/mcolivver/heatpump/pkg/config"
)

func scriptedScanner(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func TestPromptFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{"valid value", "0.65", 0.5, 0.65},
		{"empty keeps default", "", 0.5, 0.5},
		{"whitespace keeps default", "   ", 0.5, 0.5},
		{"garbage keeps default", "abc", 0.5, 0.5},
		{"negative accepted", "-3.5", 20.0, -3.5},
	}

	for _, tt := range tests {
		var out strings.Builder
		got := promptFloat(scriptedScanner(tt.input), &out, "Value", tt.def)
		if got != tt.want {
			t.Errorf("%s: promptFloat = %g, expected %g", tt.name, got, tt.want)
		}
	}
}

func TestPromptFloat_InvalidInputNotesDefault(t *testing.T) {
	var out strings.Builder
	promptFloat(scriptedScanner("not-a-number"), &out, "Value", 0.5)

	if !strings.Contains(out.String(), "Invalid input. Using default: 0.5") {
		t.Errorf("missing default-substitution note:\n%s", out.String())
	}
}

func TestPromptFloat_ExhaustedInputKeepsDefault(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader(""))
	var out strings.Builder

	if got := promptFloat(scanner, &out, "Value", 1.25); got != 1.25 {
		t.Errorf("promptFloat on EOF = %g, expected default", got)
	}
}

func TestPromptDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid date", "2024-10-01", "2024-10-01"},
		{"empty keeps default", "", "2024-01-01"},
		{"wrong format keeps default", "01.10.2024", "2024-01-01"},
		{"nonsense keeps default", "next tuesday", "2024-01-01"},
	}

	for _, tt := range tests {
		var out strings.Builder
		got := promptDate(scriptedScanner(tt.input), &out, "Start date", "2024-01-01")
		if got != tt.want {
			t.Errorf("%s: promptDate = %q, expected %q", tt.name, got, tt.want)
		}
	}
}

func TestRunInteractive(t *testing.T) {
	cfg := config.Default()

	// One answer per prompt: efficiency, start date, end date, indoor
	// temperature, curve a, curve b, envelope area, U-value, location.
	scanner := scriptedScanner(
		"0.45",
		"2024-10-01",
		"2025-03-31",
		"21",
		"1.2",
		"24",
		"250",
		"0.35",
		"Berlin",
	)

	var out strings.Builder
	location := runInteractive(scanner, &out, cfg)

	if cfg.Building.EfficiencyFactor != 0.45 {
		t.Errorf("EfficiencyFactor = %g", cfg.Building.EfficiencyFactor)
	}
	if cfg.Period.Start != "2024-10-01" || cfg.Period.End != "2025-03-31" {
		t.Errorf("period = %q..%q", cfg.Period.Start, cfg.Period.End)
	}
	if cfg.Building.IndoorTempC != 21 {
		t.Errorf("IndoorTempC = %g", cfg.Building.IndoorTempC)
	}
	if cfg.Building.HeatingCurveA != 1.2 || cfg.Building.HeatingCurveB != 24 {
		t.Errorf("heating curve = %g/%g", cfg.Building.HeatingCurveA, cfg.Building.HeatingCurveB)
	}
	if cfg.Building.EnvelopeAreaM2 != 250 || cfg.Building.UValueWM2K != 0.35 {
		t.Errorf("envelope = %g m² at U=%g", cfg.Building.EnvelopeAreaM2, cfg.Building.UValueWM2K)
	}
	if location != "Berlin" {
		t.Errorf("location = %q, expected Berlin", location)
	}
}

func TestRunInteractive_AllDefaults(t *testing.T) {
	cfg := config.Default()
	want := *cfg

	// Empty answers everywhere keep every default.
	scanner := scriptedScanner("", "", "", "", "", "", "", "", "")
	var out strings.Builder
	location := runInteractive(scanner, &out, cfg)

	if cfg.Building != want.Building {
		t.Errorf("building changed: %+v", cfg.Building)
	}
	if location != "" {
		t.Errorf("location = %q, expected empty (keep configured default)", location)
	}
	if cfg.Period.Start == "" || cfg.Period.End == "" {
		t.Errorf("period defaults not echoed back: %q..%q", cfg.Period.Start, cfg.Period.End)
	}
}
