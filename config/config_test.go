package config

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/survival-arena/constants"
)

func TestDefaultDecodesEmbeddedTable(t *testing.T) {
	cfg := Default()

	if cfg.Physics.FrameRate != constants.FrameRate {
		t.Errorf("Expected frame rate %d, got %d", constants.FrameRate, cfg.Physics.FrameRate)
	}
	if cfg.Physics.VelocityIterations != constants.VelocityIterations || cfg.Physics.PositionIterations != constants.PositionIterations {
		t.Errorf("Expected %d/%d iterations, got %d/%d",
			constants.VelocityIterations, constants.PositionIterations,
			cfg.Physics.VelocityIterations, cfg.Physics.PositionIterations)
	}
	if cfg.Biggest.Gravity != [2]float64{0, -10} {
		t.Errorf("Expected biggest gravity (0,-10), got %v", cfg.Biggest.Gravity)
	}
	if cfg.Biggest.SizeDivisor != 500 {
		t.Errorf("Expected size divisor 500, got %v", cfg.Biggest.SizeDivisor)
	}
	if cfg.Window.TitleBiggest != "My game" {
		t.Errorf("Unexpected biggest title %q", cfg.Window.TitleBiggest)
	}
	if cfg.Logging.Enabled {
		t.Error("Expected logging disabled by default")
	}
	if got := cfg.Physics.TimeStep(); math.Abs(got-constants.TimeStep) > 1e-12 {
		t.Errorf("Expected 1/60 time step, got %v", got)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := defaultsTOML + "\n[extra]\nspeed = 3\n"

	_, err := Parse(data)
	if err == nil {
		t.Fatal("Expected error for unknown keys")
	}
	if !strings.Contains(err.Error(), "extra") {
		t.Errorf("Expected error to name the unknown key, got %v", err)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"zero frame rate", [2]string{"frame_rate = 60", "frame_rate = 0"}},
		{"bad shape", [2]string{`shape = "circle"`, `shape = "star"`}},
		{"loud audio", [2]string{"volume = 0.4", "volume = 1.5"}},
		{"bad profile", [2]string{`profile = ""`, `profile = "trace"`}},
		{"paddle outside", [2]string{"paddle_x = 32.0", "paddle_x = 50.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(defaultsTOML, tt.replace[0], tt.replace[1], 1)
			if data == defaultsTOML {
				t.Fatalf("Replacement %q not found in defaults", tt.replace[0])
			}
			if _, err := Parse(data); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	if _, err := Parse("[physics\nframe_rate = "); err == nil {
		t.Error("Expected decode error for malformed TOML")
	}
}
