package app

import (
	"testing"

	"github.com/lixenwraith/survival-arena/config"
)

func TestProfileOptions(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    int
	}{
		{"Disabled", "", 0},
		{"CPU", "cpu", 4},
		{"Memory", "mem", 4},
		{"Unknown", "trace", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profileOptions(config.DebugConfig{Profile: tt.profile, ProfileDir: "profiles"})
			if len(got) != tt.want {
				t.Errorf("Expected %d options, got %d", tt.want, len(got))
			}
		})
	}
}
