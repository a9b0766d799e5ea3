package app

import (
	"testing"

	"quizhub_backend/internal/config"
)

func TestShouldMigrate(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{"debug migrates", "debug", false, true},
		{"test migrates", "test", false, true},
		{"release skips by default", "release", false, false},
		{"release migrates when forced", "release", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ForceMigrate: tt.force}
			cfg.Server.Mode = tt.mode
			if got := shouldMigrate(cfg); got != tt.want {
				t.Errorf("shouldMigrate() = %v, want %v", got, tt.want)
			}
		})
	}
}
