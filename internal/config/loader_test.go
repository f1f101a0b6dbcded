package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultToyConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultToyConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 8\nsim:\n  tick_rate: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Ball.Speed != 8 {
		t.Errorf("Ball.Speed = %f, expected 8", cfg.Ball.Speed)
	}
	if cfg.Sim.TickRate != 30 {
		t.Errorf("Sim.TickRate = %d, expected 30", cfg.Sim.TickRate)
	}
	// Fields absent from the file keep their defaults
	if cfg.Arena != DefaultToyConfig().Arena {
		t.Errorf("Arena = %+v, expected defaults", cfg.Arena)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ToyConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*ToyConfig) {},
		},
		{
			name:    "zero width arena",
			mutate:  func(c *ToyConfig) { c.Arena.Right = c.Arena.Left },
			wantErr: ErrInvalidArena,
		},
		{
			name:    "inverted height",
			mutate:  func(c *ToyConfig) { c.Arena.Top, c.Arena.Bottom = -300, 300 },
			wantErr: ErrInvalidArena,
		},
		{
			name:    "zero tick rate",
			mutate:  func(c *ToyConfig) { c.Sim.TickRate = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative wall thickness",
			mutate:  func(c *ToyConfig) { c.Arena.WallThickness = -1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero brick width",
			mutate:  func(c *ToyConfig) { c.Brick.Width = 0 },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultToyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultToyConfig()
	if cfg.TickDuration() != 1.0/60.0 {
		t.Errorf("TickDuration() = %f, expected 1/60", cfg.TickDuration())
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultToyConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Brick.Speed != 512*1.5 {
		t.Errorf("hard Brick.Speed = %f, expected %f", cfg.Brick.Speed, 512*1.5)
	}

	cfg = DefaultToyConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if cfg != DefaultToyConfig() {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultToyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultToyConfig() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}
