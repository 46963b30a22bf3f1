package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}

	if cfg.Formation.Count != 24 || cfg.Formation.Columns != 8 || cfg.Formation.Rows != 3 {
		t.Errorf("expected 24 invaders in 8x3 formation, got %d in %dx%d",
			cfg.Formation.Count, cfg.Formation.Columns, cfg.Formation.Rows)
	}
	if cfg.Invader.PatrolRange != 40 {
		t.Errorf("expected patrol range 40, got %f", cfg.Invader.PatrolRange)
	}
	if cfg.Invader.FireThreshold != 0.995 {
		t.Errorf("expected fire threshold 0.995, got %f", cfg.Invader.FireThreshold)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
screen:
  width: 400
player:
  shootIntervalMs: 500
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Screen.Width != 400 {
					t.Errorf("expected width = 400, got %d", cfg.Screen.Width)
				}
				// 未设置的字段保留默认值
				if cfg.Screen.Height != 310 {
					t.Errorf("expected default height = 310, got %d", cfg.Screen.Height)
				}
				if cfg.ShootInterval() != 500*time.Millisecond {
					t.Errorf("expected shoot interval = 500ms, got %v", cfg.ShootInterval())
				}
				if cfg.Invader.SpeedX != 0.3 {
					t.Errorf("expected default speedX = 0.3, got %f", cfg.Invader.SpeedX)
				}
			},
		},
		{
			name: "colors",
			yamlContent: `
player:
  color: {r: 1, g: 2, b: 3, a: 4}
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				c := cfg.Player.Color.RGBA()
				if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
					t.Errorf("unexpected color %+v", c)
				}
			},
		},
		{
			name: "invalid screen size",
			yamlContent: `
screen:
  width: 0
`,
			wantErr:     true,
			errContains: "screen size",
		},
		{
			name: "negative entity size",
			yamlContent: `
bullet:
  width: -1
`,
			wantErr:     true,
			errContains: "bullet size",
		},
		{
			name: "fire threshold out of range",
			yamlContent: `
invader:
  fireThreshold: 1.5
`,
			wantErr:     true,
			errContains: "fireThreshold",
		},
		{
			name: "sprite sheet without grid",
			yamlContent: `
sprites:
  sheet: "assets/invaders.png"
  columns: 0
`,
			wantErr:     true,
			errContains: "sprite grid",
		},
		{
			name:        "malformed yaml",
			yamlContent: "screen: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read game config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBundledGameConfig(t *testing.T) {
	// 仓库自带的默认配置必须能通过验证
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultGameConfigPath))
	if err != nil {
		t.Fatalf("bundled config should load, got %v", err)
	}

	want := DefaultGameConfig()
	if *cfg != *want {
		t.Errorf("bundled config should match defaults:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestWindowSize(t *testing.T) {
	cfg := DefaultGameConfig()
	w, h := cfg.WindowSize()
	if w != 620 || h != 620 {
		t.Errorf("expected 620x620 window, got %dx%d", w, h)
	}
}
