package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestScriptInput(t *testing.T) {
	tests := []struct {
		name      string
		tick      int
		wantLeft  bool
		wantRight bool
		wantSpace bool
	}{
		{"开火帧", 0, false, false, true},
		{"第一段向左", 1, true, false, false},
		{"第二段向右", 121, false, true, false},
		{"第三段向左", 241, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := utils.NewInputState()
			scriptInput(input, tt.tick, 15, 120)

			if input.IsDown(utils.KeyLeft) != tt.wantLeft ||
				input.IsDown(utils.KeyRight) != tt.wantRight ||
				input.IsDown(utils.KeySpace) != tt.wantSpace {
				t.Errorf("tick %d: left=%v right=%v space=%v", tt.tick,
					input.IsDown(utils.KeyLeft), input.IsDown(utils.KeyRight), input.IsDown(utils.KeySpace))
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()

	a := simulate(cfg, 600, 42, 15, 120)
	b := simulate(cfg, 600, 42, 15, 120)

	if a != b {
		t.Errorf("Same seed produced different results: %+v vs %+v", a, b)
	}
	if a.ticks != 600 {
		t.Errorf("ticks = %d, want 600", a.ticks)
	}
}

func TestSimulateBulletsBounded(t *testing.T) {
	cfg := config.DefaultGameConfig()

	stats := simulate(cfg, 3000, 7, 15, 120)

	// 25 个初始实体加上有限的在途子弹
	if stats.peakBodies > 25+60 {
		t.Errorf("Peak bodies = %d, bullets are not being culled", stats.peakBodies)
	}
	if stats.final.Invaders > 24 {
		t.Errorf("Invaders = %d, cannot exceed the initial 24", stats.final.Invaders)
	}
}
