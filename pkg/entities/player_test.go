package entities

import (
	"testing"
	"time"

	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

func TestNewPlayerPosition(t *testing.T) {
	cfg := testConfig()
	clock := newFakeClock()
	p := NewPlayer(cfg, pressed(), nil, clock.Now)

	pos := p.Position()
	if pos.X != 155 || pos.Y != 295 {
		t.Errorf("Expected player at (155, 295), got (%f, %f)", pos.X, pos.Y)
	}
	if p.Kind() != types.BodyPlayer {
		t.Errorf("Expected BodyPlayer, got %v", p.Kind())
	}
}

func TestPlayerActionPriority(t *testing.T) {
	tests := []struct {
		name        string
		keys        []utils.KeyCode
		wantX       float64
		wantBullets int
	}{
		{"无按键", nil, 155, 0},
		{"左移", []utils.KeyCode{utils.KeyLeft}, 153, 0},
		{"右移", []utils.KeyCode{utils.KeyRight}, 157, 0},
		{"开火", []utils.KeyCode{utils.KeySpace}, 155, 1},
		{"左右同时按住时左移优先", []utils.KeyCode{utils.KeyLeft, utils.KeyRight}, 153, 0},
		{"右移优先于开火", []utils.KeyCode{utils.KeyRight, utils.KeySpace}, 157, 0},
		{"未识别按键不做任何事", []utils.KeyCode{utils.KeyCode(65)}, 155, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			clock := newFakeClock()
			p := NewPlayer(cfg, pressed(tt.keys...), nil, clock.Now)
			w := &fakeWorld{}

			p.Update(w)

			if p.Position().X != tt.wantX {
				t.Errorf("Expected X = %f, got %f", tt.wantX, p.Position().X)
			}
			if len(w.added) != tt.wantBullets {
				t.Errorf("Expected %d bullets, got %d", tt.wantBullets, len(w.added))
			}
		})
	}
}

func TestPlayerMovesOffScreen(t *testing.T) {
	cfg := testConfig()
	clock := newFakeClock()
	p := NewPlayer(cfg, pressed(utils.KeyLeft), nil, clock.Now)
	w := &fakeWorld{}

	// 没有边界限制
	for i := 0; i < 100; i++ {
		p.Update(w)
	}

	if p.Position().X != -45 {
		t.Errorf("Expected X = -45 after 100 steps left, got %f", p.Position().X)
	}
}

func TestPlayerFireBullet(t *testing.T) {
	cfg := testConfig()
	clock := newFakeClock()
	sound := &fakeSound{}
	p := NewPlayer(cfg, pressed(utils.KeySpace), sound, clock.Now)
	w := &fakeWorld{}

	p.Update(w)

	if len(w.added) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(w.added))
	}
	bullet := w.added[0].(*Bullet)
	pos := bullet.Position()
	// 子弹出生在飞船上方：y - height - 10
	if pos.X != 155 || pos.Y != 270 {
		t.Errorf("Expected bullet at (155, 270), got (%f, %f)", pos.X, pos.Y)
	}
	v := bullet.Velocity()
	if v.VX != 0 || v.VY != -7 {
		t.Errorf("Expected velocity (0, -7), got (%f, %f)", v.VX, v.VY)
	}

	if len(sound.played) != 1 || sound.played[0] != SoundShoot {
		t.Errorf("Expected one shoot cue, got %v", sound.played)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	tests := []struct {
		name        string
		gap         time.Duration
		wantBullets int
	}{
		{"间隔不足时只发射一颗", 100 * time.Millisecond, 1},
		{"间隔差一毫秒", 249 * time.Millisecond, 1},
		{"间隔恰好等于冷却", 250 * time.Millisecond, 2},
		{"间隔超过冷却", time.Second, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			clock := newFakeClock()
			sound := &fakeSound{}
			p := NewPlayer(cfg, pressed(utils.KeySpace), sound, clock.Now)
			w := &fakeWorld{}

			p.Update(w)
			clock.Advance(tt.gap)
			p.Update(w)

			if len(w.added) != tt.wantBullets {
				t.Errorf("Expected %d bullets, got %d", tt.wantBullets, len(w.added))
			}
			// 被丢弃的射击请求不播放音效
			if len(sound.played) != tt.wantBullets {
				t.Errorf("Expected %d shoot cues, got %d", tt.wantBullets, len(sound.played))
			}
		})
	}
}

func TestPlayerFireWithoutSound(t *testing.T) {
	cfg := testConfig()
	clock := newFakeClock()
	p := NewPlayer(cfg, pressed(utils.KeySpace), nil, clock.Now)
	w := &fakeWorld{}

	// 没有音效播放器时照常开火
	p.Update(w)

	if len(w.added) != 1 {
		t.Errorf("Expected 1 bullet, got %d", len(w.added))
	}
}

func TestPlayerDraw(t *testing.T) {
	cfg := testConfig()
	clock := newFakeClock()
	p := NewPlayer(cfg, pressed(), nil, clock.Now)
	r := &recordingRenderer{}

	p.Draw(r)

	if len(r.calls) != 1 || r.calls[0].op != "rect" {
		t.Fatalf("Expected a single rect, got %+v", r.calls)
	}
	call := r.calls[0]
	if call.x != 147.5 || call.y != 287.5 || call.w != 15 || call.h != 15 {
		t.Errorf("Unexpected rect %+v", call)
	}
}
