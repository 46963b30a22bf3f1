package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/types"
)

func TestBulletUpdate(t *testing.T) {
	cfg := testConfig()
	b := NewBullet(&cfg.Bullet, 100, 200, 0.5, -7)
	w := &fakeWorld{}

	b.Update(w)
	b.Update(w)

	pos := b.Position()
	if pos.X != 101 || pos.Y != 186 {
		t.Errorf("Expected position (101, 186) after 2 ticks, got (%f, %f)", pos.X, pos.Y)
	}

	// 速度和尺寸保持不变
	v := b.Velocity()
	if v.VX != 0.5 || v.VY != -7 {
		t.Errorf("Velocity should not change, got (%f, %f)", v.VX, v.VY)
	}
	col := b.Collision()
	if col.Width != 3 || col.Height != 3 {
		t.Errorf("Size should stay 3x3, got %fx%f", col.Width, col.Height)
	}

	if len(w.added) != 0 {
		t.Error("Bullet should never spawn bodies")
	}
}

func TestBulletKindAndDraw(t *testing.T) {
	cfg := testConfig()
	b := NewBullet(&cfg.Bullet, 10, 20, 0, 2)

	if b.Kind() != types.BodyBullet {
		t.Errorf("Expected BodyBullet, got %v", b.Kind())
	}

	r := &recordingRenderer{}
	b.Draw(r)

	if len(r.calls) != 1 || r.calls[0].op != "rect" {
		t.Fatalf("Expected a single rect, got %+v", r.calls)
	}
	call := r.calls[0]
	if call.x != 8.5 || call.y != 18.5 || call.w != 3 || call.h != 3 {
		t.Errorf("Unexpected rect %+v", call)
	}
}
