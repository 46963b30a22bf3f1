package terminal

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
)

func TestNewShootStreamer(t *testing.T) {
	sr := beep.SampleRate(8000)
	streamer, err := NewShootStreamer(sr, 880, 90*time.Millisecond)
	if err != nil {
		t.Fatalf("NewShootStreamer failed: %v", err)
	}

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			if s[0] > 1 || s[0] < -1 {
				t.Fatalf("Sample out of range: %f", s[0])
			}
		}
		if !ok {
			break
		}
	}

	if want := sr.N(90 * time.Millisecond); total != want {
		t.Errorf("Streamed %d samples, want %d", total, want)
	}
}

func TestSoundNotInitialized(t *testing.T) {
	cfg := config.DefaultGameConfig().Audio
	s := NewSound(&cfg)

	if s.PlaySound(entities.SoundShoot) {
		t.Error("PlaySound should fail before Init")
	}
	if s.Enabled() {
		t.Error("Enabled should be false before Init")
	}

	// 切换开关不需要扬声器
	if s.Toggle() {
		t.Error("First Toggle should disable sound")
	}
	if !s.Toggle() {
		t.Error("Second Toggle should enable sound")
	}

	// 未初始化时关闭是空操作
	s.Close()
}
