package terminal

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
)

// Sound 通过 beep 扬声器播放合成的射击音效
// 实现 entities.SoundPlayer 接口
type Sound struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	frequency   float64
	duration    time.Duration
	initialized bool
	enabled     bool
}

// NewSound 创建终端音效播放器，需要调用 Init 后才会发声
func NewSound(cfg *config.AudioConfig) *Sound {
	return &Sound{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		frequency:  cfg.ShootFrequency,
		duration:   time.Duration(cfg.ShootDurationMs) * time.Millisecond,
		enabled:    true,
	}
}

// Init 初始化扬声器，失败时游戏以静音继续
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	s.initialized = true
	return nil
}

// NewShootStreamer 生成一次射击音效
func NewShootStreamer(sr beep.SampleRate, frequency float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to create sine tone: %w", err)
	}
	quiet := &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   -2,
	}
	return beep.Take(sr.N(duration), quiet), nil
}

// PlaySound 播放音效
// 先清空扬声器再播放，连续触发时重新开始而不是叠加
func (s *Sound) PlaySound(soundID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || !s.enabled || soundID != entities.SoundShoot {
		return false
	}

	streamer, err := NewShootStreamer(s.sampleRate, s.frequency, s.duration)
	if err != nil {
		log.Printf("[Sound] Warning: %v", err)
		return false
	}

	speaker.Clear()
	speaker.Play(streamer)
	return true
}

// Toggle 切换音效开关
//
// 返回:
//   - bool: 切换后的开关状态
func (s *Sound) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = !s.enabled
	if !s.enabled && s.initialized {
		speaker.Clear()
	}
	return s.enabled
}

// Enabled 音效是否开启
func (s *Sound) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled && s.initialized
}

// Close 关闭扬声器
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
