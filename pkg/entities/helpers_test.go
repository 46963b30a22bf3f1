package entities

import (
	"image"
	"image/color"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/utils"
)

// fakeWorld 记录实体在 Update 中追加的子弹
type fakeWorld struct {
	added         []Body
	invadersBelow bool
	belowQueries  int
}

func (w *fakeWorld) AddBody(b Body) {
	w.added = append(w.added, b)
}

func (w *fakeWorld) InvadersBelow(invader *Invader) bool {
	w.belowQueries++
	return w.invadersBelow
}

// sequenceRandom 按顺序返回预设值，用完后重复最后一个
type sequenceRandom struct {
	values []float64
	calls  int
}

func (r *sequenceRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

// fakeClock 可手动推进的时钟
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeSound 记录播放次数
type fakeSound struct {
	played []string
}

func (s *fakeSound) PlaySound(soundID string) bool {
	s.played = append(s.played, soundID)
	return true
}

// drawCall 记录一次绘制调用
type drawCall struct {
	op         string
	x, y, w, h float64
	src        image.Rectangle
}

// recordingRenderer 记录所有绘制调用
type recordingRenderer struct {
	calls      []drawCall
	hasSprites bool
}

func (r *recordingRenderer) Clear(x, y, width, height float64) {
	r.calls = append(r.calls, drawCall{op: "clear", x: x, y: y, w: width, h: height})
}

func (r *recordingRenderer) FillRect(x, y, width, height float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, w: width, h: height})
}

func (r *recordingRenderer) DrawSprite(src image.Rectangle, x, y, width, height float64) bool {
	if !r.hasSprites {
		return false
	}
	r.calls = append(r.calls, drawCall{op: "sprite", x: x, y: y, w: width, h: height, src: src})
	return true
}

// pressed 创建按住指定按键的输入状态
func pressed(codes ...utils.KeyCode) *utils.InputState {
	s := utils.NewInputState()
	for _, code := range codes {
		s.KeyDown(code)
	}
	return s
}

func testConfig() *config.GameConfig {
	return config.DefaultGameConfig()
}
