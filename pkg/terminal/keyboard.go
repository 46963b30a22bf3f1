package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/utils"
)

// DefaultHoldWindow 终端没有松开事件，按键在最后一次按下（或自动重复）后保持这么久
// 需要大于终端自动重复的初始延迟，否则长按时会断续
const DefaultHoldWindow = 550 * time.Millisecond

// opposite 互斥的方向键：按下一个方向时立即松开另一个
var opposite = map[utils.KeyCode]utils.KeyCode{
	utils.KeyLeft:  utils.KeyRight,
	utils.KeyRight: utils.KeyLeft,
}

// Keyboard 把 tcell 按键事件转换为按下/松开广播
type Keyboard struct {
	utils.KeyBroadcaster

	holdWindow time.Duration
	lastPress  map[utils.KeyCode]time.Time
}

// NewKeyboard 创建终端键盘适配器
//
// 参数:
//   - holdWindow: 按键保持时长，<= 0 时使用 DefaultHoldWindow
func NewKeyboard(holdWindow time.Duration) *Keyboard {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Keyboard{
		holdWindow: holdWindow,
		lastPress:  make(map[utils.KeyCode]time.Time),
	}
}

// MapKey 把 tcell 按键映射为逻辑按键
// 方向键、空格，以及 a/d 和 vi 风格的 h/l
func MapKey(ev *tcell.EventKey) (utils.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return utils.KeyLeft, true
	case tcell.KeyRight:
		return utils.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return utils.KeySpace, true
		case 'a', 'h':
			return utils.KeyLeft, true
		case 'd', 'l':
			return utils.KeyRight, true
		}
	}
	return 0, false
}

// HandleEvent 处理一个按键事件
//
// 返回:
//   - bool: 按键是否被识别
func (k *Keyboard) HandleEvent(ev *tcell.EventKey, now time.Time) bool {
	code, ok := MapKey(ev)
	if !ok {
		return false
	}

	if other, exists := opposite[code]; exists {
		k.release(other)
	}

	if _, held := k.lastPress[code]; !held {
		k.EmitKeyDown(code)
	}
	k.lastPress[code] = now
	return true
}

// Tick 松开超过保持时长没有再次按下的按键
func (k *Keyboard) Tick(now time.Time) {
	for code, last := range k.lastPress {
		if now.Sub(last) >= k.holdWindow {
			k.release(code)
		}
	}
}

// ReleaseAll 松开所有按键
func (k *Keyboard) ReleaseAll() {
	for code := range k.lastPress {
		k.release(code)
	}
}

// IsHeld 按键当前是否处于保持状态
func (k *Keyboard) IsHeld(code utils.KeyCode) bool {
	_, held := k.lastPress[code]
	return held
}

func (k *Keyboard) release(code utils.KeyCode) {
	if _, held := k.lastPress[code]; !held {
		return
	}
	delete(k.lastPress, code)
	k.EmitKeyUp(code)
}
