package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/pkg/utils"
)

// keyBindings Ebitengine 按键到逻辑按键的映射
// 未列出的按键被忽略
var keyBindings = map[ebiten.Key]utils.KeyCode{
	ebiten.KeyArrowLeft:  utils.KeyLeft,
	ebiten.KeyA:          utils.KeyLeft,
	ebiten.KeyArrowRight: utils.KeyRight,
	ebiten.KeyD:          utils.KeyRight,
	ebiten.KeySpace:      utils.KeySpace,
}

// InputSystem 轮询 Ebitengine 键盘和触摸输入，转换为按键事件广播
//
// 触摸屏被横向分为三个区域：左三分之一左移，右三分之一右移，中间开火。
type InputSystem struct {
	utils.KeyBroadcaster

	screenWidth int
	touchHeld   map[utils.KeyCode]bool // 当前由触摸按住的逻辑按键

	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - screenWidth: 逻辑画面宽度，用于划分触摸区域
func NewInputSystem(screenWidth int) *InputSystem {
	return &InputSystem{
		screenWidth: screenWidth,
		touchHeld:   make(map[utils.KeyCode]bool),
	}
}

// MapKey 把 Ebitengine 按键映射为逻辑按键
func MapKey(k ebiten.Key) (utils.KeyCode, bool) {
	code, ok := keyBindings[k]
	return code, ok
}

// TouchZone 根据触摸点横坐标返回对应的逻辑按键
func TouchZone(x, screenWidth int) utils.KeyCode {
	switch {
	case x < screenWidth/3:
		return utils.KeyLeft
	case x >= screenWidth-screenWidth/3:
		return utils.KeyRight
	default:
		return utils.KeySpace
	}
}

// Update 每帧调用一次，广播本帧的按下/松开事件
func (is *InputSystem) Update() {
	is.keyBuf = inpututil.AppendJustPressedKeys(is.keyBuf[:0])
	for _, k := range is.keyBuf {
		if code, ok := MapKey(k); ok {
			is.EmitKeyDown(code)
		}
	}

	is.keyBuf = inpututil.AppendJustReleasedKeys(is.keyBuf[:0])
	for _, k := range is.keyBuf {
		if code, ok := MapKey(k); ok {
			is.EmitKeyUp(code)
		}
	}

	is.touchBuf = ebiten.AppendTouchIDs(is.touchBuf[:0])
	zones := make([]utils.KeyCode, 0, len(is.touchBuf))
	for _, id := range is.touchBuf {
		x, _ := ebiten.TouchPosition(id)
		zones = append(zones, TouchZone(x, is.screenWidth))
	}
	is.applyTouchZones(zones)
}

// applyTouchZones 对比上一帧，广播触摸区域的按下和松开
func (is *InputSystem) applyTouchZones(zones []utils.KeyCode) {
	held := make(map[utils.KeyCode]bool, len(zones))
	for _, code := range zones {
		held[code] = true
	}

	for code := range held {
		if !is.touchHeld[code] {
			is.EmitKeyDown(code)
		}
	}
	for code := range is.touchHeld {
		if !held[code] {
			is.EmitKeyUp(code)
		}
	}

	is.touchHeld = held
}
