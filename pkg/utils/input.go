// Package utils 提供通用工具函数
package utils

// KeyCode 平台无关的按键码
// 数值沿用浏览器 keyCode 约定，前端适配器负责把各自的按键映射到这里
type KeyCode int

// 游戏识别的逻辑按键
const (
	KeyLeft  KeyCode = 37 // 左移
	KeyRight KeyCode = 39 // 右移
	KeySpace KeyCode = 32 // 开火
)

// KeyListener 接收按键按下/松开通知
type KeyListener interface {
	KeyDown(code KeyCode)
	KeyUp(code KeyCode)
}

// KeySource 按键事件源
// AddKeyListener 注册监听器并返回注销函数
type KeySource interface {
	AddKeyListener(l KeyListener) (remove func())
}

// InputState 存储当前按住的按键
//
// 只记录“当前是否按住”，不做去抖，也不区分自动重复。
// 未出现过的按键视为未按下。
type InputState struct {
	keyState map[KeyCode]bool
}

// NewInputState 创建空的按键状态
func NewInputState() *InputState {
	return &InputState{
		keyState: make(map[KeyCode]bool),
	}
}

// KeyDown 记录按键按下
func (s *InputState) KeyDown(code KeyCode) {
	s.keyState[code] = true
}

// KeyUp 记录按键松开
func (s *InputState) KeyUp(code KeyCode) {
	s.keyState[code] = false
}

// IsDown 检查按键当前是否按住
func (s *InputState) IsDown(code KeyCode) bool {
	return s.keyState[code]
}

// Reset 清空所有按键状态
func (s *InputState) Reset() {
	for code := range s.keyState {
		delete(s.keyState, code)
	}
}

// Subscribe 把按键状态注册到事件源
//
// 返回的注销函数会把状态从事件源移除并清空所有按键，
// 避免注销后残留“按住”的按键。
func (s *InputState) Subscribe(src KeySource) (unsubscribe func()) {
	remove := src.AddKeyListener(s)
	return func() {
		remove()
		s.Reset()
	}
}

// KeyBroadcaster 维护监听器列表并向其广播按键事件
// 各前端的按键适配器嵌入它来实现 KeySource
type KeyBroadcaster struct {
	listeners []KeyListener
}

// AddKeyListener 注册监听器
func (b *KeyBroadcaster) AddKeyListener(l KeyListener) (remove func()) {
	b.listeners = append(b.listeners, l)
	return func() {
		for i, existing := range b.listeners {
			if existing == l {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// EmitKeyDown 向所有监听器广播按下事件
func (b *KeyBroadcaster) EmitKeyDown(code KeyCode) {
	for _, l := range b.listeners {
		l.KeyDown(code)
	}
}

// EmitKeyUp 向所有监听器广播松开事件
func (b *KeyBroadcaster) EmitKeyUp(code KeyCode) {
	for _, l := range b.listeners {
		l.KeyUp(code)
	}
}

// ListenerCount 返回当前监听器数量
func (b *KeyBroadcaster) ListenerCount() int {
	return len(b.listeners)
}
