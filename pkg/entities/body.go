// Package entities 定义世界中的三种实体：玩家、入侵者和子弹
//
// 实体通过 Body 接口统一调度。Body 是封闭接口，
// 只有本包内的 Player、Invader、Bullet 三种实现。
package entities

import (
	"image"
	"image/color"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// SoundShoot 玩家射击音效ID
const SoundShoot = "shoot"

// Body 世界中的实体
type Body interface {
	// Kind 返回实体种类
	Kind() types.BodyKind
	// Position 返回实体中心位置（可修改）
	Position() *components.PositionComponent
	// Collision 返回实体碰撞盒尺寸（只读副本）
	Collision() components.CollisionComponent
	// Update 推进一个 tick
	Update(w World)
	// Draw 把实体绘制到渲染器
	Draw(r Renderer)

	sealed()
}

// World 是实体在 Update 中可以访问的世界能力
// 实体不持有世界的引用，每次更新时由世界传入
type World interface {
	// AddBody 把新实体追加到世界
	AddBody(b Body)
	// InvadersBelow 判断该入侵者下方是否还有其他入侵者
	InvadersBelow(invader *Invader) bool
}

// Renderer 二维绘制目标
type Renderer interface {
	// Clear 清空指定区域
	Clear(x, y, width, height float64)
	// FillRect 绘制纯色矩形，(x, y) 为左上角
	FillRect(x, y, width, height float64, clr color.Color)
	// DrawSprite 把精灵图中 src 区域绘制到 (x, y, width, height)
	// 没有加载精灵图时返回 false，调用方应退回到 FillRect
	DrawSprite(src image.Rectangle, x, y, width, height float64) bool
}

// SoundPlayer 音效播放器
type SoundPlayer interface {
	// PlaySound 从头播放指定音效
	PlaySound(soundID string) bool
}

// KeyState 查询按键是否按住
type KeyState interface {
	IsDown(code utils.KeyCode) bool
}

// Clock 返回当前墙钟时间
type Clock func() time.Time

// RandomSource 均匀分布随机数源，返回 [0, 1) 内的值
// *rand.Rand 满足该接口
type RandomSource interface {
	Float64() float64
}

// drawBox 以实体中心为基准绘制填充矩形
func drawBox(r Renderer, pos *components.PositionComponent, col components.CollisionComponent, clr color.Color) {
	r.FillRect(pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height, clr)
}
