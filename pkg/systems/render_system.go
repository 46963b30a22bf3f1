package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 把实体绘制到 Ebitengine 屏幕
//
// 每帧 Draw 之前通过 SetTarget 设置目标图像。
// sheet 为 nil 时 DrawSprite 返回 false，实体退回到纯色矩形。
type RenderSystem struct {
	target     *ebiten.Image
	sheet      *ebiten.Image
	background color.Color
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - sheet: 精灵图，可为 nil
//   - background: 清屏颜色
func NewRenderSystem(sheet *ebiten.Image, background color.Color) *RenderSystem {
	return &RenderSystem{
		sheet:      sheet,
		background: background,
	}
}

// SetTarget 设置本帧的绘制目标
func (rs *RenderSystem) SetTarget(target *ebiten.Image) {
	rs.target = target
}

// HasSprites 是否加载了精灵图
func (rs *RenderSystem) HasSprites() bool {
	return rs.sheet != nil
}

// Clear 用背景色填充指定区域
func (rs *RenderSystem) Clear(x, y, width, height float64) {
	if rs.target == nil {
		return
	}
	region := image.Rect(int(x), int(y), int(x+width), int(y+height))
	rs.target.SubImage(region).(*ebiten.Image).Fill(rs.background)
}

// FillRect 绘制纯色矩形
func (rs *RenderSystem) FillRect(x, y, width, height float64, clr color.Color) {
	if rs.target == nil {
		return
	}
	vector.DrawFilledRect(rs.target, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// DrawSprite 把精灵图的 src 区域缩放绘制到目标矩形
func (rs *RenderSystem) DrawSprite(src image.Rectangle, x, y, width, height float64) bool {
	if rs.sheet == nil || rs.target == nil || src.Empty() {
		return false
	}

	sub := rs.sheet.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(src.Dx()), height/float64(src.Dy()))
	op.GeoM.Translate(x, y)
	rs.target.DrawImage(sub, op)
	return true
}
