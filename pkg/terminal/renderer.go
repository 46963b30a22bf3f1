// Package terminal 提供基于 tcell 和 beep 的终端前端
//
// 画面坐标按比例映射到终端字符网格，子弹等小物体至少占一个字符。
package terminal

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// blockRune 填充实体使用的字符
const blockRune = '█'

// Screen 渲染器使用的 tcell 屏幕子集
// tcell.Screen 和 tcell.SimulationScreen 都满足该接口
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer 把画面坐标的矩形绘制到终端字符网格
type Renderer struct {
	screen          Screen
	playfieldWidth  float64
	playfieldHeight float64
}

// NewRenderer 创建终端渲染器
//
// 参数:
//   - screen: tcell 屏幕
//   - playfieldWidth, playfieldHeight: 游戏画面的逻辑尺寸
func NewRenderer(screen Screen, playfieldWidth, playfieldHeight float64) *Renderer {
	return &Renderer{
		screen:          screen,
		playfieldWidth:  playfieldWidth,
		playfieldHeight: playfieldHeight,
	}
}

// CellRect 把画面矩形映射到字符网格区间 [col0, col1] x [row0, row1]
// 结果至少包含一个字符，并裁剪到屏幕范围内；完全在屏幕外时 ok 为 false
func (r *Renderer) CellRect(x, y, width, height float64) (col0, row0, col1, row1 int, ok bool) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || r.playfieldWidth <= 0 || r.playfieldHeight <= 0 {
		return 0, 0, 0, 0, false
	}

	sx := float64(cols) / r.playfieldWidth
	sy := float64(rows) / r.playfieldHeight

	col0 = int(math.Floor(x * sx))
	row0 = int(math.Floor(y * sy))
	col1 = int(math.Ceil((x+width)*sx)) - 1
	row1 = int(math.Ceil((y+height)*sy)) - 1
	if col1 < col0 {
		col1 = col0
	}
	if row1 < row0 {
		row1 = row0
	}

	if col1 < 0 || row1 < 0 || col0 >= cols || row0 >= rows {
		return 0, 0, 0, 0, false
	}
	col0 = max(col0, 0)
	row0 = max(row0, 0)
	col1 = min(col1, cols-1)
	row1 = min(row1, rows-1)
	return col0, row0, col1, row1, true
}

// fill 用同一个字符和样式填充区域
func (r *Renderer) fill(x, y, width, height float64, ch rune, style tcell.Style) {
	col0, row0, col1, row1, ok := r.CellRect(x, y, width, height)
	if !ok {
		return
	}
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// Clear 用空格清空区域
func (r *Renderer) Clear(x, y, width, height float64) {
	r.fill(x, y, width, height, ' ', tcell.StyleDefault)
}

// FillRect 用实心方块绘制矩形
// tcell 坐标使用左上角，这里的 x, y 也是左上角
func (r *Renderer) FillRect(x, y, width, height float64, clr color.Color) {
	r.fill(x, y, width, height, blockRune, tcell.StyleDefault.Foreground(toTcellColor(clr)))
}

// DrawSprite 终端不支持精灵图，总是返回 false
func (r *Renderer) DrawSprite(src image.Rectangle, x, y, width, height float64) bool {
	return false
}

// DrawText 在指定字符位置绘制一行文本，超出屏幕的部分被截断
func (r *Renderer) DrawText(col, row int, text string, style tcell.Style) {
	cols, rows := r.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range text {
		if col >= cols {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// toTcellColor 转换为 tcell 真彩色
func toTcellColor(clr color.Color) tcell.Color {
	red, green, blue, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(red>>8), int32(green>>8), int32(blue>>8))
}
