package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，左右各延伸 Width/2，上下各延伸 Height/2
// 绘制时使用同一个矩形
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Bounds 计算以 pos 为中心的碰撞盒边界
//
// 返回:
//   - left, top, right, bottom: 碰撞盒四条边的世界坐标
func (c *CollisionComponent) Bounds(pos *PositionComponent) (left, top, right, bottom float64) {
	halfW := c.Width / 2
	halfH := c.Height / 2
	return pos.X - halfW, pos.Y - halfH, pos.X + halfW, pos.Y + halfH
}
