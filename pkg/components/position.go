package components

// PositionComponent 存储实体中心点的世界坐标（像素）
// 碰撞盒和绘制矩形都以该点为中心对齐
type PositionComponent struct {
	X float64 // 中心X坐标
	Y float64 // 中心Y坐标
}
