package components

// PatrolComponent 存储入侵者的水平巡逻状态
//
// PatrolX 是自出生以来的累计水平位移，离开 [0, Range] 区间时
// 下一次更新会把 SpeedX 取反，形成左右往复的巡逻运动。
type PatrolComponent struct {
	PatrolX float64 // 累计水平位移
	SpeedX  float64 // 每 tick 的水平速度（带符号）
	Range   float64 // 巡逻窗口宽度，默认 40
}

// OutOfRange 判断累计位移是否已离开巡逻窗口
func (p *PatrolComponent) OutOfRange() bool {
	return p.PatrolX < 0 || p.PatrolX > p.Range
}
