package components

// VelocityComponent 存储实体每个 tick 的位移量（像素/tick）
type VelocityComponent struct {
	VX float64
	VY float64
}
