package components

import "image"

// SpriteComponent 存储实体在精灵图中的源区域
// 仅影响外观，不参与任何行为逻辑
type SpriteComponent struct {
	Source image.Rectangle
}
