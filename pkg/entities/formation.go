package entities

import (
	"image"

	"github.com/decker502/invaders/pkg/config"
)

// NewInvaderFormation 按阵型配置创建全部入侵者
//
// 第 i 个入侵者位于:
//
//	x = OriginX + (i % Columns) * SpacingX
//	y = OriginY + (i % Rows) * SpacingY
//
// 配置了精灵图时，每个入侵者随机分配一个精灵格子（仅影响外观）。
func NewInvaderFormation(cfg *config.GameConfig, rng RandomSource) []*Invader {
	f := cfg.Formation
	invaders := make([]*Invader, 0, f.Count)

	for i := 0; i < f.Count; i++ {
		x := f.OriginX + float64(i%f.Columns)*f.SpacingX
		y := f.OriginY + float64(i%f.Rows)*f.SpacingY
		inv := NewInvader(cfg, rng, x, y)
		if cfg.Sprites.Sheet != "" {
			inv.SetSprite(randomSpriteCell(&cfg.Sprites, rng))
		}
		invaders = append(invaders, inv)
	}

	return invaders
}

// randomSpriteCell 随机选取精灵图中的一个格子
func randomSpriteCell(s *config.SpritesConfig, rng RandomSource) image.Rectangle {
	cells := s.Columns * s.Rows
	cell := int(rng.Float64() * float64(cells))
	if cell >= cells {
		cell = cells - 1
	}
	col := cell % s.Columns
	row := cell / s.Columns
	return image.Rect(col*s.CellWidth, row*s.CellHeight, (col+1)*s.CellWidth, (row+1)*s.CellHeight)
}
