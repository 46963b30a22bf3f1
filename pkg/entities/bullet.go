package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// Bullet 子弹实体
// 以恒定速度直线运动，创建后尺寸和速度都不再改变
type Bullet struct {
	position  components.PositionComponent
	collision components.CollisionComponent
	velocity  components.VelocityComponent
	color     color.RGBA
}

// NewBullet 创建子弹实体
//
// 参数:
//   - cfg: 子弹配置（尺寸、颜色）
//   - x, y: 子弹中心初始位置
//   - vx, vy: 每 tick 的位移
func NewBullet(cfg *config.BulletConfig, x, y, vx, vy float64) *Bullet {
	return &Bullet{
		position:  components.PositionComponent{X: x, Y: y},
		collision: components.CollisionComponent{Width: cfg.Width, Height: cfg.Height},
		velocity:  components.VelocityComponent{VX: vx, VY: vy},
		color:     cfg.Color.RGBA(),
	}
}

func (b *Bullet) Kind() types.BodyKind { return types.BodyBullet }

func (b *Bullet) Position() *components.PositionComponent { return &b.position }

func (b *Bullet) Collision() components.CollisionComponent { return b.collision }

// Velocity 返回子弹速度（只读副本）
func (b *Bullet) Velocity() components.VelocityComponent { return b.velocity }

// Update 按速度移动一个 tick
func (b *Bullet) Update(w World) {
	b.position.X += b.velocity.VX
	b.position.Y += b.velocity.VY
}

// Draw 绘制为小方块
func (b *Bullet) Draw(r Renderer) {
	drawBox(r, &b.position, b.collision, b.color)
}

func (b *Bullet) sealed() {}
