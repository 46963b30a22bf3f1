package entities

import (
	"image"
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// Invader 入侵者实体
//
// 每个 tick 做左右巡逻，并以很小的概率向下开火。
// 如果正下方还有其他入侵者则不开火，避免打到自己人。
type Invader struct {
	position  components.PositionComponent
	collision components.CollisionComponent
	patrol    components.PatrolComponent
	sprite    *components.SpriteComponent // 可为 nil，仅影响外观

	fireThreshold float64
	bulletSpeed   float64
	bulletSpread  float64
	bulletConfig  *config.BulletConfig
	color         color.RGBA

	rng RandomSource
}

// NewInvader 创建入侵者实体
//
// 参数:
//   - cfg: 游戏配置（入侵者和子弹参数）
//   - rng: 开火判定和子弹散布使用的随机数源
//   - x, y: 入侵者中心初始位置
func NewInvader(cfg *config.GameConfig, rng RandomSource, x, y float64) *Invader {
	return &Invader{
		position:  components.PositionComponent{X: x, Y: y},
		collision: components.CollisionComponent{Width: cfg.Invader.Width, Height: cfg.Invader.Height},
		patrol: components.PatrolComponent{
			PatrolX: 0,
			SpeedX:  cfg.Invader.SpeedX,
			Range:   cfg.Invader.PatrolRange,
		},
		fireThreshold: cfg.Invader.FireThreshold,
		bulletSpeed:   cfg.Invader.BulletSpeed,
		bulletSpread:  cfg.Invader.BulletSpread,
		bulletConfig:  &cfg.Bullet,
		color:         cfg.Invader.Color.RGBA(),
		rng:           rng,
	}
}

func (inv *Invader) Kind() types.BodyKind { return types.BodyInvader }

func (inv *Invader) Position() *components.PositionComponent { return &inv.position }

func (inv *Invader) Collision() components.CollisionComponent { return inv.collision }

// Patrol 返回巡逻状态
func (inv *Invader) Patrol() *components.PatrolComponent { return &inv.patrol }

// Sprite 返回精灵图源区域，未分配时为 nil
func (inv *Invader) Sprite() *components.SpriteComponent { return inv.sprite }

// SetSprite 分配精灵图源区域
func (inv *Invader) SetSprite(src image.Rectangle) {
	inv.sprite = &components.SpriteComponent{Source: src}
}

// Update 推进一个 tick
//
// 顺序固定：先检查巡逻窗口并掉头，再做开火判定，最后移动。
func (inv *Invader) Update(w World) {
	if inv.patrol.OutOfRange() {
		inv.patrol.SpeedX = -inv.patrol.SpeedX
	}

	if inv.rng.Float64() > inv.fireThreshold && !w.InvadersBelow(inv) {
		vx := (inv.rng.Float64() - 0.5) * inv.bulletSpread
		w.AddBody(NewBullet(inv.bulletConfig,
			inv.position.X, inv.position.Y+inv.collision.Height,
			vx, inv.bulletSpeed))
	}

	inv.position.X += inv.patrol.SpeedX
	inv.patrol.PatrolX += inv.patrol.SpeedX
}

// Draw 有精灵图时绘制精灵，否则绘制纯色矩形
func (inv *Invader) Draw(r Renderer) {
	if inv.sprite != nil {
		x := inv.position.X - inv.collision.Width/2
		y := inv.position.Y - inv.collision.Height/2
		if r.DrawSprite(inv.sprite.Source, x, y, inv.collision.Width, inv.collision.Height) {
			return
		}
	}
	drawBox(r, &inv.position, inv.collision, inv.color)
}

func (inv *Invader) sealed() {}
