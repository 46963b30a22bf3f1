package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// Player 玩家飞船
//
// 每个 tick 按优先级 左移 > 右移 > 开火 只执行一个动作。
// 飞船可以移出画面，不做边界限制。
type Player struct {
	position  components.PositionComponent
	collision components.CollisionComponent
	cooldown  components.FireCooldownComponent

	step          float64
	bulletOffsetY float64
	bulletSpeed   float64
	bulletConfig  *config.BulletConfig
	color         color.RGBA

	input KeyState
	sound SoundPlayer // 可为 nil
	clock Clock
}

// NewPlayer 创建玩家飞船，初始位置在画面底部中央
//
// 参数:
//   - cfg: 游戏配置
//   - input: 按键状态
//   - sound: 射击音效播放器，可为 nil（静音）
//   - clock: 射击冷却使用的墙钟
func NewPlayer(cfg *config.GameConfig, input KeyState, sound SoundPlayer, clock Clock) *Player {
	return &Player{
		position: components.PositionComponent{
			X: float64(cfg.Screen.Width) / 2,
			Y: float64(cfg.Screen.Height) - cfg.Player.Height,
		},
		collision:     components.CollisionComponent{Width: cfg.Player.Width, Height: cfg.Player.Height},
		cooldown:      components.FireCooldownComponent{Interval: cfg.ShootInterval()},
		step:          cfg.Player.Step,
		bulletOffsetY: cfg.Player.BulletOffsetY,
		bulletSpeed:   cfg.Player.BulletSpeed,
		bulletConfig:  &cfg.Bullet,
		color:         cfg.Player.Color.RGBA(),
		input:         input,
		sound:         sound,
		clock:         clock,
	}
}

func (p *Player) Kind() types.BodyKind { return types.BodyPlayer }

func (p *Player) Position() *components.PositionComponent { return &p.position }

func (p *Player) Collision() components.CollisionComponent { return p.collision }

// Cooldown 返回射击冷却状态
func (p *Player) Cooldown() *components.FireCooldownComponent { return &p.cooldown }

// Update 根据当前按住的按键执行一个动作
func (p *Player) Update(w World) {
	switch {
	case p.input.IsDown(utils.KeyLeft):
		p.position.X -= p.step
	case p.input.IsDown(utils.KeyRight):
		p.position.X += p.step
	case p.input.IsDown(utils.KeySpace):
		p.fire(w)
	}
}

// fire 冷却结束时发射一颗向上的子弹，冷却中的请求直接丢弃
func (p *Player) fire(w World) {
	now := p.clock()
	if !p.cooldown.Ready(now) {
		return
	}
	p.cooldown.Trigger(now)

	w.AddBody(NewBullet(p.bulletConfig,
		p.position.X, p.position.Y-p.collision.Height-p.bulletOffsetY,
		0, -p.bulletSpeed))

	if p.sound != nil {
		p.sound.PlaySound(SoundShoot)
	}
}

// Draw 绘制为纯色矩形
func (p *Player) Draw(r Renderer) {
	drawBox(r, &p.position, p.collision, p.color)
}

func (p *Player) sealed() {}
