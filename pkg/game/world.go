package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/types"
)

// worldLogInterval 每隔多少 tick 输出一次实体统计
const worldLogInterval = 600

// BodyCounts 各类实体的数量统计
type BodyCounts struct {
	Players  int
	Invaders int
	Bullets  int
}

// Total 实体总数
func (c BodyCounts) Total() int {
	return c.Players + c.Invaders + c.Bullets
}

// World 游戏世界，持有所有存活实体
//
// 每个 tick 的处理顺序:
//  1. 碰撞：基于移动前的位置找出所有与其他实体重叠的实体并移除
//  2. 更新：按插入顺序更新幸存实体，本轮新追加的实体下一 tick 才更新
//  3. 回收：移除完全离开画面的子弹
type World struct {
	entityManager *ecs.EntityManager[entities.Body]
	physics       *systems.PhysicsSystem
	bounds        *systems.BoundsSystem

	width  float64
	height float64

	player *entities.Player
	tick   uint64
}

// NewWorld 创建游戏世界，生成入侵者阵型和玩家
//
// 参数:
//   - cfg: 游戏配置
//   - input: 玩家按键状态
//   - sound: 射击音效播放器，可为 nil
//   - clock: 射击冷却使用的时钟，为 nil 时使用 time.Now
//   - rng: 入侵者开火使用的随机数源，为 nil 时使用基于当前时间的种子
func NewWorld(cfg *config.GameConfig, input entities.KeyState, sound entities.SoundPlayer,
	clock entities.Clock, rng entities.RandomSource) *World {
	if clock == nil {
		clock = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := newEmptyWorld(cfg)

	for _, inv := range entities.NewInvaderFormation(cfg, rng) {
		w.AddBody(inv)
	}

	w.player = entities.NewPlayer(cfg, input, sound, clock)
	w.AddBody(w.player)

	log.Printf("[World] Created world %.0fx%.0f with %d bodies", w.width, w.height, w.Len())
	return w
}

// newEmptyWorld 创建没有任何实体的世界
func newEmptyWorld(cfg *config.GameConfig) *World {
	em := ecs.NewEntityManager[entities.Body]()
	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)

	return &World{
		entityManager: em,
		physics:       systems.NewPhysicsSystem(em),
		bounds:        systems.NewBoundsSystem(em, width, height, cfg.Bullet.OffscreenMargin),
		width:         width,
		height:        height,
	}
}

// Update 推进一个 tick
func (w *World) Update() {
	// 1. 碰撞检测基于本 tick 开始时的位置
	w.physics.Update()
	w.entityManager.RemoveMarkedEntities()

	// 2. 快照幸存实体，本轮追加的实体不在快照中
	for _, id := range w.entityManager.Entities() {
		body, ok := w.entityManager.GetEntity(id)
		if !ok {
			continue
		}
		body.Update(w)
	}

	// 3. 回收离开画面的子弹
	w.bounds.Update()
	w.entityManager.RemoveMarkedEntities()

	w.tick++
	if w.tick%worldLogInterval == 0 {
		c := w.Counts()
		log.Printf("[World] tick %d: %d invaders, %d bullets, %d players",
			w.tick, c.Invaders, c.Bullets, c.Players)
	}
}

// Draw 清屏后按插入顺序绘制所有实体
func (w *World) Draw(r entities.Renderer) {
	r.Clear(0, 0, w.width, w.height)
	w.entityManager.Each(func(_ ecs.EntityID, body entities.Body) {
		body.Draw(r)
	})
}

// InvadersBelow 判断指定入侵者下方是否还有其他入侵者
//
// 对每个其他入侵者 b，以 b 的宽度作为水平容差：
// |invader.X - b.X| < b.Width 且 b.Y > invader.Y 时返回 true。
func (w *World) InvadersBelow(invader *entities.Invader) bool {
	pos := invader.Position()
	below := false

	w.entityManager.Each(func(_ ecs.EntityID, body entities.Body) {
		if below || body.Kind() != types.BodyInvader {
			return
		}
		other, ok := body.(*entities.Invader)
		if !ok || other == invader {
			return
		}

		otherPos := other.Position()
		dx := pos.X - otherPos.X
		if dx < 0 {
			dx = -dx
		}
		if dx < other.Collision().Width && otherPos.Y > pos.Y {
			below = true
		}
	})

	return below
}

// AddBody 追加实体，不去重
func (w *World) AddBody(body entities.Body) {
	w.entityManager.CreateEntity(body)
}

// Bodies 返回按插入顺序排列的实体快照
func (w *World) Bodies() []entities.Body {
	bodies := make([]entities.Body, 0, w.entityManager.Len())
	w.entityManager.Each(func(_ ecs.EntityID, body entities.Body) {
		bodies = append(bodies, body)
	})
	return bodies
}

// Len 存活实体数量
func (w *World) Len() int {
	return w.entityManager.Len()
}

// Tick 已经执行的 tick 数
func (w *World) Tick() uint64 {
	return w.tick
}

// Counts 按类型统计存活实体
func (w *World) Counts() BodyCounts {
	var c BodyCounts
	w.entityManager.Each(func(_ ecs.EntityID, body entities.Body) {
		switch body.Kind() {
		case types.BodyPlayer:
			c.Players++
		case types.BodyInvader:
			c.Invaders++
		case types.BodyBullet:
			c.Bullets++
		}
	})
	return c
}

// Player 返回玩家实体
// 玩家被击中后仍返回原对象，调用方可通过 Counts().Players 判断是否存活
func (w *World) Player() *entities.Player {
	return w.player
}

// Size 返回画面尺寸
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}
