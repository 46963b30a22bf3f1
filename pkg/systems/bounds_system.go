package systems

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/types"
)

// BoundsSystem 回收飞出画面的子弹
//
// 子弹只会在碰撞时被删除，飞出画面后永远不会再碰撞，
// 如果不回收会一直累积。玩家和入侵者不受影响。
type BoundsSystem struct {
	em     *ecs.EntityManager[entities.Body]
	width  float64
	height float64
	margin float64
}

// NewBoundsSystem 创建边界回收系统
//
// 参数:
//   - em: 实体管理器
//   - width, height: 画面尺寸
//   - margin: 子弹完全离开画面超过该距离后才回收
func NewBoundsSystem(em *ecs.EntityManager[entities.Body], width, height, margin float64) *BoundsSystem {
	return &BoundsSystem{
		em:     em,
		width:  width,
		height: height,
		margin: margin,
	}
}

// Expired 判断实体是否应被回收
func (bs *BoundsSystem) Expired(b entities.Body) bool {
	if b.Kind() != types.BodyBullet {
		return false
	}

	col := b.Collision()
	left, top, right, bottom := col.Bounds(b.Position())
	return right < -bs.margin ||
		bottom < -bs.margin ||
		left > bs.width+bs.margin ||
		top > bs.height+bs.margin
}

// Update 标记所有过期子弹待删除
//
// 返回:
//   - int: 被标记的实体数量
func (bs *BoundsSystem) Update() int {
	expired := 0
	bs.em.Each(func(id ecs.EntityID, b entities.Body) {
		if bs.Expired(b) {
			bs.em.DestroyEntity(id)
			expired++
		}
	})
	return expired
}
