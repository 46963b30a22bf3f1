package systems

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

// PhysicsSystem 处理碰撞检测
// 全量两两比较（O(n²)），不做空间划分
type PhysicsSystem struct {
	em *ecs.EntityManager[entities.Body]
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager[entities.Body]) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// Colliding 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 碰撞盒中心对齐实体位置，边界刚好接触也算碰撞
//
// 参数:
//   - a, b: 待检测的两个实体
//
// 返回:
//   - bool: 两个碰撞盒重叠返回 true；a 与 b 是同一个实体时总是返回 false
func Colliding(a, b entities.Body) bool {
	if a == b {
		return false
	}

	colA := a.Collision()
	colB := b.Collision()
	left1, top1, right1, bottom1 := colA.Bounds(a.Position())
	left2, top2, right2, bottom2 := colB.Bounds(b.Position())

	// 任一轴上严格分离则没有碰撞
	return !(right1 < left2 ||
		bottom1 < top2 ||
		left1 > right2 ||
		top1 > bottom2)
}

// FindColliding 在给定快照中找出所有与至少一个其他实体碰撞的实体
//
// 检测基于调用时的位置，调用期间不移动任何实体。
//
// 参数:
//   - ids: 实体ID快照
//
// 返回:
//   - []ecs.EntityID: 发生碰撞的实体ID，按快照顺序排列
func (ps *PhysicsSystem) FindColliding(ids []ecs.EntityID) []ecs.EntityID {
	bodies := make([]entities.Body, len(ids))
	for i, id := range ids {
		bodies[i], _ = ps.em.GetEntity(id)
	}

	hit := make([]bool, len(ids))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if Colliding(bodies[i], bodies[j]) {
				hit[i] = true
				hit[j] = true
			}
		}
	}

	result := make([]ecs.EntityID, 0)
	for i, id := range ids {
		if hit[i] {
			result = append(result, id)
		}
	}
	return result
}

// Update 标记所有发生碰撞的实体待删除
//
// 返回:
//   - int: 被标记的实体数量
func (ps *PhysicsSystem) Update() int {
	colliding := ps.FindColliding(ps.em.Entities())
	for _, id := range colliding {
		ps.em.DestroyEntity(id)
	}
	return len(colliding)
}
