package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 按插入顺序管理所有实体
//
// 实体顺序只影响遍历（绘制、更新）顺序。删除是延迟的：
// DestroyEntity 只做标记，RemoveMarkedEntities 统一清理，
// 这样在一次遍历中标记删除不会打乱正在进行的迭代。
type EntityManager[T any] struct {
	nextID uint64
	// 实体ID的插入顺序
	order []EntityID
	// 实体ID -> 实体实例
	entities map[EntityID]T
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0),
		entities:          make(map[EntityID]T),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 把实体追加到集合末尾并返回唯一ID
func (em *EntityManager[T]) CreateEntity(entity T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.order = append(em.order, id)
	em.entities[id] = entity
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// GetEntity 获取实体实例
func (em *EntityManager[T]) GetEntity(id EntityID) (T, bool) {
	entity, ok := em.entities[id]
	return entity, ok
}

// HasEntity 检查实体是否仍然存在
func (em *EntityManager[T]) HasEntity(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体，保持剩余实体的相对顺序
//
// 返回:
//   - int: 实际删除的实体数量（重复标记只计一次）
func (em *EntityManager[T]) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, ok := em.entities[id]; ok {
			delete(em.entities, id)
			removed++
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 原地压缩顺序表
	kept := em.order[:0]
	for _, id := range em.order {
		if _, ok := em.entities[id]; ok {
			kept = append(kept, id)
		}
	}
	em.order = kept

	return removed
}

// Entities 返回当前实体ID的有序快照
// 返回的切片是副本，遍历期间创建或删除实体不会影响它
func (em *EntityManager[T]) Entities() []EntityID {
	result := make([]EntityID, len(em.order))
	copy(result, em.order)
	return result
}

// Each 按插入顺序遍历当前所有实体
func (em *EntityManager[T]) Each(fn func(id EntityID, entity T)) {
	for _, id := range em.order {
		fn(id, em.entities[id])
	}
}

// Len 返回当前实体数量
func (em *EntityManager[T]) Len() int {
	return len(em.order)
}
