package ecs

import (
	"testing"
)

// 测试实体类型定义
type testBody struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager[*testBody]()
	id1 := em.CreateEntity(&testBody{Name: "a"})
	id2 := em.CreateEntity(&testBody{Name: "b"})

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.Len() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.Len())
	}
}

func TestGetEntity(t *testing.T) {
	em := NewEntityManager[*testBody]()
	body := &testBody{Name: "player"}
	id := em.CreateEntity(body)

	got, found := em.GetEntity(id)
	if !found {
		t.Fatal("Entity should be found")
	}
	if got != body {
		t.Errorf("Expected the same instance back, got %+v", got)
	}

	if _, found := em.GetEntity(999); found {
		t.Error("Unknown entity should not be found")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager[*testBody]()
	id := em.CreateEntity(&testBody{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasEntity(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	removed := em.RemoveMarkedEntities()
	if removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.HasEntity(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.Len() != 0 {
		t.Errorf("Expected 0 entities after cleanup, got %d", em.Len())
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager[*testBody]()
	id := em.CreateEntity(&testBody{})

	// 同一实体被标记两次（例如同时与两个实体碰撞）
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Duplicate marks should remove once, got %d", removed)
	}
}

func TestRemoveMarkedEntitiesPreservesOrder(t *testing.T) {
	em := NewEntityManager[*testBody]()
	ids := make([]EntityID, 0, 5)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, em.CreateEntity(&testBody{Name: name}))
	}

	em.DestroyEntity(ids[1])
	em.DestroyEntity(ids[3])
	em.RemoveMarkedEntities()

	var names []string
	em.Each(func(id EntityID, body *testBody) {
		names = append(names, body.Name)
	})

	want := []string{"a", "c", "e"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Order mismatch at %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestEntitiesSnapshot(t *testing.T) {
	em := NewEntityManager[*testBody]()
	em.CreateEntity(&testBody{Name: "a"})
	em.CreateEntity(&testBody{Name: "b"})

	snapshot := em.Entities()

	// 快照之后新增的实体不应出现在快照中
	em.CreateEntity(&testBody{Name: "c"})

	if len(snapshot) != 2 {
		t.Errorf("Snapshot should keep 2 entities, got %d", len(snapshot))
	}
	if em.Len() != 3 {
		t.Errorf("Manager should hold 3 entities, got %d", em.Len())
	}
}

func TestRemoveMarkedEntitiesNoop(t *testing.T) {
	em := NewEntityManager[*testBody]()
	em.CreateEntity(&testBody{})

	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected no removals, got %d", removed)
	}
	if em.Len() != 1 {
		t.Errorf("Expected 1 entity, got %d", em.Len())
	}
}
