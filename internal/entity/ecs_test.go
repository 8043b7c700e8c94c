package entity

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

func TestEnemiesKeepSpawnOrder(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, ecs.AddEnemy(&component.Enemy{Health: float64(i + 1)}))
	}
	ecs.RemoveEnemy(ids[2])

	got := ecs.EnemyIDs()
	want := []types.EntityID{ids[0], ids[1], ids[3], ids[4]}
	if len(got) != len(want) {
		t.Fatalf("EnemyIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EnemyIDs = %v, want %v", got, want)
		}
	}
	if ecs.EnemyCount() != 4 {
		t.Fatalf("EnemyCount = %d, want 4", ecs.EnemyCount())
	}
}

func TestWeakReferenceToRemovedEnemy(t *testing.T) {
	ecs := NewECS()
	id := ecs.AddEnemy(&component.Enemy{Health: 10})
	ecs.RemoveEnemy(id)
	if _, ok := ecs.Enemy(id); ok {
		t.Fatal("removed enemy must not resolve")
	}
	if _, ok := ecs.Enemy(0); ok {
		t.Fatal("zero id must not resolve")
	}
	// повторное удаление безопасно
	ecs.RemoveEnemy(id)
}

func TestIDsAreNeverReused(t *testing.T) {
	ecs := NewECS()
	a := ecs.AddEnemy(&component.Enemy{})
	ecs.RemoveEnemy(a)
	b := ecs.AddEnemy(&component.Enemy{})
	if a == b {
		t.Fatalf("id %d reused", a)
	}
}

func TestProjectilesAttachToOwner(t *testing.T) {
	ecs := NewECS()
	towerID := ecs.AddTower(&component.Tower{})
	p1 := ecs.AddProjectile(&component.Projectile{OwnerID: towerID})
	p2 := ecs.AddProjectile(&component.Projectile{OwnerID: towerID})

	tower, _ := ecs.Tower(towerID)
	if len(tower.Projectiles) != 2 {
		t.Fatalf("tower owns %d projectiles, want 2", len(tower.Projectiles))
	}
	ecs.RemoveProjectile(p1)
	if len(tower.Projectiles) != 1 || tower.Projectiles[0] != p2 {
		t.Fatalf("tower projectiles = %v, want [%d]", tower.Projectiles, p2)
	}
	ecs.RemoveProjectile(p2)
	if len(tower.Projectiles) != 0 || len(ecs.ProjectileIDs()) != 0 {
		t.Fatal("projectiles left behind")
	}
}

func TestEnemyIDsIsACopy(t *testing.T) {
	ecs := NewECS()
	ecs.AddEnemy(&component.Enemy{})
	ecs.AddEnemy(&component.Enemy{})
	ids := ecs.EnemyIDs()
	for _, id := range ids {
		ecs.RemoveEnemy(id)
	}
	if ecs.EnemyCount() != 0 {
		t.Fatal("removing while iterating a copy should remove all")
	}
}
