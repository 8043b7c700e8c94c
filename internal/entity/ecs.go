// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS хранит все живые сущности симуляции. Карты дают поиск по ID
// (слабые ссылки башен и снарядов), срезы порядка задают детерминированный обход:
// враги в порядке появления, башни в порядке постройки.
type ECS struct {
	NextID      types.EntityID
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Economy     *component.Economy

	enemyOrder      []types.EntityID
	towerOrder      []types.EntityID
	projectileOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers e and returns its ID.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = e
	ecs.enemyOrder = append(ecs.enemyOrder, id)
	return id
}

// Enemy разрешает слабую ссылку. Удалённый враг просто не находится.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	if id == 0 {
		return nil, false
	}
	e, ok := ecs.Enemies[id]
	return e, ok
}

// RemoveEnemy deletes the enemy; later lookups by id fail.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	if _, ok := ecs.Enemies[id]; !ok {
		return
	}
	delete(ecs.Enemies, id)
	ecs.enemyOrder = removeID(ecs.enemyOrder, id)
}

// EnemyIDs returns enemy IDs in spawn order. The slice is a copy, so callers
// may remove enemies while iterating.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.enemyOrder...)
}

// EnemyCount returns the number of enemies on the field.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.enemyOrder)
}

// AddTower registers t and returns its ID.
func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = t
	ecs.towerOrder = append(ecs.towerOrder, id)
	return id
}

// Tower looks up a tower by id.
func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.Towers[id]
	return t, ok
}

// TowerIDs returns tower IDs in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.towerOrder...)
}

// TowerCount returns the number of placed towers.
func (ecs *ECS) TowerCount() int {
	return len(ecs.towerOrder)
}

// AddProjectile registers p and attaches it to its owning tower.
func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = p
	ecs.projectileOrder = append(ecs.projectileOrder, id)
	if owner, ok := ecs.Towers[p.OwnerID]; ok {
		owner.Projectiles = append(owner.Projectiles, id)
	}
	return id
}

// Projectile looks up a projectile by id.
func (ecs *ECS) Projectile(id types.EntityID) (*component.Projectile, bool) {
	p, ok := ecs.Projectiles[id]
	return p, ok
}

// RemoveProjectile deletes the projectile and detaches it from its owner.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	p, ok := ecs.Projectiles[id]
	if !ok {
		return
	}
	if owner, ok := ecs.Towers[p.OwnerID]; ok {
		owner.Projectiles = removeID(owner.Projectiles, id)
	}
	delete(ecs.Projectiles, id)
	ecs.projectileOrder = removeID(ecs.projectileOrder, id)
}

// ProjectileIDs returns projectile IDs in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.projectileOrder...)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
