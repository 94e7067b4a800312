package engine

import (
	"github.com/lixenwraith/city-striker/component"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	Kinetic *Store[component.KineticComponent]
	Enemy   *Store[component.EnemyComponent]
	Bullet  *Store[component.BulletComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic: NewStore[component.KineticComponent](),
		Enemy:   NewStore[component.EnemyComponent](),
		Bullet:  NewStore[component.BulletComponent](),
	}
}

// all returns every store for lifecycle sweeps
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{c.Kinetic, c.Enemy, c.Bullet}
}
