package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/city-striker/component"
	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/vmath"
)

// CombatResolver applies hit and attack outcomes to enemies and GameState
// Called synchronously from the projectile and enemy passes
type CombatResolver struct {
	world *engine.World

	statHits    *atomic.Int64
	statKills   *atomic.Int64
	statAttacks *atomic.Int64
}

func NewCombatResolver(world *engine.World) *CombatResolver {
	reg := world.Resources.Status
	return &CombatResolver{
		world:       world,
		statHits:    reg.Ints.Get(status.KeyHits),
		statKills:   reg.Ints.Get(status.KeyKills),
		statAttacks: reg.Ints.Get(status.KeyEnemyAttacks),
	}
}

// ResolveBulletHit tests point against live enemies in collection order
// The first enemy whose torso lies within the hit radius takes the damage
// Returns true when the bullet was consumed
func (c *CombatResolver) ResolveBulletHit(point vmath.Vec3F) bool {
	enemies := c.world.Components.Enemy
	kinetics := c.world.Components.Kinetic

	for _, e := range enemies.AllEntity() {
		enemy, ok := enemies.GetComponent(e)
		if !ok || !enemy.Alive() {
			continue
		}
		kin, ok := kinetics.GetComponent(e)
		if !ok {
			continue
		}
		torso := vmath.V3FAdd(kin.Position, vmath.Vec3F{Y: parameter.EnemyTorsoHeight})
		if vmath.V3FDist(point, torso) >= parameter.BulletHitRadius {
			continue
		}

		c.applyHit(e, enemy)
		return true
	}
	return false
}

func (c *CombatResolver) applyHit(e core.Entity, enemy component.EnemyComponent) {
	state := c.world.Resources.Game.State

	enemy.Health = max(0, enemy.Health-parameter.BulletDamage)
	c.world.Components.Enemy.SetComponent(e, enemy)

	state.AddScore(parameter.BulletHitScore)
	c.statHits.Add(1)
	if !enemy.Alive() {
		state.RecordKill()
		c.statKills.Add(1)
	}
	c.world.Emit(core.SoundEnemyHit)
}

// ResolveEnemyAttack damages the player and stamps the attacker's cooldown
// The caller persists enemy
func (c *CombatResolver) ResolveEnemyAttack(enemy *component.EnemyComponent, now time.Time) {
	res := c.world.Resources
	enemy.LastAttack = now

	health := res.Game.State.Damage(parameter.EnemyAttackDamage)
	c.statAttacks.Add(1)
	c.world.Emit(core.SoundEnemyAttack)
	c.world.Emit(core.SoundPlayerDamage)

	if health <= 0 {
		snap := res.Game.State.Snapshot()
		res.Log.Printf("combat: player down on wave %d, score %d, kills %d",
			snap.Wave, snap.Score, snap.EnemiesKilled)
	}
}
