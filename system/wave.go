package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/city-striker/component"
	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/vmath"
)

// WaveStats are the enemy parameters of a wave
type WaveStats struct {
	Count    int
	Health   int
	Cooldown time.Duration
}

// StatsForWave scales count, health and attack cooldown by wave number (1-based)
func StatsForWave(wave int) WaveStats {
	n := max(0, wave-1)
	return WaveStats{
		Count:    parameter.WaveBaseCount + parameter.WaveCountGrowth*n,
		Health:   parameter.WaveBaseHealth + parameter.WaveHealthGrowth*n,
		Cooldown: max(parameter.WaveCooldownFloor, parameter.WaveBaseCooldown-parameter.WaveCooldownDecay*time.Duration(n)),
	}
}

// WaveSystem is the wave director
// It removes dead enemies, advances the wave on a full clear and tops up the population otherwise
// EnemiesRemaining is the wave target: set to the wave count at wave start, lowered only by losses,
// and the ceiling for top-up so every wave can be cleared
type WaveSystem struct {
	world *engine.World

	statWave     *atomic.Int64
	statRespawns *atomic.Int64
}

func NewWaveSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &WaveSystem{
		world:        world,
		statWave:     reg.Ints.Get(status.KeyWave),
		statRespawns: reg.Ints.Get(status.KeyRespawns),
	}
	s.Init()
	return s
}

// Init places the opening population
func (s *WaveSystem) Init() {
	s.world.DestroyEntities(s.world.Components.Enemy.AllEntity())
	stats := WaveStats{
		Count:    parameter.EnemyInitialCount,
		Health:   parameter.EnemyInitialHealth,
		Cooldown: parameter.EnemyInitialCooldown,
	}
	for i := 0; i < stats.Count; i++ {
		s.spawnEnemy(stats, parameter.EnemyInitialSpread)
	}
	s.world.Resources.Game.State.SetEnemiesRemaining(stats.Count)
	s.statWave.Store(1)
}

func (s *WaveSystem) Name() string { return "wave" }

func (s *WaveSystem) Priority() int { return parameter.PriorityWave }

func (s *WaveSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *WaveSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *WaveSystem) Update() {
	enemies := s.world.Components.Enemy
	all := enemies.AllEntity()
	if len(all) == 0 {
		return
	}

	var dead []core.Entity
	for _, e := range all {
		if enemy, ok := enemies.GetComponent(e); ok && !enemy.Alive() {
			dead = append(dead, e)
		}
	}
	if len(dead) == 0 {
		return
	}

	s.world.DestroyEntities(dead)

	alive := len(all) - len(dead)
	if alive == 0 {
		s.advanceWave()
		return
	}
	s.topUp(len(dead), alive)
}

// advanceWave spawns the next wave and grants the clear reward
func (s *WaveSystem) advanceWave() {
	res := s.world.Resources
	state := res.Game.State

	wave := state.AdvanceWave()
	stats := StatsForWave(wave)
	for i := 0; i < stats.Count; i++ {
		s.spawnEnemy(stats, parameter.WaveSpawnSpread)
	}
	state.SetEnemiesRemaining(stats.Count)

	state.Heal(parameter.WaveRewardHealth)
	state.RefillMagazine()
	state.AddReserve(parameter.WaveRewardReserve)
	state.GrantJetpackCharges(parameter.WaveRewardJetpack)

	s.statWave.Store(int64(wave))
	res.Log.Printf("wave: advanced to %d (%d enemies, health %d, cooldown %v)",
		wave, stats.Count, stats.Health, stats.Cooldown)
}

// topUp charges the losses against the wave target, then spawns toward the population floor
// The live count never exceeds the target
func (s *WaveSystem) topUp(removed, alive int) {
	state := s.world.Resources.Game.State
	target := state.RecordLosses(removed, alive)

	stats := StatsForWave(state.GetWave())
	for alive < min(parameter.WavePopulationMin, target) {
		s.spawnEnemy(stats, parameter.WaveSpawnSpread)
		alive++
		s.statRespawns.Add(1)
	}
}

func (s *WaveSystem) spawnEnemy(stats WaveStats, spread float64) core.Entity {
	pos := s.spawnPoint(spread)
	e := s.world.CreateEntity()
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{Position: pos})
	s.world.Components.Enemy.SetComponent(e, component.EnemyComponent{
		Health:         stats.Health,
		MaxHealth:      stats.Health,
		AttackCooldown: stats.Cooldown,
	})
	return e
}

// spawnPoint samples the square [-spread, spread]^2 around the origin, rejecting points
// inside the safe zone around the player
// After WaveSpawnMaxProbes rejections the last sample is pushed out to the zone edge
func (s *WaveSystem) spawnPoint(spread float64) vmath.Vec3F {
	rng := s.world.Resources.Rand
	player := s.world.Resources.Player.Position
	center := vmath.Vec3F{X: player.X, Z: player.Z}

	var pos vmath.Vec3F
	for i := 0; i < parameter.WaveSpawnMaxProbes; i++ {
		pos = vmath.Vec3F{X: rng.Spread(spread), Z: rng.Spread(spread)}
		if vmath.V3FPlanarDist(pos, center) >= parameter.WaveSpawnSafeZone {
			return pos
		}
	}
	dir := vmath.V3FNormalize(vmath.V3FSub(pos, center))
	if dir == (vmath.Vec3F{}) {
		dir = vmath.Vec3F{X: 1}
	}
	return vmath.V3FAdd(center, vmath.V3FScale(dir, parameter.WaveSpawnSafeZone))
}
