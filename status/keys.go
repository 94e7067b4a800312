package status

// Metric keys written by the simulation
const (
	KeyTicks        = "engine.ticks"
	KeyTickDuration = "engine.tick_ms"
	KeyGameOver     = "engine.game_over"
	KeyRunID        = "engine.run_id"
	KeyRestarts     = "engine.restarts"

	KeyShotsFired = "weapon.shots"
	KeyReloads    = "weapon.reloads"
	KeyBullets    = "weapon.bullets_live"

	KeyHits         = "combat.hits"
	KeyKills        = "combat.kills"
	KeyEnemyAttacks = "combat.enemy_attacks"

	KeyEnemiesLive = "wave.enemies_live"
	KeyWave        = "wave.current"
	KeyRespawns    = "wave.respawns"

	KeyJetpackBurns = "player.jetpack_burns"
	KeyAudioPlayed  = "audio.cues_played"
)

// Metric keys written by the network bridge
const (
	KeyBridgeClients = "bridge.clients"
	KeyBridgeFrames  = "bridge.frames"
	KeyBridgeDropped = "bridge.dropped"
	KeyBridgeInbound = "bridge.inbound"
)
