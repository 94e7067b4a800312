package parameter

import "time"

// Audio Output
const (
	AudioSampleRate    = 48000
	AudioBufferLength  = 100 * time.Millisecond
	AudioMasterDefault = 0.3
)

// Cue Timings
const (
	CueShotFirst     = 50 * time.Millisecond
	CueShotGap       = 20 * time.Millisecond
	CueShotSecond    = 30 * time.Millisecond
	CueHitFirst      = 100 * time.Millisecond
	CueHitGap        = 30 * time.Millisecond
	CueHitSecond     = 80 * time.Millisecond
	CueReloadNote    = 100 * time.Millisecond
	CueReloadLast    = 150 * time.Millisecond
	CueReloadSpacing = 150 * time.Millisecond
	CueAttack        = 200 * time.Millisecond
	CueDamageFirst   = 300 * time.Millisecond
	CueDamageGap     = 100 * time.Millisecond
	CueDamageSecond  = 200 * time.Millisecond
	CueEnvelopeRamp  = 5 * time.Millisecond
)
