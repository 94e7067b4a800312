package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/parameter"
)

const (
	voiceGain  = 0.3
	voiceFloor = 0.01
)

// voice is one tone of a cue, started at offset from the cue start
type voice struct {
	wave     waveform
	freq     float64
	offset   time.Duration
	duration time.Duration
}

var cueVoices = [core.SoundTypeCount][]voice{
	core.SoundShot: {
		{waveSquare, 800, 0, parameter.CueShotFirst},
		{waveSquare, 600, parameter.CueShotGap, parameter.CueShotSecond},
	},
	core.SoundEnemyHit: {
		{waveSine, 1200, 0, parameter.CueHitFirst},
		{waveSine, 1000, parameter.CueHitGap, parameter.CueHitSecond},
	},
	core.SoundReload: {
		{waveSine, 400, 0, parameter.CueReloadNote},
		{waveSine, 350, parameter.CueReloadSpacing, parameter.CueReloadNote},
		{waveSine, 450, 2 * parameter.CueReloadSpacing, parameter.CueReloadLast},
	},
	core.SoundEnemyAttack: {
		{waveSaw, 200, 0, parameter.CueAttack},
	},
	core.SoundPlayerDamage: {
		{waveSaw, 300, 0, parameter.CueDamageFirst},
		{waveSaw, 250, parameter.CueDamageGap, parameter.CueDamageSecond},
	},
}

// cueLength returns the span from the first voice start to the last voice end
func cueLength(st core.SoundType) time.Duration {
	if st < 0 || st >= core.SoundTypeCount {
		return 0
	}
	var end time.Duration
	for _, v := range cueVoices[st] {
		if e := v.offset + v.duration; e > end {
			end = e
		}
	}
	return end
}

func toneFor(sr beep.SampleRate, w waveform, freq float64) (beep.Streamer, error) {
	switch w {
	case waveSquare:
		return generators.SquareTone(sr, freq)
	case waveSaw:
		return generators.SawtoothTone(sr, freq)
	default:
		return generators.SineTone(sr, freq)
	}
}

// renderCue mixes all voices of a cue into one stereo buffer at unity master gain
func renderCue(sr beep.SampleRate, st core.SoundType) ([][2]float64, error) {
	if st < 0 || st >= core.SoundTypeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, st)
	}

	out := make([][2]float64, sr.N(cueLength(st)))
	for _, v := range cueVoices[st] {
		tone, err := toneFor(sr, v.wave, v.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", st, err)
		}

		n := sr.N(v.duration)
		buf := make([][2]float64, n)
		for filled := 0; filled < n; {
			k, ok := tone.Stream(buf[filled:])
			if !ok {
				break
			}
			filled += k
		}
		applyEnvelope(buf, sr.N(parameter.CueEnvelopeRamp))

		start := sr.N(v.offset)
		for i := range buf {
			if start+i >= len(out) {
				break
			}
			out[start+i][0] += buf[i][0]
			out[start+i][1] += buf[i][1]
		}
	}
	return out, nil
}

// applyEnvelope ramps in linearly then decays exponentially from voiceGain to voiceFloor
func applyEnvelope(buf [][2]float64, attack int) {
	total := len(buf)
	if total == 0 {
		return
	}
	decay := math.Log(voiceFloor / voiceGain)

	for i := range buf {
		vol := voiceGain * math.Exp(decay*float64(i)/float64(total))
		if i < attack && attack > 0 {
			vol *= float64(i) / float64(attack)
		}
		buf[i][0] *= vol
		buf[i][1] *= vol
	}
}

// sampleStreamer plays a pre-rendered buffer once
type sampleStreamer struct {
	data [][2]float64
	pos  int
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	n = copy(samples, s.data[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}
