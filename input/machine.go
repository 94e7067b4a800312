package input

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/vmath"
)

// Machine parses terminal events into intents and tracks held keys and orientation
// Terminals report presses and repeats but no release, so a key counts as held
// until holdWindow passes without another press
type Machine struct {
	keyTable   *KeyTable
	holdWindow time.Duration
	lookStep   float64

	lastPress [holdCount]time.Time
	yaw       float64
	pitch     float64
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable:   DefaultKeyTable(),
		holdWindow: parameter.InputHoldWindow,
		lookStep:   parameter.InputLookStep,
	}
}

// Reset releases all keys and levels the view
func (m *Machine) Reset() {
	m.lastPress = [holdCount]time.Time{}
	m.yaw = 0
	m.pitch = 0
}

// Process parses a tcell event
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.ProcessKey(ev.Key(), ev.Rune(), now)
	}
	return nil
}

// ProcessKey resolves a key press, latching holds and applying look steps
func (m *Machine) ProcessKey(key tcell.Key, ch rune, now time.Time) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if key == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ch]
	} else {
		entry, ok = m.keyTable.SpecialKeys[key]
	}
	if !ok {
		return nil
	}

	switch entry.IntentType {
	case IntentHold:
		m.lastPress[entry.Hold] = now
	case IntentLook:
		m.yaw = math.Remainder(m.yaw+entry.Yaw*m.lookStep, 2*math.Pi)
		m.pitch = vmath.Clamp(m.pitch+entry.Pitch*m.lookStep, -parameter.InputPitchLimit, parameter.InputPitchLimit)
	}
	return &Intent{Type: entry.IntentType, Hold: entry.Hold}
}

// Held reports whether k was pressed within the hold window
func (m *Machine) Held(k HoldKey, now time.Time) bool {
	last := m.lastPress[k]
	return !last.IsZero() && now.Sub(last) < m.holdWindow
}

// State returns the input snapshot for the next tick
func (m *Machine) State(now time.Time) engine.InputState {
	return engine.InputState{
		Forward: m.Held(HoldForward, now),
		Back:    m.Held(HoldBack, now),
		Left:    m.Held(HoldLeft, now),
		Right:   m.Held(HoldRight, now),
		Jump:    m.Held(HoldJump, now),
		Yaw:     m.yaw,
		Pitch:   m.pitch,
	}
}

func (m *Machine) Yaw() float64   { return m.yaw }
func (m *Machine) Pitch() float64 { return m.pitch }
