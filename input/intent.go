package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C
	IntentToggleMute // m
	IntentRestart    // Enter
	IntentResize     // Terminal resize event

	// Held keys and orientation, folded into State
	IntentHold // WASD, space
	IntentLook // Arrow keys

	// Edge-triggered combat actions
	IntentShoot        // f
	IntentReload       // r
	IntentJetpackStart // e, E
	IntentJetpackStop  // q
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType
	Hold HoldKey // IntentHold only
}
