package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Hold       HoldKey
	Yaw        float64 // IntentLook direction, in look steps
	Pitch      float64
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, case-sensitive
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	hold := func(h HoldKey) KeyEntry { return KeyEntry{IntentType: IntentHold, Hold: h} }

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentRestart},
			tcell.KeyLeft:   {IntentType: IntentLook, Yaw: 1},
			tcell.KeyRight:  {IntentType: IntentLook, Yaw: -1},
			tcell.KeyUp:     {IntentType: IntentLook, Pitch: 1},
			tcell.KeyDown:   {IntentType: IntentLook, Pitch: -1},
		},

		Runes: map[rune]KeyEntry{
			'w': hold(HoldForward), 'W': hold(HoldForward),
			's': hold(HoldBack), 'S': hold(HoldBack),
			'a': hold(HoldLeft), 'A': hold(HoldLeft),
			'd': hold(HoldRight), 'D': hold(HoldRight),
			' ': hold(HoldJump),

			'f': {IntentType: IntentShoot},
			'F': {IntentType: IntentShoot},
			'r': {IntentType: IntentReload},
			'R': {IntentType: IntentReload},
			'e': {IntentType: IntentJetpackStart},
			'E': {IntentType: IntentJetpackStart},
			'q': {IntentType: IntentJetpackStop},
			'Q': {IntentType: IntentJetpackStop},
			'm': {IntentType: IntentToggleMute},
			'M': {IntentType: IntentToggleMute},
		},
	}
}
