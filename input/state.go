package input

// HoldKey identifies a movement key latched across terminal key repeats
type HoldKey uint8

const (
	HoldForward HoldKey = iota
	HoldBack
	HoldLeft
	HoldRight
	HoldJump
	holdCount
)
