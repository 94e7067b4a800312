package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/engine"
)

const lowHealth = 25

// hudSegment is one styled piece of the status line
type hudSegment struct {
	text  string
	color tcell.Color
}

// HUDLine formats the status line as plain text
func HUDLine(st engine.GameStateSnapshot, muted bool) string {
	var s string
	for _, seg := range hudSegments(st, muted) {
		s += seg.text
	}
	return s
}

func hudSegments(st engine.GameStateSnapshot, muted bool) []hudSegment {
	healthColor := RgbHudText
	if st.Health <= lowHealth {
		healthColor = RgbHudWarn
	}
	ammoColor := RgbHudText
	if st.Ammo == 0 {
		ammoColor = RgbHudWarn
	}

	segs := []hudSegment{
		{fmt.Sprintf("HP %3d", st.Health), healthColor},
		{fmt.Sprintf("  AMMO %2d/%d", st.Ammo, st.ReserveAmmo), ammoColor},
	}
	if st.Reloading {
		segs = append(segs, hudSegment{"  RELOADING", RgbHudReload})
	}
	segs = append(segs, hudSegment{
		fmt.Sprintf("  JET %d  WAVE %d  LEFT %d  KILLS %d  SCORE %d",
			st.JetpackCharges, st.Wave, st.EnemiesRemaining, st.EnemiesKilled, st.Score),
		RgbHudText,
	})
	if muted {
		segs = append(segs, hudSegment{"  MUTED", RgbAudioMuted})
	}
	return segs
}

func drawHUD(c Canvas, y, width int, st engine.GameStateSnapshot, muted bool, base tcell.Style) {
	for x := 0; x < width; x++ {
		c.SetContent(x, y, ' ', nil, base)
	}
	x := 0
	for _, seg := range hudSegments(st, muted) {
		x = drawText(c, x, y, width, seg.text, base.Foreground(seg.color))
	}
}
