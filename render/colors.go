package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 95, 120)   // Muted slate
	RgbRing       = tcell.NewRGBColor(60, 60, 80)    // Attack range ring
	RgbPlayer     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbJetpack    = tcell.NewRGBColor(255, 255, 255) // White while thrusting
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	RgbHudText      = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHudWarn      = tcell.NewRGBColor(255, 80, 80)   // Low health, empty magazine
	RgbHudReload    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)     // Bright red
	RgbBannerBg     = tcell.NewRGBColor(128, 0, 0)     // Dark red
	RgbBannerText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerPrompt = tcell.NewRGBColor(255, 192, 203) // Pink
)

// EnemyColor tints from yellow at full health to red near death
func EnemyColor(health, maxHealth int) tcell.Color {
	frac := 0.0
	if maxHealth > 0 {
		frac = float64(health) / float64(maxHealth)
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return tcell.NewRGBColor(255, int32(40+200*frac), 0)
}
