package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/vmath"
)

var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Radar is a top-down, north-up projection centred on the player
// Screen up is world -Z, the facing direction at zero yaw
type Radar struct {
	// Box including border, in cells
	X, Y, Width, Height int

	centerX, centerY int
	perUnit          float64 // rows per world unit
}

// NewRadar lays out a radar in the given box
func NewRadar(x, y, width, height int) Radar {
	r := Radar{X: x, Y: y, Width: width, Height: height}
	r.centerX = x + width/2
	r.centerY = y + height/2

	rows := float64(height-2) / 2
	cols := float64(width-2) / 2
	r.perUnit = math.Max(0, math.Min(rows, cols/parameter.RadarAspect)/parameter.RadarRange)
	return r
}

// Project maps a world point to a cell relative to origin
// ok is false outside the border
func (r Radar) Project(origin, p vmath.Vec3F) (x, y int, ok bool) {
	d := vmath.V3FSub(p, origin)
	x = r.centerX + int(math.Round(d.X*r.perUnit*parameter.RadarAspect))
	y = r.centerY + int(math.Round(d.Z*r.perUnit))
	ok = x > r.X && x < r.X+r.Width-1 && y > r.Y && y < r.Y+r.Height-1
	return x, y, ok
}

// HeadingGlyph returns the arrow closest to the yaw facing on screen
func HeadingGlyph(yaw float64) rune {
	fx, fz := -math.Sin(yaw), -math.Cos(yaw)
	angle := math.Atan2(fx, -fz)
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return headingGlyphs[sector]
}

// Draw renders border, attack ring, bullets, enemies then the player on top
func (r Radar) Draw(c Canvas, snap game.Snapshot, base tcell.Style) {
	if r.Width < 3 || r.Height < 3 {
		return
	}
	r.drawBorder(c, base.Foreground(RgbBorder))

	origin := snap.Player.Position

	ring := base.Foreground(RgbRing)
	for i := 0; i < parameter.RadarRingSamples; i++ {
		a := 2 * math.Pi * float64(i) / parameter.RadarRingSamples
		p := vmath.Vec3F{
			X: origin.X + parameter.EnemyAttackRange*math.Cos(a),
			Z: origin.Z + parameter.EnemyAttackRange*math.Sin(a),
		}
		if x, y, ok := r.Project(origin, p); ok {
			c.SetContent(x, y, '·', nil, ring)
		}
	}

	bullet := base.Foreground(RgbBullet)
	for _, b := range snap.Bullets {
		if x, y, ok := r.Project(origin, b.Position); ok {
			c.SetContent(x, y, '•', nil, bullet)
		}
	}

	for _, e := range snap.Enemies {
		if e.Health <= 0 {
			continue
		}
		if x, y, ok := r.Project(origin, e.Position); ok {
			c.SetContent(x, y, 'E', nil, base.Foreground(EnemyColor(e.Health, e.MaxHealth)).Bold(true))
		}
	}

	player := base.Foreground(RgbPlayer).Bold(true)
	if snap.Player.Jetpack {
		player = player.Foreground(RgbJetpack)
	}
	c.SetContent(r.centerX, r.centerY, HeadingGlyph(snap.Player.Yaw), nil, player)
}

func (r Radar) drawBorder(c Canvas, style tcell.Style) {
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	for x := r.X + 1; x < right; x++ {
		c.SetContent(x, r.Y, '─', nil, style)
		c.SetContent(x, bottom, '─', nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.SetContent(r.X, y, '│', nil, style)
		c.SetContent(right, y, '│', nil, style)
	}
	c.SetContent(r.X, r.Y, '┌', nil, style)
	c.SetContent(right, r.Y, '┐', nil, style)
	c.SetContent(r.X, bottom, '└', nil, style)
	c.SetContent(right, bottom, '┘', nil, style)
}
