package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/vmath"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records the last frame in memory
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: map[[2]int]cell{}}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }
func (f *fakeCanvas) Clear()           { f.cells = map[[2]int]cell{} }
func (f *fakeCanvas) Show()            { f.shown++ }

func (f *fakeCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		panic("draw outside canvas")
	}
	f.cells[[2]int{x, y}] = cell{r, style}
}

func (f *fakeCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < f.w; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			c.r = ' '
		}
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// count tallies r below the HUD row
func (f *fakeCanvas) count(r rune) int {
	n := 0
	for pos, c := range f.cells {
		if pos[1] > 0 && c.r == r {
			n++
		}
	}
	return n
}

func (f *fakeCanvas) contains(s string) bool {
	for y := 0; y < f.h; y++ {
		if strings.Contains(f.row(y), s) {
			return true
		}
	}
	return false
}

func openingState() engine.GameStateSnapshot {
	return engine.GameStateSnapshot{
		Health: 100, Ammo: 30, MaxAmmo: 30, ReserveAmmo: 120,
		JetpackCharges: 3, Wave: 1, EnemiesRemaining: 5,
	}
}

func TestProjectOrientation(t *testing.T) {
	r := NewRadar(0, 0, 81, 25)
	origin := vmath.Vec3F{X: 100, Y: 5, Z: -40}

	cx, cy, ok := r.Project(origin, origin)
	if !ok || cx != 40 || cy != 12 {
		t.Fatalf("origin projected to (%d,%d,%v)", cx, cy, ok)
	}

	x, y, ok := r.Project(origin, vmath.V3FAdd(origin, vmath.Vec3F{Z: -10}))
	if !ok || x != cx || y >= cy {
		t.Errorf("-Z should be straight up: (%d,%d)", x, y)
	}

	x, y, ok = r.Project(origin, vmath.V3FAdd(origin, vmath.Vec3F{X: 10}))
	if !ok || x <= cx || y != cy {
		t.Errorf("+X should be right: (%d,%d)", x, y)
	}

	if _, _, ok := r.Project(origin, vmath.V3FAdd(origin, vmath.Vec3F{X: 1000})); ok {
		t.Error("far point reported inside the radar")
	}
}

func TestProjectAspect(t *testing.T) {
	r := NewRadar(0, 0, 121, 31)
	var origin vmath.Vec3F

	x, _, _ := r.Project(origin, vmath.Vec3F{X: 10})
	_, y, _ := r.Project(origin, vmath.Vec3F{Z: 10})
	dx, dy := x-60, y-15
	if dx != 2*dy {
		t.Errorf("horizontal offset %d, vertical %d, want 2:1", dx, dy)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{-math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{math.Pi / 4, '↖'},
		{-3 * math.Pi / 4, '↘'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.yaw); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}

func TestHUDLine(t *testing.T) {
	st := openingState()
	line := HUDLine(st, false)
	for _, want := range []string{"HP 100", "AMMO 30/120", "JET 3", "WAVE 1", "LEFT 5", "KILLS 0", "SCORE 0"} {
		if !strings.Contains(line, want) {
			t.Errorf("HUD %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "RELOADING") || strings.Contains(line, "MUTED") {
		t.Errorf("HUD %q shows inactive flags", line)
	}

	st.Reloading = true
	line = HUDLine(st, true)
	if !strings.Contains(line, "RELOADING") || !strings.Contains(line, "MUTED") {
		t.Errorf("HUD %q missing flags", line)
	}
}

func TestEnemyColor(t *testing.T) {
	_, g, _ := EnemyColor(100, 100).RGB()
	if g != 240 {
		t.Errorf("full health green = %d", g)
	}
	_, g, _ = EnemyColor(0, 100).RGB()
	if g != 40 {
		t.Errorf("zero health green = %d", g)
	}
	_, g, _ = EnemyColor(500, 100).RGB()
	if g != 240 {
		t.Errorf("overheal not clamped: %d", g)
	}
}

func TestDrawFrame(t *testing.T) {
	c := newFakeCanvas(80, 24)
	snap := game.Snapshot{
		State: openingState(),
		Enemies: []game.EnemyView{
			{ID: 1, Position: vmath.Vec3F{X: 5, Z: -5}, Health: 100, MaxHealth: 100},
			{ID: 2, Position: vmath.Vec3F{X: -10, Z: 3}, Health: 40, MaxHealth: 100},
			{ID: 3, Position: vmath.Vec3F{X: 2, Z: 2}, Health: 0, MaxHealth: 100},
			{ID: 4, Position: vmath.Vec3F{X: 500}, Health: 100, MaxHealth: 100},
		},
		Bullets: []game.BulletView{{ID: 5, Position: vmath.Vec3F{Z: -3}}},
	}

	NewRenderer(c).Draw(snap, false)

	if c.shown != 1 {
		t.Errorf("Show called %d times", c.shown)
	}
	if !strings.HasPrefix(c.row(0), "HP 100") {
		t.Errorf("HUD row = %q", c.row(0))
	}
	if got := c.count('E'); got != 2 {
		t.Errorf("drew %d enemies, want 2 live in range", got)
	}
	if got := c.count('•'); got != 1 {
		t.Errorf("drew %d bullets", got)
	}
	if got := c.count('↑'); got != 1 {
		t.Errorf("player glyph count %d", got)
	}
	if c.contains(BannerTitle) {
		t.Error("banner drawn while running")
	}
}

func TestDrawGameOverBanner(t *testing.T) {
	c := newFakeCanvas(80, 24)
	st := openingState()
	st.Health = 0
	st.GameOver = true
	st.Score = 300

	NewRenderer(c).Draw(game.Snapshot{State: st}, true)

	if !c.contains(BannerTitle) || !c.contains(BannerPrompt) {
		t.Error("game over banner missing")
	}
	if !c.contains("score 300") {
		t.Error("banner missing final score")
	}
}

func TestDrawTinyCanvas(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {10, 3}} {
		c := newFakeCanvas(size[0], size[1])
		st := openingState()
		st.GameOver = true
		NewRenderer(c).Draw(game.Snapshot{State: st}, false)
	}
}
