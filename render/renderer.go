package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/game"
)

const (
	BannerTitle  = "GAME OVER"
	BannerPrompt = "enter: restart   esc: quit"
)

// Renderer draws snapshots to a terminal canvas
type Renderer struct {
	canvas Canvas
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Draw renders one frame: HUD on the first row, radar below, banner on game over
func (r *Renderer) Draw(snap game.Snapshot, muted bool) {
	c := r.canvas
	width, height := c.Size()
	base := tcell.StyleDefault.Background(RgbBackground)

	c.Clear()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetContent(x, y, ' ', nil, base)
		}
	}

	if height > 0 {
		drawHUD(c, 0, width, snap.State, muted, base)
	}
	NewRadar(0, 1, width, height-1).Draw(c, snap, base)

	if snap.State.GameOver {
		r.drawBanner(width, height, snap)
	}
	c.Show()
}

func (r *Renderer) drawBanner(width, height int, snap game.Snapshot) {
	lines := []string{
		BannerTitle,
		fmt.Sprintf("score %d   wave %d   kills %d", snap.State.Score, snap.State.Wave, snap.State.EnemiesKilled),
		BannerPrompt,
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	left := (width - boxW) / 2
	top := (height - boxH) / 2
	bg := tcell.StyleDefault.Background(RgbBannerBg)

	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			if x >= 0 && x < width && y >= 0 && y < height {
				r.canvas.SetContent(x, y, ' ', nil, bg)
			}
		}
	}

	styles := []tcell.Style{
		bg.Foreground(RgbBannerText).Bold(true),
		bg.Foreground(RgbBannerText),
		bg.Foreground(RgbBannerPrompt),
	}
	for i, l := range lines {
		x := left + (boxW-len([]rune(l)))/2
		y := top + 1 + i
		if y >= 0 && y < height {
			drawText(r.canvas, x, y, width, l, styles[i])
		}
	}
}
