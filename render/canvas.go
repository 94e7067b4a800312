package render

import "github.com/gdamore/tcell/v2"

// Canvas is the subset of tcell.Screen the renderer draws through
type Canvas interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// drawText writes s from (x, y), clipped to width
func drawText(c Canvas, x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		if x >= 0 {
			c.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
