package input

import (
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
)

// Layout tracks the terminal size and the viewport box placed inside it
// The box stands in for a desktop window: moving it is a window move, resizing it a window resize
type Layout struct {
	screenW, screenH int
	box              core.Area
}

// NewLayout places the box inside the screen with the default margin
func NewLayout(screenW, screenH int) *Layout {
	l := &Layout{screenW: screenW, screenH: screenH}
	l.box = core.Area{
		X:      constants.BoxMargin,
		Y:      constants.BoxMargin,
		Width:  screenW - 2*constants.BoxMargin,
		Height: l.usableHeight() - 2*constants.BoxMargin,
	}
	l.clamp()
	return l
}

// Box returns the viewport box, frame included
func (l *Layout) Box() core.Area {
	return l.box
}

// Move shifts the box, kept on screen; false if it did not move
func (l *Layout) Move(dx, dy int) bool {
	prev := l.box
	l.box.X += dx
	l.box.Y += dy
	l.clamp()
	return l.box != prev
}

// Grow changes the box size, kept within bounds; false if size is unchanged
func (l *Layout) Grow(dw, dh int) bool {
	prev := l.box
	l.box.Width += dw
	l.box.Height += dh
	l.clamp()
	return l.box.Width != prev.Width || l.box.Height != prev.Height
}

// SetScreen records a terminal resize and refits the box
func (l *Layout) SetScreen(w, h int) {
	l.screenW, l.screenH = w, h
	l.clamp()
}

// PixelSize returns the interior of the box in viewport pixels
func (l *Layout) PixelSize() (w, h float64) {
	in := l.box.Inner()
	return float64(in.Width * constants.CellWidth), float64(in.Height * constants.CellHeight)
}

// PixelOrigin returns the box's top-left corner in pixels, the analogue of a window position
func (l *Layout) PixelOrigin() core.Origin {
	return core.Origin{
		X: l.box.X * constants.CellWidth,
		Y: l.box.Y * constants.CellHeight,
	}
}

func (l *Layout) usableHeight() int {
	return max(l.screenH-constants.StatusBarHeight, 0)
}

// clamp enforces minimum size, then screen bounds on size and position
func (l *Layout) clamp() {
	maxW := max(l.screenW, constants.MinBoxWidth)
	maxH := max(l.usableHeight(), constants.MinBoxHeight)

	l.box.Width = min(max(l.box.Width, constants.MinBoxWidth), maxW)
	l.box.Height = min(max(l.box.Height, constants.MinBoxHeight), maxH)

	l.box.X = min(max(l.box.X, 0), max(l.screenW-l.box.Width, 0))
	l.box.Y = min(max(l.box.Y, 0), max(l.usableHeight()-l.box.Height, 0))
}
