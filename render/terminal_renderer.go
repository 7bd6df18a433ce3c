package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

// removalFlashFrames is how many frames a despawned ball leaves a flash behind
const removalFlashFrames = 12

// UIState is the input-owned display state the renderer reads each frame
type UIState struct {
	Wireframe bool
	Muted     bool
}

type flash struct {
	x, y   float64
	frames int
}

// TerminalRenderer draws the viewport box, balls, and status bar to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen

	// lastSeen holds positions from the previous frame so removals can flash where the ball was
	lastSeen map[core.Entity][2]float64
	flashes  []flash
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		lastSeen: make(map[core.Entity][2]float64),
	}
}

// RenderFrame renders the entire frame from one tick's result
func (r *TerminalRenderer) RenderFrame(res engine.TickResult, box core.Area, ui UIState) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	proj := NewProjection(box)

	r.trackRemovals(res.Removed)
	r.drawFrame(box, res.MotionEnabled, defaultStyle)
	r.drawBalls(proj, res.Balls, ui.Wireframe, defaultStyle)
	r.drawFlashes(proj, defaultStyle)
	r.drawStatusBar(res, ui)

	clear(r.lastSeen)
	for _, b := range res.Balls {
		r.lastSeen[b.Entity] = [2]float64{b.X, b.Y}
	}

	r.screen.Show()
}

// trackRemovals starts a flash at the last known position of each removed ball
func (r *TerminalRenderer) trackRemovals(removed []core.Entity) {
	for _, e := range removed {
		if pos, ok := r.lastSeen[e]; ok {
			r.flashes = append(r.flashes, flash{x: pos[0], y: pos[1], frames: removalFlashFrames})
		}
	}
}

// drawFrame draws the box border, orange while motion is suspended
func (r *TerminalRenderer) drawFrame(box core.Area, motion bool, defaultStyle tcell.Style) {
	if box.Width < 2 || box.Height < 2 {
		return
	}
	color := RgbFrame
	if !motion {
		color = RgbFrameFrozen
	}
	style := defaultStyle.Foreground(color)

	x0, y0 := box.X, box.Y
	x1, y1 := box.X+box.Width-1, box.Y+box.Height-1

	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// drawBalls draws balls back to front; balls arrive sorted by Z
func (r *TerminalRenderer) drawBalls(proj Projection, balls []engine.BallSnapshot, wireframe bool, defaultStyle tcell.Style) {
	last := len(balls) - 1
	for i, b := range balls {
		depth := 0.0
		if last > 0 {
			depth = float64(last-i) / float64(last)
		}
		style := defaultStyle.Foreground(BallColor(b.Color, depth))

		proj.DiskCells(b.X, b.Y, b.Radius, func(col, row int, rim bool) {
			switch {
			case !wireframe:
				r.screen.SetContent(col, row, constants.BallFillChar, nil, style)
			case rim:
				r.screen.SetContent(col, row, constants.BallRimChar, nil, style)
			}
		})
	}
}

func (r *TerminalRenderer) drawFlashes(proj Projection, defaultStyle tcell.Style) {
	kept := r.flashes[:0]
	for _, f := range r.flashes {
		col, row := proj.ToCell(f.x, f.y)
		if proj.Inner.Contains(col, row) {
			glyph := '*'
			if f.frames < removalFlashFrames/2 {
				glyph = '·'
			}
			r.screen.SetContent(col, row, glyph, nil, defaultStyle.Foreground(RgbRemovalFlash))
		}
		f.frames--
		if f.frames > 0 {
			kept = append(kept, f)
		}
	}
	r.flashes = kept
}

// drawStatusBar draws counts, state, and key help on the last terminal row
func (r *TerminalRenderer) drawStatusBar(res engine.TickResult, ui UIState) {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1

	state := "running"
	if !res.MotionEnabled {
		state = "frozen"
	}
	text := fmt.Sprintf(" balls %d | %s | enter spawn  arrows move  +/- resize  space wireframe  m mute  esc quit",
		len(res.Balls), state)

	badge := ""
	if ui.Muted {
		badge = " MUTED "
	}

	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	avail := width - runewidth.StringWidth(badge)
	text = runewidth.FillRight(runewidth.Truncate(text, max(avail, 0), "…"), max(avail, 0))

	x := r.drawText(0, y, text, style)
	r.drawText(x, y, badge, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusMuted))
}

// drawText writes s from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
