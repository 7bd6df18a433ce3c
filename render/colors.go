package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/constants"
)

// RGB color definitions
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbFrameFrozen  = tcell.NewRGBColor(255, 165, 0)   // Orange while resizing
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusMuted  = tcell.NewRGBColor(200, 50, 50)   // Red mute badge
	RgbRemovalFlash = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white flash
)

// backgroundColorful is RgbBackground in colorful space for blending
var backgroundColorful = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}

// BallColor converts a ball color to a tcell color, fading lower draw layers toward the background
// depth is 0 for the front-most ball and 1 for the back-most
func BallColor(c colorful.Color, depth float64) tcell.Color {
	depth = min(max(depth, 0), 1)
	if depth > 0 {
		c = c.BlendLab(backgroundColorful, depth*constants.DepthShade).Clamped()
	}
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
