package constants

// Viewport Box
const (
	// CellWidth is the width of one terminal cell in viewport pixels
	CellWidth = 8

	// CellHeight is the height of one terminal cell in viewport pixels
	CellHeight = 16

	// BoxMargin is the initial gap in cells between the viewport box and the terminal edge
	BoxMargin = 2

	// MinBoxWidth and MinBoxHeight bound box shrinking, in cells, frame included
	MinBoxWidth  = 4
	MinBoxHeight = 3

	// StatusBarHeight is reserved at the bottom of the terminal
	StatusBarHeight = 1

	// BoxStep is the number of cells a move or resize key shifts the box
	BoxStep = 1
)

// Glyphs
const (
	BallFillChar = '█'
	BallRimChar  = '○'
)

// DepthShade is the maximum blend toward the background for the deepest ball
const DepthShade = 0.35
