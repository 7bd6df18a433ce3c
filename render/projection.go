package render

import (
	"math"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
)

// Projection maps viewport pixels (centre origin, Y up) onto terminal cells inside a box interior
type Projection struct {
	Inner                 core.Area
	HalfWidth, HalfHeight float64
}

// NewProjection builds the projection for a box; the box interior defines the viewport
func NewProjection(box core.Area) Projection {
	in := box.Inner()
	return Projection{
		Inner:      in,
		HalfWidth:  float64(in.Width*constants.CellWidth) / 2,
		HalfHeight: float64(in.Height*constants.CellHeight) / 2,
	}
}

// ToCell returns the terminal cell containing pixel (x, y)
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = p.Inner.X + int(math.Floor((x+p.HalfWidth)/constants.CellWidth))
	row = p.Inner.Y + int(math.Floor((p.HalfHeight-y)/constants.CellHeight))
	return col, row
}

// CellCentre returns the pixel coordinates of a cell's centre
func (p Projection) CellCentre(col, row int) (x, y float64) {
	x = (float64(col-p.Inner.X)+0.5)*constants.CellWidth - p.HalfWidth
	y = p.HalfHeight - (float64(row-p.Inner.Y)+0.5)*constants.CellHeight
	return x, y
}

// DiskCells calls fn for each interior cell covered by a disk, with rim true on its outer band
// A disk smaller than a cell still covers the cell holding its centre
func (p Projection) DiskCells(x, y, radius float64, fn func(col, row int, rim bool)) {
	c0, r0 := p.ToCell(x-radius, y+radius)
	c1, r1 := p.ToCell(x+radius, y-radius)
	rimInner := max(radius-constants.CellWidth, 0)
	covered := 0

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !p.Inner.Contains(col, row) {
				continue
			}
			cx, cy := p.CellCentre(col, row)
			d := math.Hypot(cx-x, cy-y)
			if d > radius {
				continue
			}
			fn(col, row, d > rimInner)
			covered++
		}
	}

	if covered == 0 {
		col, row := p.ToCell(x, y)
		if p.Inner.Contains(col, row) {
			fn(col, row, true)
		}
	}
}
