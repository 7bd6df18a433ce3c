package core

// Area represents a rectangular region in terminal cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions, frame included
}

// Inner returns the area inside a one-cell frame, never negative
func (a Area) Inner() Area {
	return Area{
		X:      a.X + 1,
		Y:      a.Y + 1,
		Width:  max(a.Width-2, 0),
		Height: max(a.Height-2, 0),
	}
}

// Contains reports whether cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}
