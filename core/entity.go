package core

// Entity is the stable identity of a simulated ball
// IDs are issued monotonically and never reused after removal
type Entity uint64

// Origin is an integer viewport position as reported by the windowing layer
type Origin struct {
	X, Y int
}

// Sub returns the per-axis delta o - prev
func (o Origin) Sub(prev Origin) (dx, dy int) {
	return o.X - prev.X, o.Y - prev.Y
}
