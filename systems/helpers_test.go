package systems

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

const (
	frameDT = constants.GameUpdateInterval
	eps     = 1e-9
)

// scriptEnv replays frames in order, repeating the last one once exhausted
type scriptEnv struct {
	frames []engine.Frame
	pos    int
}

func (e *scriptEnv) Collect() engine.Frame {
	f := e.frames[min(e.pos, len(e.frames)-1)]
	e.pos++
	return f
}

// still is a quiet frame for a viewport of the given pixel size
func still(w, h float64) engine.Frame {
	return engine.Frame{Width: w, Height: h}
}

func newTestGame(observer engine.Observer) *engine.Game {
	return NewGame(nil, nil, observer, rand.New(rand.NewPCG(1, 2)))
}

func addBall(g *engine.Game, k core.Kinetic) core.Entity {
	e := g.World.CreateEntity()
	g.World.Balls.Add(e, component.BallComponent{Kinetic: k, Radius: 15})
	return e
}

func ball(g *engine.Game, e core.Entity) component.BallComponent {
	b, _ := g.World.Balls.Get(e)
	return b
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}
