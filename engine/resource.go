package engine

import (
	"time"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
)

// Resource holds singleton simulation resources, accessed by systems through World.Resource
type Resource struct {
	Time     *TimeResource
	Sim      *SimulationConfig
	Tunables *Tunables
	Viewport *ViewportResource
	Tick     *TickResource
	Observer Observer
}

// TimeResource wraps time data for systems
// Updated by Game at the start of a tick
type TimeResource struct {
	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Seconds returns DeltaTime as fractional seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// SimulationConfig is the process-wide mutable simulation state
// Written only by ViewportSystem; read by motion and boundary systems within the same tick
type SimulationConfig struct {
	// MotionEnabled is false while the viewport is being resized; balls are clamped but static
	MotionEnabled bool

	// Gravity is the vertical acceleration, negative is down
	Gravity float64

	// PixelScale converts integrated displacement into pixels
	PixelScale float64

	// LastOrigin is the last observed viewport position, valid once OriginKnown is set
	LastOrigin  core.Origin
	OriginKnown bool
}

// NewSimulationConfig returns a config with motion enabled and default gravity and scale
func NewSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		MotionEnabled: true,
		Gravity:       constants.Gravity,
		PixelScale:    constants.PixelScale,
	}
}

// Tunables are contact and spawn parameters, read-only after load
type Tunables struct {
	BouncePixelScale float64
	Damping          float64
	RestVelocity     float64
	RollingFriction  float64
	StopVelocity     float64
	ImpulseCoeff     float64

	BallRadius   float64
	SpawnVelX    float64
	SpawnVelYMax float64
	SpawnExtent  float64
}

// DefaultTunables returns the tunables from the constants package
func DefaultTunables() *Tunables {
	return &Tunables{
		BouncePixelScale: constants.BouncePixelScale,
		Damping:          constants.Damping,
		RestVelocity:     constants.RestVelocity,
		RollingFriction:  constants.RollingFriction,
		StopVelocity:     constants.StopVelocity,
		ImpulseCoeff:     constants.ImpulseCoeff,
		BallRadius:       constants.BallRadius,
		SpawnVelX:        constants.SpawnVelX,
		SpawnVelYMax:     constants.SpawnVelYMax,
		SpawnExtent:      constants.SpawnExtent,
	}
}

// Extents are half the viewport dimensions, derived fresh each tick
type Extents struct {
	HalfWidth, HalfHeight float64
}

// ViewportResource holds the current tick's environment frame
type ViewportResource struct {
	Frame   Frame
	Extents Extents
}

// Update replaces the frame and recomputes extents
func (vr *ViewportResource) Update(f Frame) {
	vr.Frame = f
	vr.Extents = Extents{
		HalfWidth:  max(f.Width, 0) / 2,
		HalfHeight: max(f.Height, 0) / 2,
	}
}

// TickResource accumulates per-tick outputs produced by systems
type TickResource struct {
	Removed []core.Entity
	Spawned []core.Entity
	Bounces int
}

// Reset clears accumulated outputs, keeping capacity
func (tr *TickResource) Reset() {
	tr.Removed = tr.Removed[:0]
	tr.Spawned = tr.Spawned[:0]
	tr.Bounces = 0
}
