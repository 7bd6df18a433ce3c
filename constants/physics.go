package constants

// Integration
const (
	// Gravity is the constant vertical acceleration in physical units per second squared
	Gravity = -9.8

	// PixelScale converts integrated vertical displacement into viewport pixels while falling
	PixelScale = 100.0

	// BouncePixelScale converts the post-bounce displacement into pixels on the tick of floor contact
	// Kept independent of PixelScale
	BouncePixelScale = 150.0
)

// Contact Response
const (
	// Damping is the restitution factor applied on floor and wall reflection
	Damping = 0.8

	// RestVelocity is the |vy| at or below which a ball touching the floor is pinned to it
	RestVelocity = 0.5

	// RollingFriction scales vx every tick a ball rests on the floor
	RollingFriction = 0.995

	// StopVelocity is the |vx| below which a resting ball is considered settled and removed
	StopVelocity = 0.005
)

// Viewport Reactivity
const (
	// ImpulseCoeff converts viewport displacement in pixels into ball velocity
	ImpulseCoeff = 0.05
)

// Spawn
const (
	// BallRadius is the radius of newly spawned balls in pixels
	BallRadius = 15.0

	// SpawnVelX bounds the uniform vx sample to [-SpawnVelX, SpawnVelX]
	SpawnVelX = 10.0

	// SpawnVelYMax bounds the uniform vy sample to [0, SpawnVelYMax]
	SpawnVelYMax = 15.0

	// SpawnExtent bounds the uniform x and y samples to [-SpawnExtent, SpawnExtent]
	SpawnExtent = 200.0
)
