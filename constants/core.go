package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the physics tick interval and its fixed dt
	// Above ~9ms the post-bounce arc feeds enough height back that low bounces never reach rest speed
	GameUpdateInterval = 8 * time.Millisecond
)

// System Execution Priorities (lower runs first)
// Ordering is the simulation contract: events, integration, resolution, removal, spawn
const (
	PriorityViewport = 10
	PriorityMotion   = 20
	PriorityBoundary = 30
	PriorityCleanup  = 900 // Removes marked balls after resolution
	PrioritySpawn    = 950
)
