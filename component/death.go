package component

// DeathComponent tags a ball for removal by CullSystem after the resolve pass
type DeathComponent struct{}
