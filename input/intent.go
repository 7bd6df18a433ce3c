package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+C, Ctrl+W
	IntentToggleMute // m
	IntentWireframe  // Space, toggles rim-only ball drawing

	// Simulation intents
	IntentSpawn // Enter, b

	// Viewport box intents
	IntentMove   // arrows, h j k l
	IntentResize // + - H J K L
)

// Intent is a resolved key action with an optional cell delta
type Intent struct {
	Type   IntentType
	DX, DY int
}
