package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/constants"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	step := constants.BoxStep
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlW:  {Type: IntentQuit},
			tcell.KeyEnter:  {Type: IntentSpawn},
			tcell.KeyLeft:   {Type: IntentMove, DX: -step},
			tcell.KeyRight:  {Type: IntentMove, DX: step},
			tcell.KeyUp:     {Type: IntentMove, DY: -step},
			tcell.KeyDown:   {Type: IntentMove, DY: step},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleMute},
			' ': {Type: IntentWireframe},
			'b': {Type: IntentSpawn},
			'h': {Type: IntentMove, DX: -step},
			'l': {Type: IntentMove, DX: step},
			'k': {Type: IntentMove, DY: -step},
			'j': {Type: IntentMove, DY: step},
			'H': {Type: IntentResize, DX: -step},
			'L': {Type: IntentResize, DX: step},
			'K': {Type: IntentResize, DY: -step},
			'J': {Type: IntentResize, DY: step},
			'+': {Type: IntentResize, DX: step, DY: step},
			'=': {Type: IntentResize, DX: step, DY: step},
			'-': {Type: IntentResize, DX: -step, DY: -step},
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if in, ok := kt.Runes[ev.Rune()]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := kt.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}
