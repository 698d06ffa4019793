package linedit

import (
	"github.com/hnimtadd/linedit/editor"
	"github.com/hnimtadd/linedit/editor/intent"
	"github.com/hnimtadd/linedit/logger"
)

// IntentHandler routes decoded intents to the editor. It holds no state of
// its own beyond the editor it drives and lives as long as the session.
type IntentHandler struct {
	editor *editor.Editor
	logger logger.Logger
}

// Handle dispatches i to the matching handler method.
func (h *IntentHandler) Handle(i intent.Intent) {
	switch v := i.(type) {
	case intent.Move:
		h.Move(v.Dir)
	case intent.Insert:
		h.Insert(v.Char)
	case intent.Edit:
		h.Edit(v.Kind)
	default:
		h.logger.Warn("unknown intent ignored", "intent", i)
	}
}

// Move implements the movement verbs.
func (h *IntentHandler) Move(m intent.Movement) {
	h.editor.Move(m)
	pos := h.editor.Cursor()
	h.logger.Debug("cursor moved",
		"intent", intent.Name(intent.Move{Dir: m}), "x", pos.X, "y", pos.Y)
}

// Insert implements typing a character.
func (h *IntentHandler) Insert(c rune) {
	h.editor.Insert(c)
}

// Edit implements the structural edit verbs.
func (h *IntentHandler) Edit(kind intent.EditKind) {
	switch kind {
	case intent.EditNewLine:
		h.editor.NewLine()
	case intent.EditDelete:
		h.editor.Delete()
	case intent.EditBackspace:
		h.editor.Backspace()
	case intent.EditDeleteWordBackward:
		n := h.editor.DeleteWordBackward()
		h.logger.Debug("word deleted", "direction", "backward", "steps", n)
	case intent.EditDeleteWordForward:
		n := h.editor.DeleteWordForward()
		h.logger.Debug("word deleted", "direction", "forward", "steps", n)
	default:
		h.logger.Warn("unknown edit ignored", "kind", int(kind))
	}
}
