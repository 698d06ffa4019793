// Package intent is the closed set of verbs the editor core understands.
// Mapping raw key codes onto these belongs to the caller.
package intent

import "slices"

// Intent is either a Move, an Insert or an Edit.
type Intent interface {
	isIntent()
}

// Movement is a cursor movement verb.
type Movement int

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveHome
	MoveEnd
	MovePageUp
	MovePageDown
	MoveWordForward
	MoveWordBackward
)

// EditKind is a structural edit verb.
type EditKind int

const (
	EditNewLine EditKind = iota
	EditDelete
	EditBackspace
	EditDeleteWordBackward
	EditDeleteWordForward
)

// Move asks the cursor to move.
type Move struct {
	Dir Movement
}

// Insert types a single character at the cursor.
type Insert struct {
	Char rune
}

// Edit changes document structure at the cursor.
type Edit struct {
	Kind EditKind
}

func (Move) isIntent()   {}
func (Insert) isIntent() {}
func (Edit) isIntent()   {}

// An entry names an intent so key tables can be written as text.
type entry struct {
	Name   string
	Intent Intent
}

func entryFor(name string, i Intent) entry {
	return entry{Name: name, Intent: i}
}

// The full list of named intents. Insert carries a payload and is not named.
var entries = []entry{
	entryFor("up", Move{MoveUp}),
	entryFor("down", Move{MoveDown}),
	entryFor("left", Move{MoveLeft}),
	entryFor("right", Move{MoveRight}),
	entryFor("home", Move{MoveHome}),
	entryFor("end", Move{MoveEnd}),
	entryFor("page-up", Move{MovePageUp}),
	entryFor("page-down", Move{MovePageDown}),
	entryFor("word-forward", Move{MoveWordForward}),
	entryFor("word-backward", Move{MoveWordBackward}),
	entryFor("newline", Edit{EditNewLine}),
	entryFor("delete", Edit{EditDelete}),
	entryFor("backspace", Edit{EditBackspace}),
	entryFor("delete-word-backward", Edit{EditDeleteWordBackward}),
	entryFor("delete-word-forward", Edit{EditDeleteWordForward}),
}

// FromName returns the intent registered under name.
func FromName(name string) (Intent, bool) {
	for e := range slices.Values(entries) {
		if e.Name == name {
			return e.Intent, true
		}
	}
	return nil, false
}

// Name returns the registered name of i, or "" for unnamed intents.
func Name(i Intent) string {
	for e := range slices.Values(entries) {
		if e.Intent == i {
			return e.Name
		}
	}
	return ""
}

// Names lists every registered name in registration order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
