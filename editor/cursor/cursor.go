// Package cursor moves a document position in response to movement intents.
//
// Every function here returns a valid position for the document it was
// given: 0 <= Y <= doc.Len() and 0 <= X <= length of row Y, where the row
// one past the end has length zero. Inputs are clamped, never rejected.
package cursor

import (
	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/grapheme"
	"github.com/hnimtadd/linedit/editor/intent"
	"github.com/hnimtadd/linedit/editor/row"
	"github.com/hnimtadd/linedit/editor/size"
	"github.com/hnimtadd/linedit/editor/utils"
)

// Document is the read-only view of a document the cursor navigates.
type Document interface {
	Len() int
	Row(index int) (*row.Row, bool)
}

type Position = coordinate.Position

func rowLen(doc Document, y int) int {
	if r, ok := doc.Row(y); ok {
		return r.Len()
	}
	return 0
}

// Clamp pulls pos back inside the document.
func Clamp(pos Position, doc Document) Position {
	pos.Y = utils.Clamp(pos.Y, 0, doc.Len())
	pos.X = utils.Clamp(pos.X, 0, rowLen(doc, pos.Y))
	return pos
}

// Move applies m to pos. The viewport height sizes page jumps.
func Move(m intent.Movement, pos Position, doc Document, sz size.Size) Position {
	pos = Clamp(pos, doc)
	sz = sz.Normalize()

	switch m {
	case intent.MoveUp:
		pos.Y = utils.SaturatingSub(pos.Y, 1)
	case intent.MoveDown:
		pos.Y = utils.SaturatingAdd(pos.Y, 1, doc.Len())
	case intent.MoveLeft:
		pos = left(pos, doc)
	case intent.MoveRight:
		pos = right(pos, doc)
	case intent.MoveHome:
		pos.X = 0
	case intent.MoveEnd:
		pos.X = rowLen(doc, pos.Y)
	case intent.MovePageUp:
		pos.Y = utils.SaturatingSub(pos.Y, sz.Height)
	case intent.MovePageDown:
		pos.Y = utils.SaturatingAdd(pos.Y, sz.Height, doc.Len())
	case intent.MoveWordForward:
		pos, _ = WordForward(pos, doc)
	case intent.MoveWordBackward:
		pos, _ = WordBackward(pos, doc)
	}

	// Moving onto a shorter row must not leave X past its end.
	pos.X = min(pos.X, rowLen(doc, pos.Y))
	return pos
}

func left(pos Position, doc Document) Position {
	if pos.X > 0 {
		pos.X--
	} else if pos.Y > 0 {
		pos.Y--
		pos.X = rowLen(doc, pos.Y)
	}
	return pos
}

func right(pos Position, doc Document) Position {
	if pos.X < rowLen(doc, pos.Y) {
		pos.X++
	} else if pos.Y < doc.Len() {
		pos.Y++
		pos.X = 0
	}
	return pos
}

// wordMask reports, per cluster of row y, whether it is a word character.
func wordMask(doc Document, y int) []bool {
	r, ok := doc.Row(y)
	if !ok {
		return nil
	}
	clusters := grapheme.Split(r.String())
	mask := make([]bool, len(clusters))
	for i, c := range clusters {
		mask[i] = grapheme.IsAlphanumeric(c)
	}
	return mask
}

// WordForward steps right to the end of the next run of letters and digits
// on the current row. At the end of a row it takes a single step onto the
// next row. It also returns how many single Right steps the jump covers.
func WordForward(pos Position, doc Document) (Position, int) {
	pos = Clamp(pos, doc)
	word := wordMask(doc, pos.Y)
	if pos.X >= len(word) {
		next := right(pos, doc)
		if next == pos {
			return pos, 0
		}
		return next, 1
	}

	steps := 0
	for pos.X < len(word) && !word[pos.X] {
		pos.X++
		steps++
	}
	for pos.X < len(word) && word[pos.X] {
		pos.X++
		steps++
	}
	return pos, steps
}

// WordBackward is the mirror of WordForward: it steps left to the start of
// the previous run of letters and digits, or one step onto the previous
// row from column zero.
func WordBackward(pos Position, doc Document) (Position, int) {
	pos = Clamp(pos, doc)
	if pos.X == 0 {
		prev := left(pos, doc)
		if prev == pos {
			return pos, 0
		}
		return prev, 1
	}

	word := wordMask(doc, pos.Y)
	steps := 0
	for pos.X > 0 && !word[pos.X-1] {
		pos.X--
		steps++
	}
	for pos.X > 0 && word[pos.X-1] {
		pos.X--
		steps++
	}
	return pos, steps
}
