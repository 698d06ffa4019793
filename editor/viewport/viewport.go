// Package viewport keeps the cursor visible inside a fixed-size window onto
// the document and renders the visible slice.
package viewport

import (
	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/size"
)

// Offset is the document position shown in the top-left cell: X is a
// grapheme index, Y a row index.
type Offset = coordinate.Position

// Scroll returns the offset that keeps pos inside
// [offset.X, offset.X+Width) x [offset.Y, offset.Y+Height). Each axis moves
// only when pos has left the window, and then by the least amount that
// brings it back.
func Scroll(offset Offset, pos coordinate.Position, sz size.Size) Offset {
	sz = sz.Normalize()
	offset.Y = follow(offset.Y, pos.Y, sz.Height)
	offset.X = follow(offset.X, pos.X, sz.Width)
	return offset
}

func follow(offset, at, span int) int {
	if at < offset {
		return max(at, 0)
	}
	if at >= offset+span {
		return at - span + 1
	}
	return offset
}
