package viewport

import (
	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/row"
	"github.com/hnimtadd/linedit/editor/size"
	"github.com/mitchellh/hashstructure/v2"
)

// Source is what a frame is rendered from.
type Source interface {
	Len() int
	Row(index int) (*row.Row, bool)
	IsEmpty() bool
	IsDirty() bool
	Filename() string
}

// Frame is one renderer-ready snapshot of the visible window.
type Frame struct {
	Offset Offset
	Size   size.Size

	// Rendered text of the document rows in view, top to bottom. Rows past
	// the end of the document are not included.
	Lines []string

	// Cursor is the terminal cell of the cursor relative to the top-left of
	// the viewport. X counts display cells, so a wide cluster before the
	// cursor shifts it by two.
	Cursor coordinate.Point[int]

	// Empty is set for a document with no rows at all; renderers show it as
	// a single implicit empty line.
	Empty    bool
	Dirty    bool
	Filename string
}

// Render builds the frame for doc viewed at offset with the cursor at pos.
func Render(doc Source, pos coordinate.Position, offset Offset, sz size.Size) Frame {
	sz = sz.Normalize()
	f := Frame{
		Offset:   offset,
		Size:     sz,
		Lines:    make([]string, 0, sz.Height),
		Empty:    doc.IsEmpty(),
		Dirty:    doc.IsDirty(),
		Filename: doc.Filename(),
	}
	for y := offset.Y; y < offset.Y+sz.Height; y++ {
		r, ok := doc.Row(y)
		if !ok {
			break
		}
		f.Lines = append(f.Lines, r.Render(offset.X, offset.X+sz.Width))
	}

	f.Cursor.Y = pos.Y - offset.Y
	if r, ok := doc.Row(pos.Y); ok {
		f.Cursor.X = r.Width(offset.X, pos.X)
	} else {
		f.Cursor.X = max(pos.X-offset.X, 0)
	}
	return f
}

// Hash identifies the frame content. Two frames with the same hash draw the
// same screen.
func (f Frame) Hash() (uint64, error) {
	return hashstructure.Hash(f, hashstructure.FormatV2, nil)
}
