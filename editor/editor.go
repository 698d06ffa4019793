package editor

import (
	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/cursor"
	"github.com/hnimtadd/linedit/editor/document"
	"github.com/hnimtadd/linedit/editor/intent"
	"github.com/hnimtadd/linedit/editor/size"
	"github.com/hnimtadd/linedit/editor/viewport"
	"github.com/hnimtadd/linedit/logger"
)

type (
	Options struct {
		// The viewport size in cells. Non-positive dimensions count as one.
		Size size.Size

		Logger logger.Logger
	}

	// Editor is the editing state of one session: the document, where the
	// cursor is in it, and which part of it the viewport shows. It is not
	// safe for concurrent use; a single session owns it.
	Editor struct {
		doc *document.Document

		// The cursor in document space. Always valid for doc.
		cursor coordinate.Position

		// The top-left document position in view.
		offset viewport.Offset

		size size.Size

		logger logger.Logger
	}
)

func New(doc *document.Document, opts Options) *Editor {
	if doc == nil {
		doc = document.New()
	}
	return &Editor{
		doc:    doc,
		size:   opts.Size.Normalize(),
		logger: logger.OrNop(opts.Logger),
	}
}

func (e *Editor) Document() *document.Document {
	return e.doc
}

// SetDocument swaps the document and moves the cursor and viewport home.
func (e *Editor) SetDocument(doc *document.Document) {
	if doc == nil {
		doc = document.New()
	}
	e.doc = doc
	e.cursor = coordinate.Position{}
	e.offset = viewport.Offset{}
}

func (e *Editor) Cursor() coordinate.Position {
	return e.cursor
}

func (e *Editor) Offset() viewport.Offset {
	return e.offset
}

func (e *Editor) Size() size.Size {
	return e.size
}

// SetCursor places the cursor at pos, clamped to the document.
func (e *Editor) SetCursor(pos coordinate.Position) {
	e.cursor = cursor.Clamp(pos, e.doc)
	e.scroll()
}

// Resize changes the viewport and scrolls so the cursor stays in view.
func (e *Editor) Resize(width, height int) {
	e.size = size.New(width, height).Normalize()
	e.scroll()
}

func (e *Editor) Move(m intent.Movement) {
	e.cursor = cursor.Move(m, e.cursor, e.doc, e.size)
	e.scroll()
}

// Insert types c at the cursor and moves past it. A combining mark that
// joins the cluster before it leaves the cursor where it is.
func (e *Editor) Insert(c rune) {
	if c == '\n' {
		e.NewLine()
		return
	}
	before := e.doc.RowLen(e.cursor.Y)
	e.doc.Insert(e.cursor, c)
	e.cursor.X += e.doc.RowLen(e.cursor.Y) - before
	e.cursor = cursor.Clamp(e.cursor, e.doc)
	e.scroll()
}

// NewLine splits the row at the cursor and moves to the start of the new
// row.
func (e *Editor) NewLine() {
	e.doc.NewLine(e.cursor)
	e.cursor = cursor.Clamp(coordinate.NewPoint(0, e.cursor.Y+1), e.doc)
	e.scroll()
}

// Delete removes the cluster under the cursor, joining the next row when
// the cursor is at the end of its row.
func (e *Editor) Delete() {
	if e.atDocumentEnd() {
		e.logger.Debug("delete at document end ignored", "x", e.cursor.X, "y", e.cursor.Y)
		return
	}
	e.doc.Delete(e.cursor)
	e.scroll()
}

// Backspace removes the cluster before the cursor, joining with the
// previous row from column zero.
func (e *Editor) Backspace() {
	if e.cursor.X == 0 && e.cursor.Y == 0 {
		e.logger.Debug("backspace at document start ignored")
		return
	}
	e.cursor = cursor.Move(intent.MoveLeft, e.cursor, e.doc, e.size)
	e.doc.Delete(e.cursor)
	e.scroll()
}

// DeleteWordBackward removes everything a backward word jump would pass
// over and returns how many single steps that jump took, or 0 when nothing
// was removed.
func (e *Editor) DeleteWordBackward() int {
	pos, steps := cursor.WordBackward(e.cursor, e.doc)
	if steps == 0 || !e.doc.DeleteRange(pos, e.cursor) {
		e.logger.Debug("delete word backward ignored", "x", e.cursor.X, "y", e.cursor.Y)
		return 0
	}
	e.cursor = cursor.Clamp(pos, e.doc)
	e.scroll()
	return steps
}

// DeleteWordForward removes everything a forward word jump would pass over
// and returns how many single steps that jump took, or 0 when nothing was
// removed.
func (e *Editor) DeleteWordForward() int {
	pos, steps := cursor.WordForward(e.cursor, e.doc)
	if steps == 0 || !e.doc.DeleteRange(e.cursor, pos) {
		e.logger.Debug("delete word forward ignored", "x", e.cursor.X, "y", e.cursor.Y)
		return 0
	}
	e.scroll()
	return steps
}

// Frame renders the visible window.
func (e *Editor) Frame() viewport.Frame {
	return viewport.Render(e.doc, e.cursor, e.offset, e.size)
}

// atDocumentEnd reports whether there is nothing under or after the cursor
// for Delete to remove.
func (e *Editor) atDocumentEnd() bool {
	return e.cursor.Y >= e.doc.Len() ||
		(e.cursor.Y == e.doc.Len()-1 && e.cursor.X >= e.doc.RowLen(e.cursor.Y))
}

func (e *Editor) scroll() {
	next := viewport.Scroll(e.offset, e.cursor, e.size)
	if next != e.offset {
		e.logger.Debug("viewport scrolled",
			"from_x", e.offset.X, "from_y", e.offset.Y,
			"to_x", next.X, "to_y", next.Y)
	}
	e.offset = next
}
