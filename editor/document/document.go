package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/row"
	"github.com/hnimtadd/linedit/editor/utils"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrIO wraps every failure to read or write the backing file.
	ErrIO = errors.New("document: i/o failure")

	// ErrNoFilename is reported by callers that require a filename before
	// saving. Document.Save itself treats a missing filename as a no-op.
	ErrNoFilename = errors.New("document: no filename")
)

// Document is the ordered list of rows being edited.
//
// Every position-addressed mutator accepts y == Len() as "one past the last
// row" and appends there; anything further out is a silent no-op.
type Document struct {
	rows     []*row.Row
	filename string
	dirty    bool

	// Set when the file was loaded with a UTF-8 byte order mark. The mark
	// is kept out of row 0 and written back on Save.
	bom bool
}

// New returns an empty document with no filename.
func New() *Document {
	return &Document{}
}

// FromString builds an unnamed document from text, one row per line.
func FromString(text string) *Document {
	return &Document{rows: splitRows(text)}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrInvalidUTF8 is wrapped with ErrIO when a file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// Open reads path and builds one row per line. Line terminators (\n, and a
// \r preceding it) are dropped; a trailing terminator does not produce an
// extra empty row. A UTF-8 byte order mark is held aside and restored by
// Save. Content that is not valid UTF-8 is refused rather than rewritten.
func Open(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrIO, path, ErrInvalidUTF8)
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrIO, path, err)
	}
	return &Document{
		rows:     splitRows(string(decoded)),
		filename: path,
		bom:      bytes.HasPrefix(raw, utf8BOM),
	}, nil
}

func splitRows(text string) []*row.Row {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([]*row.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, row.New(strings.TrimSuffix(line, "\r")))
	}
	return rows
}

// Insert puts c at pos. On the row past the end it appends a new row
// holding just c.
func (d *Document) Insert(pos coordinate.Position, c rune) {
	if pos.Y < 0 || pos.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if pos.Y == len(d.rows) {
		r := row.New("")
		r.Insert(0, c)
		d.rows = append(d.rows, r)
		return
	}
	d.rows[pos.Y].Insert(pos.X, c)
}

// Delete removes the cluster at pos. At the end of a row that has a
// successor the successor is merged into it.
func (d *Document) Delete(pos coordinate.Position) {
	if pos.Y < 0 || pos.Y >= len(d.rows) {
		return
	}
	current := d.rows[pos.Y]
	if pos.X == current.Len() && pos.Y+1 < len(d.rows) {
		var next *row.Row
		d.rows, next = utils.RemoveAt(d.rows, pos.Y+1)
		current.Append(next)
		d.dirty = true
		return
	}
	if pos.X < 0 || pos.X >= current.Len() {
		return
	}
	current.Delete(pos.X)
	d.dirty = true
}

// DeleteRange removes everything between from and to (from must not come
// after to), joining the rows at either end. A range ending on the row past
// the end stops at the end of the last row. It reports whether anything was
// removed.
func (d *Document) DeleteRange(from, to coordinate.Position) bool {
	if from.Y < 0 || from.Y >= len(d.rows) {
		return false
	}
	if to.Y >= len(d.rows) {
		to.Y = len(d.rows) - 1
		to.X = d.rows[to.Y].Len()
	}
	if to.Y < from.Y || (to.Y == from.Y && to.X <= from.X) {
		return false
	}

	head := d.rows[from.Y]
	if from.Y == to.Y {
		before := head.String()
		head.DeleteRange(from.X, to.X)
		if head.String() == before {
			return false
		}
		d.dirty = true
		return true
	}

	tail := d.rows[to.Y]
	head.DeleteRange(from.X, head.Len())
	tail.DeleteRange(0, to.X)
	head.Append(tail)
	d.rows = append(d.rows[:from.Y+1], d.rows[to.Y+1:]...)
	d.dirty = true
	return true
}

// NewLine splits the row at pos, keeping the head in place and inserting
// the tail right after it. On the row past the end it appends an empty row.
func (d *Document) NewLine(pos coordinate.Position) {
	if pos.Y < 0 || pos.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if pos.Y == len(d.rows) {
		d.rows = append(d.rows, row.New(""))
		return
	}
	tail := d.rows[pos.Y].Split(pos.X)
	d.rows = utils.InsertAt(d.rows, pos.Y+1, tail)
}

// Save writes every row joined by a single \n, without a trailing newline,
// over the associated file. The dirty flag clears only when the write and
// close both succeed. Without a filename Save does nothing.
func (d *Document) Save() (err error) {
	if d.filename == "" {
		return nil
	}
	file, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, d.filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, d.filename, cerr)
		}
		if err == nil {
			d.dirty = false
		}
	}()

	w := bufio.NewWriter(file)
	if d.bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrIO, d.filename, err)
		}
	}
	for i, r := range d.rows {
		if i > 0 {
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("%w: write %s: %w", ErrIO, d.filename, err)
			}
		}
		if _, err := w.Write(r.Bytes()); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrIO, d.filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, d.filename, err)
	}
	return nil
}

// Row returns the row at index, or false when index is out of range.
func (d *Document) Row(index int) (*row.Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// RowLen returns the cluster count of row index, zero for rows that do not
// exist (including the insertion row past the end).
func (d *Document) RowLen(index int) int {
	if r, ok := d.Row(index); ok {
		return r.Len()
	}
	return 0
}

func (d *Document) Len() int {
	return len(d.rows)
}

func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

func (d *Document) IsDirty() bool {
	return d.dirty
}

func (d *Document) Filename() string {
	return d.filename
}

func (d *Document) SetFilename(name string) {
	d.filename = name
}

// String joins all rows with \n, exactly as Save writes them.
func (d *Document) String() string {
	var sb strings.Builder
	for i, r := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
