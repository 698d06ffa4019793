package row

import (
	"strings"

	"github.com/hnimtadd/linedit/editor/grapheme"
)

// Row is one line of the document. Every index a Row accepts is a grapheme
// cluster index, never a byte or rune offset.
type Row struct {
	text string

	// Cached grapheme cluster count of text. Recomputed after every
	// mutation: inserting a combining mark can merge with its neighbour, so
	// the count is not always the old count plus one.
	len int
}

// New builds a row from a line of text without its terminator.
func New(text string) *Row {
	return &Row{text: text, len: grapheme.Count(text)}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return r.len
}

func (r *Row) IsEmpty() bool {
	return r.len == 0
}

func (r *Row) String() string {
	return r.text
}

// Bytes returns the raw stored text, used when persisting.
func (r *Row) Bytes() []byte {
	return []byte(r.text)
}

// Render returns the clusters in [start, end) for display. end is clamped to
// the row length and start to end. Tabs render as a single space.
func (r *Row) Render(start, end int) string {
	end = min(end, r.len)
	start = min(max(start, 0), end)
	if start == end {
		return ""
	}
	return grapheme.ExpandTabs(grapheme.Slice(r.text, start, end))
}

// Width returns the number of terminal cells the clusters in [start, end)
// occupy once rendered.
func (r *Row) Width(start, end int) int {
	end = min(end, r.len)
	start = min(max(start, 0), end)
	width := 0
	for _, cluster := range grapheme.Split(grapheme.Slice(r.text, start, end)) {
		width += grapheme.Width(cluster)
	}
	return width
}

// Grapheme returns the cluster at index.
func (r *Row) Grapheme(index int) (string, bool) {
	if index < 0 || index >= r.len {
		return "", false
	}
	return grapheme.At(r.text, index)
}

// IsAlphanumeric reports whether the cluster at index is a word character.
// Out of range indices are not.
func (r *Row) IsAlphanumeric(index int) bool {
	cluster, ok := r.Grapheme(index)
	return ok && grapheme.IsAlphanumeric(cluster)
}

// Insert puts c immediately before the cluster at index. Indices at or past
// the end append.
func (r *Row) Insert(index int, c rune) {
	if index >= r.len {
		r.text += string(c)
	} else {
		offset := grapheme.ByteOffset(r.text, max(index, 0))
		var sb strings.Builder
		sb.Grow(len(r.text) + 4)
		sb.WriteString(r.text[:offset])
		sb.WriteRune(c)
		sb.WriteString(r.text[offset:])
		r.text = sb.String()
	}
	r.len = grapheme.Count(r.text)
}

// Delete removes the cluster at index. It is a no-op past the end.
func (r *Row) Delete(index int) {
	if index < 0 || index >= r.len {
		return
	}
	from := grapheme.ByteOffset(r.text, index)
	to := grapheme.ByteOffset(r.text, index+1)
	r.text = r.text[:from] + r.text[to:]
	r.len = grapheme.Count(r.text)
}

// DeleteRange removes the clusters in [start, end). Both bounds are
// resolved against the current text before anything is removed, so
// clusters that re-pair once their neighbour is gone are not touched.
func (r *Row) DeleteRange(start, end int) {
	end = min(end, r.len)
	start = min(max(start, 0), end)
	if start == end {
		return
	}
	from := grapheme.ByteOffset(r.text, start)
	to := grapheme.ByteOffset(r.text, end)
	r.text = r.text[:from] + r.text[to:]
	r.len = grapheme.Count(r.text)
}

// Split truncates the row to its first index clusters and returns the
// remainder as a new row. An index past the end yields an empty remainder.
func (r *Row) Split(index int) *Row {
	offset := grapheme.ByteOffset(r.text, index)
	tail := New(r.text[offset:])
	r.text = r.text[:offset]
	r.len = grapheme.Count(r.text)
	return tail
}

// Append concatenates other onto the end of the row.
func (r *Row) Append(other *Row) {
	if other == nil {
		return
	}
	r.text += other.text
	r.len = grapheme.Count(r.text)
}
