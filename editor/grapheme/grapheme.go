// Package grapheme holds the grapheme-cluster helpers every editing
// operation indexes by.
//
// Three units meet here: bytes (Go string storage), grapheme clusters (what
// a user perceives as one character, the unit of every row index and cursor
// column) and display cells (how wide a cluster draws in a terminal).
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Split returns the grapheme clusters of s in order.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}

// ByteOffset converts a grapheme index to a byte offset into s. Indices at
// or past the end map to len(s).
func ByteOffset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	n := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		_, rest, _, state = uniseg.StepString(rest, state)
		n++
		if n == index {
			return len(s) - len(rest)
		}
	}
	return len(s)
}

// At returns the grapheme cluster at index, or false when index is out of
// range.
func At(s string, index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	n := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		if n == index {
			return cluster, true
		}
		n++
	}
	return "", false
}

// Slice returns the clusters in [start, end) of s.
func Slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	return s[ByteOffset(s, start):ByteOffset(s, end)]
}

// Width returns the display width of a single cluster in terminal cells.
// Tabs draw as one space and every other cluster takes at least one cell.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	if cluster == "\t" {
		return 1
	}
	return max(runewidth.StringWidth(cluster), 1)
}

// IsAlphanumeric reports whether cluster starts with a letter or digit.
// Combining marks and modifiers ride along with their base rune.
func IsAlphanumeric(cluster string) bool {
	if cluster == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ExpandTabs replaces every tab with a single space.
func ExpandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
