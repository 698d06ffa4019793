package cursor

import (
	"testing"

	"github.com/hnimtadd/linedit/editor/coordinate"
	"github.com/hnimtadd/linedit/editor/document"
	"github.com/hnimtadd/linedit/editor/intent"
	"github.com/hnimtadd/linedit/editor/size"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var viewport = size.New(10, 3)

func at(x, y int) Position {
	return coordinate.NewPoint(x, y)
}

func TestMove_UpDownSaturate(t *testing.T) {
	doc := document.FromString("one\ntwo")

	assert.Equal(t, at(1, 0), Move(intent.MoveUp, at(1, 0), doc, viewport))
	assert.Equal(t, at(1, 1), Move(intent.MoveDown, at(1, 0), doc, viewport))
	assert.Equal(t, at(0, 2), Move(intent.MoveDown, at(1, 1), doc, viewport),
		"the row past the end is reachable and has length zero")
	assert.Equal(t, at(0, 2), Move(intent.MoveDown, at(0, 2), doc, viewport))
}

func TestMove_ClampsOntoShorterRow(t *testing.T) {
	doc := document.FromString("a long row\nab")
	assert.Equal(t, at(2, 1), Move(intent.MoveDown, at(8, 0), doc, viewport))
	assert.Equal(t, at(2, 0), Move(intent.MoveUp, at(2, 1), doc, viewport))
}

func TestMove_LeftCrossesRows(t *testing.T) {
	doc := document.FromString("abc\nde")
	assert.Equal(t, at(1, 1), Move(intent.MoveLeft, at(2, 1), doc, viewport))
	assert.Equal(t, at(3, 0), Move(intent.MoveLeft, at(0, 1), doc, viewport))
	assert.Equal(t, at(0, 0), Move(intent.MoveLeft, at(0, 0), doc, viewport))
}

func TestMove_RightCrossesRows(t *testing.T) {
	doc := document.FromString("abc\nde")
	assert.Equal(t, at(1, 0), Move(intent.MoveRight, at(0, 0), doc, viewport))
	assert.Equal(t, at(0, 1), Move(intent.MoveRight, at(3, 0), doc, viewport))
	assert.Equal(t, at(0, 2), Move(intent.MoveRight, at(2, 1), doc, viewport),
		"end of the last row moves onto the insertion row")
	assert.Equal(t, at(0, 2), Move(intent.MoveRight, at(0, 2), doc, viewport))
}

func TestMove_HomeEnd(t *testing.T) {
	doc := document.FromString("hello")
	assert.Equal(t, at(0, 0), Move(intent.MoveHome, at(3, 0), doc, viewport))
	assert.Equal(t, at(5, 0), Move(intent.MoveEnd, at(3, 0), doc, viewport))
	assert.Equal(t, at(0, 1), Move(intent.MoveEnd, at(0, 1), doc, viewport))
}

func TestMove_Pages(t *testing.T) {
	doc := document.FromString("0\n1\n2\n3\n4\n5\n6")
	assert.Equal(t, at(0, 3), Move(intent.MovePageDown, at(0, 0), doc, viewport))
	assert.Equal(t, at(0, 7), Move(intent.MovePageDown, at(0, 6), doc, viewport))
	assert.Equal(t, at(0, 2), Move(intent.MovePageUp, at(0, 5), doc, viewport))
	assert.Equal(t, at(1, 0), Move(intent.MovePageUp, at(1, 1), doc, viewport))
}

func TestMove_StalePositionIsClamped(t *testing.T) {
	doc := document.FromString("ab")
	assert.Equal(t, at(2, 0), Move(intent.MoveHome+100, at(9, 0), doc, viewport))
	assert.Equal(t, at(0, 0), Move(intent.MoveUp, at(4, 9), doc, viewport))
}

func TestMove_ClusterIsOneStep(t *testing.T) {
	doc := document.FromString("a\U0001F1EF\U0001F1F5e\u0301b")
	pos := at(0, 0)
	for want := 1; want <= 4; want++ {
		pos = Move(intent.MoveRight, pos, doc, viewport)
		assert.Equal(t, at(want, 0), pos)
	}
	pos = Move(intent.MoveLeft, pos, doc, viewport)
	assert.Equal(t, at(3, 0), pos)
}

func TestMove_EmptyDocument(t *testing.T) {
	doc := document.New()
	for _, m := range []intent.Movement{
		intent.MoveUp, intent.MoveDown, intent.MoveLeft, intent.MoveRight,
		intent.MovePageUp, intent.MovePageDown, intent.MoveWordForward,
	} {
		assert.Equal(t, at(0, 0), Move(m, at(0, 0), doc, viewport))
	}
}

func TestWordForward(t *testing.T) {
	doc := document.FromString("foo, bar42 baz\nnext")

	pos, steps := WordForward(at(0, 0), doc)
	assert.Equal(t, at(3, 0), pos)
	assert.Equal(t, 3, steps)

	pos, steps = WordForward(pos, doc)
	assert.Equal(t, at(10, 0), pos, "skips punctuation and space then the word")
	assert.Equal(t, 7, steps)

	pos, steps = WordForward(at(11, 0), doc)
	assert.Equal(t, at(14, 0), pos)
	assert.Equal(t, 3, steps)

	pos, steps = WordForward(pos, doc)
	assert.Equal(t, at(0, 1), pos, "end of row crosses to the next row")
	assert.Equal(t, 1, steps)

	pos, steps = WordForward(at(4, 1), doc)
	assert.Equal(t, at(0, 2), pos)
	assert.Equal(t, 1, steps)

	pos, steps = WordForward(at(0, 2), doc)
	assert.Equal(t, at(0, 2), pos)
	assert.Equal(t, 0, steps)
}

func TestWordBackward(t *testing.T) {
	doc := document.FromString("prev\nfoo, bar42")

	pos, steps := WordBackward(at(10, 1), doc)
	assert.Equal(t, at(5, 1), pos)
	assert.Equal(t, 5, steps)

	pos, steps = WordBackward(pos, doc)
	assert.Equal(t, at(0, 1), pos)
	assert.Equal(t, 5, steps)

	pos, steps = WordBackward(pos, doc)
	assert.Equal(t, at(4, 0), pos, "column zero crosses to the previous row end")
	assert.Equal(t, 1, steps)

	pos, steps = WordBackward(at(0, 0), doc)
	assert.Equal(t, at(0, 0), pos)
	assert.Equal(t, 0, steps)
}

func TestWordJump_StepsMatchSingleMoves(t *testing.T) {
	doc := document.FromString("héllo wörld—ok\n日本 語")
	for y := 0; y <= doc.Len(); y++ {
		for x := 0; x <= doc.RowLen(y); x++ {
			start := at(x, y)

			end, steps := WordForward(start, doc)
			pos := start
			for range steps {
				pos = Move(intent.MoveRight, pos, doc, viewport)
			}
			assert.Equal(t, end, pos, "forward from %v", start)

			end, steps = WordBackward(start, doc)
			pos = start
			for range steps {
				pos = Move(intent.MoveLeft, pos, doc, viewport)
			}
			assert.Equal(t, end, pos, "backward from %v", start)
		}
	}
}

var movements = []intent.Movement{
	intent.MoveUp, intent.MoveDown, intent.MoveLeft, intent.MoveRight,
	intent.MoveHome, intent.MoveEnd, intent.MovePageUp, intent.MovePageDown,
	intent.MoveWordForward, intent.MoveWordBackward,
}

func TestMove_AlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ,\x{00e9}\x{4e16}]{0,8}`), 0, 6).Draw(t, "lines")
		doc := document.New()
		for i, l := range lines {
			doc.NewLine(at(0, i))
			for _, c := range l {
				doc.Insert(at(doc.RowLen(i), i), c)
			}
		}
		sz := size.New(rapid.IntRange(-1, 8).Draw(t, "w"), rapid.IntRange(-1, 8).Draw(t, "h"))
		pos := at(rapid.IntRange(-3, 12).Draw(t, "x"), rapid.IntRange(-3, 9).Draw(t, "y"))

		moves := rapid.SliceOfN(rapid.SampledFrom(movements), 1, 20).Draw(t, "moves")
		for _, m := range moves {
			pos = Move(m, pos, doc, sz)
			assert.GreaterOrEqual(t, pos.Y, 0)
			assert.LessOrEqual(t, pos.Y, doc.Len())
			assert.GreaterOrEqual(t, pos.X, 0)
			assert.LessOrEqual(t, pos.X, doc.RowLen(pos.Y))
		}
	})
}
