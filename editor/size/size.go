package size

// Size is the viewport dimension in character cells.
type Size struct {
	Width  int
	Height int
}

func New(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Normalize returns a copy with every dimension at least one cell, so scroll
// arithmetic always has a non-empty window to keep the cursor in.
func (s Size) Normalize() Size {
	return Size{Width: max(s.Width, 1), Height: max(s.Height, 1)}
}
