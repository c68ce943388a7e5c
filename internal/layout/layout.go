package layout

// CalculateChildrenAreas splits parent among n children according to style.
//
// The border (if shown) and the padding are removed first. The remaining
// extent along the flex axis, minus gap*(n-1), is divided evenly with integer
// division; leftover cells stay unused at the far end. When the border is
// shown, every child after the first is moved back one cell and grown by one
// so adjacent bordered children share a boundary line.
//
// Sizes saturate at zero when padding, border or gaps exceed the space
// available. n <= 0 yields nil.
func CalculateChildrenAreas(style Style, parent Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}

	content := style.Shrink(style.ShrinkBorder(parent))
	if style.Direction == Row {
		return distribute(content, n, style.Gap, style.Border.Show)
	}

	// Column is the transpose of Row.
	areas := distribute(content.Transpose(), n, style.Gap, style.Border.Show)
	for i := range areas {
		areas[i] = areas[i].Transpose()
	}
	return areas
}

// distribute tiles n rectangles horizontally across content.
func distribute(content Rect, n, gap int, overlap bool) []Rect {
	gap = max(gap, 0)
	available := max(content.Width-gap*(n-1), 0)
	size := available / n

	areas := make([]Rect, n)
	for i := range areas {
		x := content.X + i*(size+gap)
		width := size
		if overlap && i > 0 && x > content.X {
			x--
			width++
		}
		// Oversized gaps would push zero-width children past the content edge.
		x = min(x, content.Right())
		width = min(width, content.Right()-x)
		areas[i] = Rect{X: x, Y: content.Y, Width: width, Height: content.Height}
	}
	return areas
}
