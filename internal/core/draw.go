package core

// FillBox paints every cell covered by the world box b.
func (v Viewport) FillBox(dst *Screen, b Box, ch rune, c Color) {
	dst.DrawRect(v.BoxRect(b), ch, c)
}

// FillCircle paints every cell whose center lies inside the world circle.
// A circle smaller than one cell still paints the cell under its center.
func (v Viewport) FillCircle(dst *Screen, cx, cy, r float64, ch rune, c Color) {
	rect := v.BoxRect(NewBox(cx-r, cy-r, 2*r, 2*r))
	painted := false
	for row := rect.Y; row <= rect.Bottom(); row++ {
		for col := rect.X; col <= rect.Right(); col++ {
			dx := v.X(col) - cx
			dy := v.Y(row) - cy
			if dx*dx+dy*dy <= r*r {
				dst.SetColored(col, row, ch, c)
				painted = true
			}
		}
	}
	if !painted {
		dst.SetColored(v.Col(cx), v.Row(cy), ch, c)
	}
}

// Point paints the single cell under a world position.
func (v Viewport) Point(dst *Screen, x, y float64, ch rune, c Color) {
	dst.SetColored(v.Col(x), v.Row(y), ch, c)
}
