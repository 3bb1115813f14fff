package terminal

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y, W, H int
}

// Inner returns the rectangle inside a one-cell outline.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Empty reports whether nothing can be drawn in the rectangle.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout places every widget for a terminal size.
type Layout struct {
	Width, Height int
	TooSmall      bool
	Question      Rect
	Choices       [4]Rect
	Input         Rect
	FooterY       int
}

// NewLayout computes widget positions. The question sits in the top middle
// third, the choices span the bottom and the text input shares their row.
func NewLayout(width, height, minWidth, minHeight int) Layout {
	l := Layout{
		Width:    width,
		Height:   height,
		TooSmall: width < minWidth || height < minHeight,
		FooterY:  max(height-1, 0),
	}

	boxHeight := max(height-7, 0) / 2
	bottomY := max(height-boxHeight-3, 0)

	l.Question = Rect{X: width / 3, Y: 2, W: width / 3, H: boxHeight}
	l.Input = Rect{X: width / 3, Y: bottomY, W: width / 3, H: boxHeight}

	row := Rect{X: 4, Y: bottomY, W: max(width-8, 0), H: boxHeight}
	each := row.W / len(l.Choices)
	for i := range l.Choices {
		w := each
		if i == len(l.Choices)-1 {
			w = row.W - each*(len(l.Choices)-1)
		}
		l.Choices[i] = Rect{X: row.X + each*i, Y: row.Y, W: w, H: row.H}
	}

	return l
}
