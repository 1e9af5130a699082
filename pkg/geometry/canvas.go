package geometry

// Canvas describes the blueprint drawing surface. Axes span
// [-1, Width-1] × [-1, Height-1]; the frame is inset from that edge and the
// title block sits on the frame's bottom edge.
type Canvas struct {
	Width            float64
	Height           float64
	Inset            float64
	TitleBlockHeight float64
}

// TitleDividerRatio is where the title block splits into its layout and
// installation-data columns, as a fraction of its width.
const TitleDividerRatio = 0.6

// DefaultCanvas is an 18×24 inch sheet with a quarter-inch frame.
func DefaultCanvas() Canvas {
	return Canvas{Width: 18, Height: 24, Inset: 0.25, TitleBlockHeight: 2.5}
}

// Bounds returns the full drawable area.
func (c Canvas) Bounds() Box {
	return Box{X: -1, Y: -1, W: c.Width, H: c.Height}
}

// Frame returns the border drawn Inset inside the bounds.
func (c Canvas) Frame() Box {
	return c.Bounds().Inset(c.Inset)
}

// TitleBlock returns the title block box, spanning the frame horizontally
// and resting on its bottom edge.
func (c Canvas) TitleBlock() Box {
	f := c.Frame()
	return Box{X: f.X, Y: f.Y, W: f.W, H: c.TitleBlockHeight}
}

// TitleDivider returns the x coordinate of the title block's column split.
func (c Canvas) TitleDivider() float64 {
	tb := c.TitleBlock()
	return tb.X + tb.W*TitleDividerRatio
}

// PaperOrigin returns where a paperW×paperH sheet's bottom-left corner
// lands: centered horizontally on the canvas and vertically between the
// title block's top and the top of the bounds.
func (c Canvas) PaperOrigin(paperW, paperH float64) Point {
	titleTop := c.TitleBlock().Top()
	available := (c.Height - 1) - titleTop
	return Point{
		X: c.Width/2 - 1 - paperW/2,
		Y: titleTop + (available-paperH)/2,
	}
}

// Paper returns the sheet box placed at PaperOrigin.
func (c Canvas) Paper(paperW, paperH float64) Box {
	o := c.PaperOrigin(paperW, paperH)
	return Box{X: o.X, Y: o.Y, W: paperW, H: paperH}
}
