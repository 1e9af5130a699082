package geometry

import (
	"math"
	"testing"
)

func TestDefaultCanvasFrame(t *testing.T) {
	c := DefaultCanvas()

	if got, want := c.Bounds(), (Box{X: -1, Y: -1, W: 18, H: 24}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if got, want := c.Frame(), (Box{X: -0.75, Y: -0.75, W: 17.5, H: 23.5}); got != want {
		t.Errorf("Frame() = %+v, want %+v", got, want)
	}
	tb := c.TitleBlock()
	if want := (Box{X: -0.75, Y: -0.75, W: 17.5, H: 2.5}); tb != want {
		t.Errorf("TitleBlock() = %+v, want %+v", tb, want)
	}
	if got := c.TitleDivider(); math.Abs(got-9.75) > eps {
		t.Errorf("TitleDivider() = %v, want 9.75", got)
	}
}

func TestPaperOrigin(t *testing.T) {
	c := DefaultCanvas()
	tests := []struct {
		name string
		w, h float64
		want Point
	}{
		{"letter", 8.5, 11, Point{X: 3.75, Y: 6.875}},
		{"11x14", 11, 14, Point{X: 2.5, Y: 5.375}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.PaperOrigin(tt.w, tt.h)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("PaperOrigin() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPaperCenteredAboveTitleBlock(t *testing.T) {
	c := DefaultCanvas()
	p := c.Paper(8.5, 11)

	if math.Abs(p.CenterX()-(c.Width/2-1)) > eps {
		t.Errorf("paper CenterX = %v, want %v", p.CenterX(), c.Width/2-1)
	}
	below := p.Bottom() - c.TitleBlock().Top()
	above := (c.Height - 1) - p.Top()
	if math.Abs(below-above) > eps {
		t.Errorf("paper not vertically centered: %v below, %v above", below, above)
	}
}
