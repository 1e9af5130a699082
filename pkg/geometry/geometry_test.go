package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

var letter = Box{X: 0, Y: 0, W: 8.5, H: 11}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 1, Y: 2, W: 4, H: 6}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Left", b.Left(), 1},
		{"Right", b.Right(), 5},
		{"Bottom", b.Bottom(), 2},
		{"Top", b.Top(), 8},
		{"CenterX", b.CenterX(), 3},
		{"CenterY", b.CenterY(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestBoxInsetTranslate(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 6}
	if got, want := b.Inset(1), (Box{X: 1, Y: 1, W: 8, H: 4}); got != want {
		t.Errorf("Inset(1) = %+v, want %+v", got, want)
	}
	if got, want := b.Translate(2, -3), (Box{X: 2, Y: -3, W: 10, H: 6}); got != want {
		t.Errorf("Translate(2,-3) = %+v, want %+v", got, want)
	}
	if !b.Contains(b.Inset(1), 0) {
		t.Error("Contains(inset) = false, want true")
	}
	if b.Contains(b.Translate(1, 0), 0) {
		t.Error("Contains(shifted) = true, want false")
	}
}

func TestPlaceImageHorizontal(t *testing.T) {
	tests := []struct {
		name    string
		paper   Box
		margins Margins
		w       float64
		wantX   float64
	}{
		{"left wins over right", letter, Margins{Left: Offset(1), Right: Offset(2)}, 4, 1},
		{"left only", letter, Margins{Left: Offset(0.75)}, 4, 0.75},
		{"right only", letter, Margins{Right: Offset(2)}, 4, 2.5},
		{"centered by default", letter, Margins{}, 4, 2.25},
		{"center_v does not affect x", letter, Margins{CenterV: true}, 4, 2.25},
		{"offset paper", Box{X: 3.75, Y: 6.875, W: 8.5, H: 11}, Margins{Left: Offset(1)}, 4, 4.75},
		{"offset paper centered", Box{X: 3.75, Y: 6.875, W: 8.5, H: 11}, Margins{}, 4, 6},
		{"zero left is present", letter, Margins{Left: Offset(0), Right: Offset(2)}, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceImage(tt.paper, tt.w, 5, tt.margins)
			if math.Abs(got.X-tt.wantX) > eps {
				t.Errorf("PlaceImage().X = %v, want %v", got.X, tt.wantX)
			}
			if got.W != tt.w || got.H != 5 {
				t.Errorf("PlaceImage() size = %vx%v, want %vx5", got.W, got.H, tt.w)
			}
		})
	}
}

func TestPlaceImageVertical(t *testing.T) {
	tests := []struct {
		name    string
		margins Margins
		h       float64
		wantY   float64
	}{
		{"top", Margins{Top: Offset(1)}, 4, 6},
		{"top wins over center_v", Margins{Top: Offset(2), CenterV: true}, 4, 5},
		{"center_v", Margins{CenterV: true}, 4, 3.5},
		{"default centers", Margins{}, 4, 3.5},
		{"zero top is present", Margins{Top: Offset(0)}, 4, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceImage(letter, 6, tt.h, tt.margins)
			if math.Abs(got.Y-tt.wantY) > eps {
				t.Errorf("PlaceImage().Y = %v, want %v", got.Y, tt.wantY)
			}
		})
	}
}

func TestPlaceImageNoMarginsCentersBothAxes(t *testing.T) {
	paper := Box{X: -2, Y: 3, W: 11, H: 14}
	got := PlaceImage(paper, 8, 10, Margins{})
	if math.Abs(got.CenterX()-paper.CenterX()) > eps || math.Abs(got.CenterY()-paper.CenterY()) > eps {
		t.Errorf("PlaceImage() center = (%v,%v), want (%v,%v)",
			got.CenterX(), got.CenterY(), paper.CenterX(), paper.CenterY())
	}
	if want := paper.X + (paper.W-8)/2; got.X != want {
		t.Errorf("PlaceImage().X = %v, want %v", got.X, want)
	}
}

func TestPlaceCaption(t *testing.T) {
	paper := Box{X: 3.75, Y: 6.875, W: 8.5, H: 11}
	got := PlaceCaption(paper, 6, 2, 1.25, 6)
	want := Box{X: 5, Y: 6.875 + 11 - 6 - 2, W: 6, H: 2}
	if !got.Approx(want, eps) {
		t.Errorf("PlaceCaption() = %+v, want %+v", got, want)
	}
}

func TestPlaceNote(t *testing.T) {
	tests := []struct {
		name  string
		paper Box
		w, h  float64
		want  Box
	}{
		{"letter", letter, 6, 9, Box{X: 1.25, Y: 1, W: 6, H: 9}},
		{"11x14", Box{W: 11, H: 14}, 7, 10, Box{X: 2, Y: 2, W: 7, H: 10}},
		{"offset paper", Box{X: 1, Y: 1, W: 8.5, H: 11}, 6, 9, Box{X: 2.25, Y: 2, W: 6, H: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaceNote(tt.paper, tt.w, tt.h); !got.Approx(tt.want, eps) {
				t.Errorf("PlaceNote() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitColumns(t *testing.T) {
	b := Box{X: 1, Y: 2, W: 6, H: 3}
	cols := SplitColumns(b, 0.5)

	for i, c := range cols {
		if c.W != 2.75 {
			t.Errorf("column %d width = %v, want 2.75", i, c.W)
		}
		if c.Y != b.Y || c.H != b.H {
			t.Errorf("column %d vertical extent = (%v,%v), want (%v,%v)", i, c.Y, c.H, b.Y, b.H)
		}
	}
	if cols[0].X != b.X {
		t.Errorf("first column X = %v, want %v", cols[0].X, b.X)
	}
	if gap := cols[1].Left() - cols[0].Right(); gap != 0.5 {
		t.Errorf("gutter = %v, want 0.5", gap)
	}
	if cols[1].Right() != b.Right() {
		t.Errorf("second column right = %v, want %v", cols[1].Right(), b.Right())
	}
}

func TestPageRoundTripWithinTolerance(t *testing.T) {
	tests := []struct {
		name   string
		b      Box
		paperH float64
	}{
		{"letter", Box{X: 1.25, Y: 6, W: 6, H: 4}, 11},
		{"fractional off by ulps", Box{X: 0.3, Y: 0.1, W: 0.7, H: 0.3}, 11},
		{"negative overflow", Box{X: -1, Y: -2, W: 3, H: 1}, 14},
		{"tall", Box{X: 0, Y: 0, W: 11, H: 14}, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := ToPage(tt.b, tt.paperH)
			if want := tt.paperH - tt.b.Y - tt.b.H; pb.Top != want {
				t.Errorf("ToPage().Top = %v, want %v", pb.Top, want)
			}
			back := FromPage(pb, tt.paperH)
			if !back.Approx(tt.b, eps) {
				t.Errorf("FromPage(ToPage(b)) = %+v, want %+v", back, tt.b)
			}
		})
	}
}

func TestPageExactOnDyadicValues(t *testing.T) {
	b := Box{X: 1.25, Y: 3.5, W: 6, H: 2.25}
	if got := FromPage(ToPage(b, 11), 11); got != b {
		t.Errorf("FromPage(ToPage(b)) = %+v, want %+v", got, b)
	}
	pb := ToPage(Box{X: 0, Y: 0, W: 8.5, H: 11}, 11)
	if pb.Top != 0 {
		t.Errorf("full-sheet top = %v, want 0", pb.Top)
	}
}
