package geometry

// Margins is an image positioning rule. Keys are optional and are tried in
// priority order, never combined: Left beats Right, Top beats CenterV.
type Margins struct {
	Left    *float64 `json:"left,omitempty"`
	Right   *float64 `json:"right,omitempty"`
	Top     *float64 `json:"top,omitempty"`
	CenterV bool     `json:"center_v,omitempty"`
}

// Offset returns a pointer to v, for building Margins literals.
func Offset(v float64) *float64 { return &v }

// PlaceImage positions a w×h image on paper according to m.
func PlaceImage(paper Box, w, h float64, m Margins) Box {
	var x, y float64
	switch {
	case m.Left != nil:
		x = paper.Left() + *m.Left
	case m.Right != nil:
		x = paper.Right() - *m.Right - w
	default:
		x = paper.X + (paper.W-w)/2
	}

	if m.Top != nil {
		y = paper.Top() - *m.Top - h
	} else {
		// CenterV and the default fallback resolve identically.
		y = paper.Y + (paper.H-h)/2
	}
	return Box{X: x, Y: y, W: w, H: h}
}

// PlaceCaption positions a w×h caption at absolute offsets measured from
// the paper's top-left corner. There is no centering fallback.
func PlaceCaption(paper Box, w, h, left, top float64) Box {
	return Box{
		X: paper.Left() + left,
		Y: paper.Top() - top - h,
		W: w,
		H: h,
	}
}

// PlaceNote centers a w×h note on paper.
func PlaceNote(paper Box, w, h float64) Box {
	return Box{
		X: paper.X + (paper.W-w)/2,
		Y: paper.Y + (paper.H-h)/2,
		W: w,
		H: h,
	}
}

// SplitColumns divides b into two equal columns separated by gutter.
// Both columns keep b's vertical extent. Callers must ensure
// 0 <= gutter < b.W.
func SplitColumns(b Box, gutter float64) [2]Box {
	colW := (b.W - gutter) / 2
	return [2]Box{
		{X: b.X, Y: b.Y, W: colW, H: b.H},
		{X: b.X + colW + gutter, Y: b.Y, W: colW, H: b.H},
	}
}
