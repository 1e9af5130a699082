package geometry

import (
	"fmt"
	"math"
	"strconv"
)

// Orientation of a dimension line.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Dimension is one annotated measurement line. For a Vertical line, At is
// the x coordinate and From/To are y values; for a Horizontal line, At is
// the y coordinate and From/To are x values.
type Dimension struct {
	ID          string
	Orientation Orientation
	At          float64
	From, To    float64
	Value       float64
	Label       string
}

// Text returns the annotation shown next to the line, e.g. `D1: 1.5"`.
func (d Dimension) Text() string {
	return d.ID + ": " + d.Label
}

// Mid returns the midpoint of the line along its own axis.
func (d Dimension) Mid() float64 { return (d.From + d.To) / 2 }

// ToPage converts a canvas dimension line to the top-left page space of
// paper, the frame used by [ToPage] for boxes. Lanes outside the sheet end
// up with negative coordinates.
func (d Dimension) ToPage(paper Box) Dimension {
	flip := func(y float64) float64 { return paper.H - (y - paper.Y) }
	switch d.Orientation {
	case Horizontal:
		d.At = flip(d.At)
		d.From -= paper.X
		d.To -= paper.X
	default:
		d.At -= paper.X
		d.From = flip(d.From)
		d.To = flip(d.To)
	}
	return d
}

// Minimum spans below which the gap and caption-margin lines are omitted.
const (
	minGap           = 0.1
	minCaptionMargin = 0.1
)

// Lanes measured outward from the paper edge.
const (
	nearLane = 0.5
	farLane  = 1.0
)

// Dimensions returns the measurement lines for a front-side layout.
// Lines left of the sheet measure vertical distances; lines above measure
// image and caption offsets; the paper's own size is marked below and to
// the right.
func Dimensions(paper, img, caption Box, m Margins) []Dimension {
	var dims []Dimension
	left := paper.Left()

	if m.Top != nil {
		dims = append(dims, Dimension{
			ID: "D1", Orientation: Vertical, At: left - nearLane,
			From: paper.Top(), To: img.Top(),
			Value: *m.Top, Label: inches(*m.Top),
		})
	}

	if gap := img.Bottom() - caption.Top(); gap > minGap {
		dims = append(dims, Dimension{
			ID: "D5", Orientation: Vertical, At: left - nearLane,
			From: img.Bottom(), To: caption.Top(),
			Value: gap, Label: inches2(gap),
		})
	}

	toCaption := paper.Top() - caption.Top()
	dims = append(dims, Dimension{
		ID: "D4", Orientation: Vertical, At: left - farLane,
		From: paper.Top(), To: caption.Top(),
		Value: toCaption, Label: inches2(toCaption),
	})

	if cm := caption.Left() - left; math.Abs(cm) > minCaptionMargin {
		dims = append(dims, Dimension{
			ID: "D6", Orientation: Vertical, At: left - farLane,
			From: caption.Bottom(), To: caption.Top(),
			Value: cm, Label: inches2(cm),
		})
	}

	above := paper.Top()
	imgLeft := img.Left() - left
	imgRight := paper.Right() - img.Right()
	capLeft := caption.Left() - left
	dims = append(dims,
		Dimension{
			ID: "D2", Orientation: Horizontal, At: above + nearLane,
			From: left, To: img.Left(),
			Value: imgLeft, Label: inches2(imgLeft),
		},
		Dimension{
			ID: "D3", Orientation: Horizontal, At: above + nearLane,
			From: img.Right(), To: paper.Right(),
			Value: imgRight, Label: inches2(imgRight),
		},
		Dimension{
			ID: "D9", Orientation: Horizontal, At: above + farLane,
			From: left, To: caption.Left(),
			Value: capLeft, Label: inches2(capLeft),
		},
		Dimension{
			ID: "D10", Orientation: Horizontal, At: above + farLane,
			From: caption.Left(), To: caption.Right(),
			Value: caption.W, Label: inches2(caption.W),
		},
	)
	return append(dims, PaperDimensions(paper)...)
}

// PaperDimensions returns the overall sheet width (D7, below the sheet)
// and height (D8, right of the sheet).
func PaperDimensions(paper Box) []Dimension {
	return []Dimension{
		{
			ID: "D7", Orientation: Horizontal, At: paper.Bottom() - nearLane,
			From: paper.Left(), To: paper.Right(),
			Value: paper.W, Label: inches(paper.W),
		},
		{
			ID: "D8", Orientation: Vertical, At: paper.Right() + nearLane,
			From: paper.Bottom(), To: paper.Top(),
			Value: paper.H, Label: inches(paper.H),
		},
	}
}

// inches formats v with the shortest exact representation.
func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + `"`
}

// inches2 formats v with two decimals.
func inches2(v float64) string {
	return fmt.Sprintf(`%.2f"`, v)
}
