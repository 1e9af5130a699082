package sink

import (
	"encoding/json"

	"github.com/matzehuels/printlayout/pkg/compose"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	canvas     bool
	dimensions bool
}

// WithJSONCanvas emits boxes in blueprint canvas coordinates (bottom-left
// origin) instead of page coordinates.
func WithJSONCanvas() JSONOption { return func(r *jsonRenderer) { r.canvas = true } }

// WithJSONDimensions includes the annotated measurement lines of the front,
// in the same frame as the boxes.
func WithJSONDimensions() JSONOption { return func(r *jsonRenderer) { r.dimensions = true } }

type jsonDimension struct {
	ID          string  `json:"id"`
	Orientation string  `json:"orientation"`
	At          float64 `json:"at"`
	From        float64 `json:"from"`
	To          float64 `json:"to"`
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
}

type jsonPage struct {
	compose.PageSpec
	Dimensions []jsonDimension `json:"dimensions,omitempty"`
}

type jsonCanvas struct {
	compose.Spec
	Dimensions []jsonDimension `json:"dimensions,omitempty"`
}

// RenderJSON exports the composed spec as a pretty-printed JSON document.
// By default every box is relative to the paper's top-left corner, which
// is what print templates consume.
func RenderJSON(spec compose.Spec, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var dims []jsonDimension
	if r.dimensions {
		dims = buildJSONDimensions(spec, r.canvas)
	}

	if r.canvas {
		return json.MarshalIndent(jsonCanvas{Spec: spec, Dimensions: dims}, "", "  ")
	}
	return json.MarshalIndent(jsonPage{PageSpec: spec.Page(), Dimensions: dims}, "", "  ")
}

func buildJSONDimensions(spec compose.Spec, canvas bool) []jsonDimension {
	src := spec.Dimensions()
	dims := make([]jsonDimension, 0, len(src))
	for _, d := range src {
		if !canvas {
			d = d.ToPage(spec.Paper)
		}
		dims = append(dims, jsonDimension{
			ID:          d.ID,
			Orientation: d.Orientation.String(),
			At:          d.At,
			From:        d.From,
			To:          d.To,
			Value:       d.Value,
			Label:       d.Label,
		})
	}
	return dims
}
