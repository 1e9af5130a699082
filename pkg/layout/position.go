package layout

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/printlayout/pkg/geometry"
)

// ImagePosition is the img_pos rule. Keys are presence-based: a center_v
// key selects vertical centering whatever its value.
type ImagePosition struct {
	geometry.Margins
}

// UnmarshalJSON decodes {left?, right?, top?, center_v?}. Offsets must be
// numbers; unknown keys are rejected.
func (p *ImagePosition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("img_pos: %w", err)
	}

	var m geometry.Margins
	for key, val := range raw {
		switch key {
		case "left", "right", "top":
			var v float64
			if err := json.Unmarshal(val, &v); err != nil || string(val) == "null" {
				return fmt.Errorf("img_pos.%s must be a number, got %s", key, val)
			}
			switch key {
			case "left":
				m.Left = &v
			case "right":
				m.Right = &v
			default:
				m.Top = &v
			}
		case "center_v":
			m.CenterV = true
		default:
			return fmt.Errorf("img_pos: unknown key %q", key)
		}
	}
	p.Margins = m
	return nil
}

// MarshalJSON emits only the keys that are set.
func (p ImagePosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Margins)
}
