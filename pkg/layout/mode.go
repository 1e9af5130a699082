package layout

import (
	"encoding/json"
	"fmt"
)

// Mode selects how the front caption box is drawn.
type Mode int

const (
	// ModeStandard draws the caption as a single box.
	ModeStandard Mode = iota
	// ModeDoubleColumn splits the caption into two columns around a gutter.
	ModeDoubleColumn
)

const doubleColName = "double_col"

// String returns the JSON spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDoubleColumn:
		return doubleColName
	default:
		return "standard"
	}
}

// ParseMode parses the "special" field. Empty selects ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "standard":
		return ModeStandard, nil
	case doubleColName:
		return ModeDoubleColumn, nil
	}
	return ModeStandard, fmt.Errorf("unknown special mode %q", s)
}

// MarshalJSON encodes ModeStandard as null.
func (m Mode) MarshalJSON() ([]byte, error) {
	if m == ModeStandard {
		return []byte("null"), nil
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts null, "" or "double_col".
func (m *Mode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = ModeStandard
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("special: %w", err)
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
