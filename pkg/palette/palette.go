package palette

import (
	"fmt"
	"strings"

	"github.com/matzehuels/printlayout/pkg/errors"
)

// Size is the number of colors in every palette.
const Size = 5

// baseIndex is the palette position that always becomes the base role.
const baseIndex = 2

// Palette is an ordered set of exactly five colors.
type Palette [Size]Color

// New builds a Palette from hex strings. It fails unless exactly five
// valid colors are given.
func New(colors ...string) (Palette, error) {
	var p Palette
	if len(colors) != Size {
		return p, errors.New(errors.ErrCodeInvalidPalette, "palette needs exactly %d colors, got %d", Size, len(colors))
	}
	for i, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette entry %d", i+1)
		}
		p[i] = c
	}
	return p, nil
}

// Mode selects light or dark role assignment.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists the supported modes in generation order.
var Modes = []Mode{Light, Dark}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid mode %q (must be 'light' or 'dark')", s)
}

// Role is a semantic color purpose.
type Role string

const (
	RoleBackground Role = "background"
	RoleBase       Role = "base"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleText       Role = "text"
)

// AllRoles lists every role in canonical order.
var AllRoles = []Role{RoleBackground, RoleBase, RoleSecondary, RoleAccent, RoleText}

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBackground, RoleBase, RoleSecondary, RoleAccent, RoleText:
		return true
	}
	return false
}

// Roles binds one color to each role.
type Roles struct {
	Background Color
	Base       Color
	Secondary  Color
	Accent     Color
	Text       Color
}

// Get returns the color bound to role.
func (r Roles) Get(role Role) (Color, bool) {
	switch role {
	case RoleBackground:
		return r.Background, true
	case RoleBase:
		return r.Base, true
	case RoleSecondary:
		return r.Secondary, true
	case RoleAccent:
		return r.Accent, true
	case RoleText:
		return r.Text, true
	}
	return "", false
}

// Map returns the roles as a role-keyed map.
func (r Roles) Map() map[Role]Color {
	m := make(map[Role]Color, len(AllRoles))
	for _, role := range AllRoles {
		m[role], _ = r.Get(role)
	}
	return m
}

// String renders the assignment for debug logging.
func (r Roles) String() string {
	return fmt.Sprintf("background=%s base=%s secondary=%s accent=%s text=%s",
		r.Background, r.Base, r.Secondary, r.Accent, r.Text)
}

// Assign maps the palette onto the five roles for mode m.
//
// Background is the brightest color in light mode and the darkest in dark
// mode, base is always the third entry, text is the color with the highest
// contrast against background, and the two remaining colors become
// secondary and accent ordered by luminance. When duplicates leave fewer
// than two colors over, the missing roles take base's color. Ties keep the
// earliest palette entry.
func Assign(p Palette, m Mode) Roles {
	base := p[baseIndex]

	var background Color
	if m == Dark {
		background = pick(p[:], Luminance, less)
	} else {
		background = pick(p[:], Luminance, greater)
	}

	others := without(p[:], background)
	text := base
	if len(others) > 0 {
		text = pick(others, func(c Color) float64 { return ContrastRatio(c, background) }, greater)
	}

	rest := without(others, base, text)
	roles := Roles{Background: background, Base: base, Text: text}

	switch len(rest) {
	case 2:
		lighter, darker := rest[0], rest[1]
		if Luminance(darker) > Luminance(lighter) {
			lighter, darker = darker, lighter
		}
		if m == Dark {
			roles.Secondary, roles.Accent = darker, lighter
		} else {
			roles.Secondary, roles.Accent = lighter, darker
		}
	case 1:
		roles.Secondary, roles.Accent = rest[0], base
	default:
		roles.Secondary, roles.Accent = base, base
	}
	return roles
}

func greater(a, b float64) bool { return a > b }
func less(a, b float64) bool    { return a < b }

// pick returns the first color whose score beats every other under better.
func pick(colors []Color, score func(Color) float64, better func(a, b float64) bool) Color {
	best, bestScore := colors[0], score(colors[0])
	for _, c := range colors[1:] {
		if s := score(c); better(s, bestScore) {
			best, bestScore = c, s
		}
	}
	return best
}

// without returns colors minus every entry equal to any of drop.
func without(colors []Color, drop ...Color) []Color {
	out := make([]Color, 0, len(colors))
outer:
	for _, c := range colors {
		for _, d := range drop {
			if c == d {
				continue outer
			}
		}
		out = append(out, c)
	}
	return out
}
