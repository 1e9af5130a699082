package palette

import (
	"math"
	"testing"

	"github.com/matzehuels/printlayout/pkg/errors"
)

var sample = []string{"#1E3D59", "#F2F2F2", "#4A90D9", "#E8EFF5", "#333333"}

func mustPalette(t *testing.T, colors ...string) Palette {
	t.Helper()
	p, err := New(colors...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", colors, err)
	}
	return p
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		colors  []string
		wantErr bool
	}{
		{"five colors", sample, false},
		{"short hex", []string{"#fff", "#000", "#f00", "#0f0", "#00f"}, false},
		{"four colors", sample[:4], true},
		{"six colors", append(append([]string{}, sample...), "#000000"), true},
		{"bad hex", []string{"#1E3D59", "#F2F2F2", "#4A90DZ", "#E8EFF5", "#333333"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.colors...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidPalette) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPalette)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#1e3d59", "#1E3D59", false},
		{"#ABC", "#AABBCC", false},
		{" #f2f2f2 ", "#F2F2F2", false},
		{"1E3D59", "", true},
		{"#12345g", "", true},
		{"#1234", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"light", "Dark", " light "} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) error = %v", s, err)
		}
	}
	if _, err := ParseMode("sepia"); err == nil {
		t.Error("ParseMode(sepia) should fail")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		color Color
		want  float64
	}{
		{"#000000", 0},
		{"#FFFFFF", 1},
		{"#FF0000", 0.2126},
		{"#00FF00", 0.7152},
		{"#0000FF", 0.0722},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			if got := Luminance(tt.color); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestLuminanceMonotonic(t *testing.T) {
	channel := func(i int, v uint8) Color {
		var rgb [3]uint8
		rgb[i] = v
		return Color("#" + hex2(rgb[0]) + hex2(rgb[1]) + hex2(rgb[2]))
	}
	for ch := 0; ch < 3; ch++ {
		prev := -1.0
		for v := 0; v <= 255; v++ {
			l := Luminance(channel(ch, uint8(v)))
			if l < prev {
				t.Fatalf("channel %d: Luminance decreased at %d (%v < %v)", ch, v, l, prev)
			}
			prev = l
		}
	}
}

func hex2(v uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio("#FFFFFF", "#000000"); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	for _, s := range sample {
		c := Color(s)
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", c, c, got)
		}
	}
	a, b := Color("#1E3D59"), Color("#E8EFF5")
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("ContrastRatio should be symmetric")
	}
}

func TestAssignLight(t *testing.T) {
	roles := Assign(mustPalette(t, sample...), Light)

	want := Roles{
		Background: "#F2F2F2",
		Base:       "#4A90D9",
		Text:       "#333333",
		Secondary:  "#E8EFF5",
		Accent:     "#1E3D59",
	}
	if roles != want {
		t.Errorf("Assign(light) = %v\nwant %v", roles, want)
	}
}

func TestAssignDark(t *testing.T) {
	roles := Assign(mustPalette(t, sample...), Dark)

	lowest := Color("#1E3D59")
	if Luminance("#333333") < Luminance(lowest) {
		lowest = "#333333"
	}
	if roles.Background != lowest {
		t.Errorf("Background = %v, want %v", roles.Background, lowest)
	}
	if roles.Base != "#4A90D9" {
		t.Errorf("Base = %v, want #4A90D9", roles.Base)
	}
	if roles.Text != "#F2F2F2" {
		t.Errorf("Text = %v, want #F2F2F2", roles.Text)
	}
	// Dark mode: secondary is the darker of the leftovers.
	if Luminance(roles.Secondary) > Luminance(roles.Accent) {
		t.Errorf("Secondary %v should be darker than Accent %v", roles.Secondary, roles.Accent)
	}
}

func TestAssignBijection(t *testing.T) {
	palettes := [][]string{
		sample,
		{"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF"},
		{"#FFFFFF", "#EEEEEE", "#DDDDDD", "#CCCCCC", "#BBBBBB"},
	}

	for _, colors := range palettes {
		p := mustPalette(t, colors...)
		for _, m := range Modes {
			roles := Assign(p, m)
			seen := make(map[Color]bool)
			for _, role := range AllRoles {
				c, _ := roles.Get(role)
				if c == "" {
					t.Fatalf("%v/%s: role %s unassigned", colors, m, role)
				}
				if !contains(p, c) {
					t.Fatalf("%v/%s: role %s = %s not in palette", colors, m, role, c)
				}
				seen[c] = true
			}
			if len(seen) != Size {
				t.Errorf("%v/%s: %d distinct colors assigned, want %d (%v)", colors, m, len(seen), Size, roles)
			}
		}
	}
}

func TestAssignDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		mode   Mode
		check  func(t *testing.T, r Roles)
	}{
		{
			name:   "all identical",
			colors: []string{"#777777", "#777777", "#777777", "#777777", "#777777"},
			mode:   Light,
			check: func(t *testing.T, r Roles) {
				for _, role := range AllRoles {
					if c, _ := r.Get(role); c != "#777777" {
						t.Errorf("%s = %v, want #777777", role, c)
					}
				}
			},
		},
		{
			name:   "base is background",
			colors: []string{"#000000", "#444444", "#FFFFFF", "#888888", "#000000"},
			mode:   Light,
			check: func(t *testing.T, r Roles) {
				if r.Background != "#FFFFFF" || r.Base != "#FFFFFF" {
					t.Errorf("Background/Base = %v/%v, want #FFFFFF", r.Background, r.Base)
				}
				if r.Text != "#000000" {
					t.Errorf("Text = %v, want #000000", r.Text)
				}
				// #444444 and #888888 remain: two distinct colors.
				if r.Secondary != "#888888" || r.Accent != "#444444" {
					t.Errorf("Secondary/Accent = %v/%v, want #888888/#444444", r.Secondary, r.Accent)
				}
			},
		},
		{
			name:   "base is lightest",
			colors: []string{"#264653", "#2A9D8F", "#E9C46A", "#F4A261", "#E76F51"},
			mode:   Light,
			check: func(t *testing.T, r Roles) {
				if r.Background != "#E9C46A" || r.Base != "#E9C46A" {
					t.Errorf("Background/Base = %v/%v, want #E9C46A", r.Background, r.Base)
				}
				if r.Text != "#264653" {
					t.Errorf("Text = %v, want #264653", r.Text)
				}
				// Three colors are left over, so both fall back to base.
				if r.Secondary != r.Base || r.Accent != r.Base {
					t.Errorf("Secondary/Accent = %v/%v, want base %v", r.Secondary, r.Accent, r.Base)
				}
			},
		},
		{
			name:   "one leftover",
			colors: []string{"#000000", "#FFFFFF", "#FFFFFF", "#808080", "#000000"},
			mode:   Light,
			check: func(t *testing.T, r Roles) {
				if r.Secondary != "#808080" {
					t.Errorf("Secondary = %v, want #808080", r.Secondary)
				}
				if r.Accent != r.Base {
					t.Errorf("Accent = %v, want base %v", r.Accent, r.Base)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Assign(mustPalette(t, tt.colors...), tt.mode))
		})
	}
}

func TestRolesMap(t *testing.T) {
	roles := Assign(mustPalette(t, sample...), Light)
	m := roles.Map()
	if len(m) != len(AllRoles) {
		t.Fatalf("Map() has %d entries, want %d", len(m), len(AllRoles))
	}
	if m[RoleBackground] != roles.Background {
		t.Errorf("Map()[background] = %v, want %v", m[RoleBackground], roles.Background)
	}
	if _, ok := roles.Get("shadow"); ok {
		t.Error("Get(shadow) should report false")
	}
}

func contains(p Palette, c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}
