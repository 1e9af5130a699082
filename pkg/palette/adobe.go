package palette

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/matzehuels/printlayout/pkg/errors"
)

// swatchSelector matches Adobe Color swatch classes such as ".Ocean-Dusk-3-hex".
var swatchSelector = regexp.MustCompile(`^\.([A-Za-z0-9_-]+)-([1-5])-hex$`)

// ParseAdobeCSS reads an Adobe Color CSS export and returns the theme name
// embedded in its swatch selectors together with the five hex swatches.
// Only the "-hex" rules are read; rgba and other sections are ignored.
func ParseAdobeCSS(r io.Reader) (string, Palette, error) {
	var p Palette

	data, err := io.ReadAll(r)
	if err != nil {
		return "", p, errors.Wrap(errors.ErrCodeInvalidPalette, err, "read palette css")
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var (
		name  string
		found int
	)
	index := -1
	for {
		gt, _, tok := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				return "", p, errors.Wrap(errors.ErrCodeInvalidPalette, err, "parse palette css")
			}
			if found != Size {
				return "", p, errors.New(errors.ErrCodeInvalidPalette, "palette css has %d of %d hex swatches", found, Size)
			}
			return name, p, nil

		case css.BeginRulesetGrammar:
			index = -1
			m := swatchSelector.FindStringSubmatch(joinTokens(parser.Values()))
			if m == nil {
				continue
			}
			n, _ := strconv.Atoi(m[2])
			if name == "" {
				name = m[1]
			}
			index = n - 1

		case css.DeclarationGrammar:
			if index < 0 || string(tok) != "color" {
				continue
			}
			c, err := ParseColor(joinTokens(parser.Values()))
			if err != nil {
				return "", p, errors.Wrap(errors.ErrCodeInvalidPalette, err, "swatch %d", index+1)
			}
			if p[index] == "" {
				found++
			}
			p[index] = c

		case css.EndRulesetGrammar:
			index = -1
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		sb.Write(t.Data)
	}
	return sb.String()
}
