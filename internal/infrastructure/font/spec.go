// Package font turns CSS font shorthand strings ("bold 30px sans-serif")
// into font faces usable on a gg drawing surface.
package font

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned when a font string has no size or family.
var ErrInvalidSpec = errors.New("invalid font spec")

// Spec is a parsed CSS font shorthand.
type Spec struct {
	Italic   bool
	Bold     bool
	Size     float64  // Pixels
	Families []string // In order of preference
}

// Parse reads the CSS font shorthand:
//
//	[style] [variant] [weight] [stretch] size[/line-height] family[, family]*
//
// Sizes in px, pt, em and rem are accepted; em and rem are relative to 16px.
func Parse(s string) (Spec, error) {
	fields := strings.Fields(s)
	var spec Spec

	i := 0
	for ; i < len(fields); i++ {
		tok := strings.ToLower(fields[i])
		if size, ok := parseSize(tok); ok {
			spec.Size = size
			i++
			break
		}
		switch tok {
		case "italic", "oblique":
			spec.Italic = true
		case "bold", "bolder", "600", "700", "800", "900":
			spec.Bold = true
		case "normal", "lighter", "small-caps", "100", "200", "300", "400", "500",
			"condensed", "semi-condensed", "expanded", "semi-expanded":
		default:
			return Spec{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSpec, fields[i], s)
		}
	}
	if spec.Size == 0 {
		return Spec{}, fmt.Errorf("%w: no size in %q", ErrInvalidSpec, s)
	}

	for _, fam := range strings.Split(strings.Join(fields[i:], " "), ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam != "" {
			spec.Families = append(spec.Families, fam)
		}
	}
	if len(spec.Families) == 0 {
		return Spec{}, fmt.Errorf("%w: no family in %q", ErrInvalidSpec, s)
	}

	return spec, nil
}

func parseSize(tok string) (float64, bool) {
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		tok = tok[:slash]
	}

	mul, div := 0.0, 1.0
	num := tok
	switch {
	case strings.HasSuffix(tok, "rem"):
		mul, num = 16, strings.TrimSuffix(tok, "rem")
	case strings.HasSuffix(tok, "em"):
		mul, num = 16, strings.TrimSuffix(tok, "em")
	case strings.HasSuffix(tok, "px"):
		mul, num = 1, strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		mul, div, num = 96, 72, strings.TrimSuffix(tok, "pt")
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * mul / div, true
}

// String formats the spec back into CSS shorthand.
func (s Spec) String() string {
	var b strings.Builder
	if s.Italic {
		b.WriteString("italic ")
	}
	if s.Bold {
		b.WriteString("bold ")
	}
	b.WriteString(strconv.FormatFloat(s.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(strings.Join(s.Families, ", "))
	return b.String()
}
