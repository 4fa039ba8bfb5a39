package font

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// findFile locates a font file by name on the system.
var findFile = findfont.Find

// Load parses s and returns a face for it.
func Load(s string) (font.Face, error) {
	spec, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return LoadSpec(spec)
}

// LoadSpec returns a face for spec. Families are tried in order; generic
// families and unknown fonts fall back to the built-in Go fonts.
func LoadSpec(spec Spec) (font.Face, error) {
	data := resolve(spec)

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font for %q: %w", spec.String(), err)
	}

	// At 72 DPI one point is one pixel.
	return truetype.NewFace(f, &truetype.Options{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func resolve(spec Spec) []byte {
	for _, fam := range spec.Families {
		switch strings.ToLower(fam) {
		case "sans-serif", "serif", "system-ui", "cursive", "fantasy":
			return builtin(spec, false)
		case "monospace":
			return builtin(spec, true)
		}
		if data, ok := system(fam, spec); ok {
			return data
		}
	}
	return builtin(spec, false)
}

func builtin(spec Spec, mono bool) []byte {
	switch {
	case mono && spec.Bold:
		return gomonobold.TTF
	case mono:
		return gomono.TTF
	case spec.Bold && spec.Italic:
		return gobolditalic.TTF
	case spec.Bold:
		return gobold.TTF
	case spec.Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// system looks up family in the installed fonts, preferring a bold file when
// the spec asks for one.
func system(family string, spec Spec) ([]byte, bool) {
	base := strings.ReplaceAll(family, " ", "")
	names := []string{base + ".ttf"}
	if spec.Bold {
		names = append([]string{base + "-Bold.ttf", base + "Bold.ttf"}, names...)
	}

	for _, name := range names {
		path, err := findFile(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return data, true
	}
	return nil, false
}
