package fonts

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ThemeFonts is the default candidate list for card text, ordered by
// preference. Mirrors the web theme's font-family stack.
var ThemeFonts = []string{
	"Ubuntu",
	"-apple-system",
	"BlinkMacSystemFont",
	"Segoe UI",
	"Roboto",
	"Helvetica Neue",
	"Arial",
	"sans-serif",
	"Apple Color Emoji",
	"Segoe UI Emoji",
	"Segoe UI Symbol",
}

// Family is a resolved typeface from which faces at any size are derived.
// The bold variant is optional; Bold falls back to the regular font when
// no separate bold file was found.
type Family struct {
	Name    string
	regular *truetype.Font
	bold    *truetype.Font
}

func (fam *Family) Face(size float64) font.Face {
	return newFace(fam.regular, size)
}

func (fam *Family) BoldFace(size float64) font.Face {
	if fam.bold != nil {
		return newFace(fam.bold, size)
	}
	return newFace(fam.regular, size)
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Selector picks the font for one composition: an ordered candidate name
// list, a font file on disk, or an already resolved family. Exactly one
// field should be set.
type Selector struct {
	Names  []string
	Path   string
	Family *Family
}

func SelectNames(names ...string) Selector { return Selector{Names: names} }
func SelectFile(path string) Selector      { return Selector{Path: path} }
func SelectFamily(fam *Family) Selector    { return Selector{Family: fam} }

// IsZero reports whether no selection was made at all.
func (s Selector) IsZero() bool {
	return s.Family == nil && s.Path == "" && s.Names == nil
}
