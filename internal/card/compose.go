package card

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/speakercard/internal/fonts"
)

// Default canvas dimensions, the og:image convention.
const (
	DefaultWidth  = 1200
	DefaultHeight = 630
)

const (
	brandText = "MoreSpeakers.com"
	labelText = "Speaker Profile"

	logoSize = 110
	logoTop  = 40
)

var (
	gradientFrom = color.NRGBA{R: 0xE9, G: 0x54, B: 0x20, A: 0xFF}
	gradientTo   = color.NRGBA{R: 0xF7, G: 0xC8, B: 0x73, A: 0xFF}
)

// Compose draws a speaker card: gradient background, speaker photo
// filling the left half, logo and text on the right. Pure layout over
// the given inputs; validation happens in the loaders. The source
// images are not mutated, resized copies are drawn instead. The layout
// constants are tuned for 1200x630 and applied as-is at other sizes.
func Compose(speaker, logo image.Image, speakerName string, fam *fonts.Family, width, height int) image.Image {
	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, float64(width), float64(height))
	grad.AddColorStop(0, gradientFrom)
	grad.AddColorStop(1, gradientTo)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	// left half: speaker photo, aspect-preserving crop to fill
	sp := imaging.Fill(speaker, width/2, height, imaging.Center, imaging.Lanczos)
	dc.DrawImage(sp, 0, 0)

	// logo centered within the right half
	lg := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)
	dc.DrawImage(lg, width/2+width/4-logoSize/2, logoTop)

	textLeft := float64(width/2 + 40)
	brandTop := 200.0
	labelTop := brandTop + 70
	nameTop := labelTop + 90

	dc.SetColor(color.White)
	dc.SetFontFace(fam.BoldFace(58))
	dc.DrawString(brandText, textLeft, brandTop)
	dc.SetFontFace(fam.Face(40))
	dc.DrawString(labelText, textLeft, labelTop)
	dc.SetFontFace(fam.BoldFace(48))
	dc.DrawStringWrapped(speakerName, textLeft, nameTop, 0, 0, float64(width/2-80), 1.5, gg.AlignLeft)

	return dc.Image()
}
