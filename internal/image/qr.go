package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG returns PNG bytes of a QR code for the given text.
func QRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// QRImage returns a decoded QR code for composition onto a card.
func QRImage(text string, size int) (image.Image, error) {
	b, err := QRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
