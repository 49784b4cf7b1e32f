// Sample driver: composes a card from generated placeholder images and
// the embedded Go font, writing out/card.png. Exercises the file-based
// entry point end to end without external assets.
package main

import (
	"context"
	"image/color"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/speakercard/internal/card"
	"github.com/youruser/speakercard/internal/fonts"
	"github.com/youruser/speakercard/internal/util"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := util.EnsureDir("out"); err != nil {
		return err
	}

	// placeholder sources: a dark portrait stand-in and a light logo square
	speakerPath := filepath.Join("out", "speaker.png")
	logoPath := filepath.Join("out", "logo.png")
	speaker := imaging.New(800, 1000, color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF})
	logo := imaging.New(256, 256, color.NRGBA{R: 0xFD, G: 0xFD, B: 0xFD, A: 0xFF})
	if err := imaging.Save(speaker, speakerPath); err != nil {
		return err
	}
	if err := imaging.Save(logo, logoPath); err != nil {
		return err
	}

	fam, err := fonts.FromBytes("Go Regular", goregular.TTF)
	if err != nil {
		return err
	}

	logger := zap.NewExample()
	gen := card.NewGenerator(nil, fonts.NewResolver(logger), logger)
	img, err := gen.FromFiles(context.Background(), speakerPath, logoPath,
		"John Doe", fonts.SelectFamily(fam), card.Options{QRText: "https://morespeakers.com/john-doe"})
	if err != nil {
		return err
	}

	outPath := filepath.Join("out", "card.png")
	if err := imaging.Save(img, outPath); err != nil {
		return err
	}
	log.Println("wrote", outPath)
	return nil
}
