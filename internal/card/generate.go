package card

import (
	"context"
	"image"
	"net/http"
	"net/url"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/speakercard/internal/fonts"
	imagepkg "github.com/youruser/speakercard/internal/image"
	"github.com/youruser/speakercard/pkg/errs"
)

// Options tune one composition. Zero width/height mean the defaults.
// QRText, when set, overlays a QR code at the bottom right.
type Options struct {
	Width  int
	Height int
	QRText string
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Generator is the public entry point: it validates arguments, loads
// the two source images, resolves the font and delegates to Compose.
// Safe for concurrent use; every call works on its own buffers.
type Generator struct {
	client      *http.Client
	resolver    *fonts.Resolver
	defaultFont string
	logger      *zap.Logger
}

func NewGenerator(client *http.Client, resolver *fonts.Resolver, logger *zap.Logger) *Generator {
	if client == nil {
		client = imagepkg.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:      client,
		resolver:    resolver,
		defaultFont: fonts.DefaultName,
		logger:      logger,
	}
}

// WithDefaultFont overrides the family tried after a candidate list is
// exhausted. Empty keeps the current default.
func (g *Generator) WithDefaultFont(name string) *Generator {
	if name != "" {
		g.defaultFont = name
	}
	return g
}

// FromURLs fetches both images over HTTP and composes the card.
// All argument checks run before any network I/O.
func (g *Generator) FromURLs(ctx context.Context, speakerURL, logoURL, speakerName string, sel fonts.Selector, opts Options) (image.Image, error) {
	if err := checkURL(speakerURL, "speaker URL"); err != nil {
		return nil, err
	}
	if err := checkURL(logoURL, "logo URL"); err != nil {
		return nil, err
	}
	if err := checkCommon(speakerName, sel); err != nil {
		return nil, err
	}

	speaker, err := imagepkg.Fetch(ctx, g.client, speakerURL)
	if err != nil {
		return nil, err
	}
	logo, err := imagepkg.Fetch(ctx, g.client, logoURL)
	if err != nil {
		return nil, err
	}
	return g.compose(speaker, logo, speakerName, sel, opts)
}

// FromFiles loads both images from disk and composes the card.
func (g *Generator) FromFiles(ctx context.Context, speakerPath, logoPath, speakerName string, sel fonts.Selector, opts Options) (image.Image, error) {
	if speakerPath == "" {
		return nil, errs.Invalidf("speaker image path is required")
	}
	if logoPath == "" {
		return nil, errs.Invalidf("logo image path is required")
	}
	if err := checkCommon(speakerName, sel); err != nil {
		return nil, err
	}

	speaker, err := imagepkg.Open(speakerPath)
	if err != nil {
		return nil, err
	}
	logo, err := imagepkg.Open(logoPath)
	if err != nil {
		return nil, err
	}
	return g.compose(speaker, logo, speakerName, sel, opts)
}

func (g *Generator) compose(speaker, logo image.Image, speakerName string, sel fonts.Selector, opts Options) (image.Image, error) {
	fam, err := g.resolver.Resolve(sel, g.defaultFont)
	if err != nil {
		return nil, err
	}
	opts = opts.normalized()

	out := Compose(speaker, logo, speakerName, fam, opts.Width, opts.Height)

	if opts.QRText != "" {
		qr, err := imagepkg.QRImage(opts.QRText, logoSize)
		if err != nil {
			return nil, err
		}
		pos := image.Pt(opts.Width-logoSize-40, opts.Height-logoSize-40)
		out = imaging.Overlay(out, qr, pos, 1.0)
	}

	g.logger.Debug("card composed",
		zap.String("speaker", speakerName),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height))
	return out, nil
}

func checkCommon(speakerName string, sel fonts.Selector) error {
	if speakerName == "" {
		return errs.Invalidf("speaker name is required")
	}
	if sel.IsZero() {
		return errs.Invalidf("font selector is required")
	}
	// an empty candidate list is a contract violation, caught before any I/O
	if sel.Family == nil && sel.Path == "" && len(sel.Names) == 0 {
		return errs.Invalidf("font name list is required")
	}
	return nil
}

func checkURL(raw, param string) error {
	if raw == "" {
		return errs.Invalidf("%s is required", param)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errs.Invalidf("%s %q is not an absolute URL", param, raw)
	}
	return nil
}
