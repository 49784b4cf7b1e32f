package card

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youruser/speakercard/internal/fonts"
	"github.com/youruser/speakercard/pkg/errs"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	logger := zap.NewNop()
	return NewGenerator(nil, fonts.NewResolver(logger), logger)
}

// writePNG encodes a small solid image to disk and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, dummyImage(w, h, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})))
	return path
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, dummyImage(w, h, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})))
	return buf.Bytes()
}

func TestFromURLsValidation(t *testing.T) {
	g := testGenerator(t)
	ctx := context.Background()
	sel := fonts.SelectFamily(testFamily(t))

	t.Run("empty speaker URL", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "", "https://example.com/logo.png", "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "speaker URL")
	})

	t.Run("empty logo URL", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "https://example.com/s.png", "", "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "logo URL")
	})

	t.Run("relative URL", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "/speaker.png", "https://example.com/logo.png", "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("garbage URL", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "::not a url::", "https://example.com/logo.png", "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("empty speaker name", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "https://example.com/s.png", "https://example.com/l.png", "", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("empty font selector", func(t *testing.T) {
		_, err := g.FromURLs(ctx, "https://example.com/s.png", "https://example.com/l.png", "John Doe", fonts.Selector{}, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestFromFilesValidation(t *testing.T) {
	g := testGenerator(t)
	ctx := context.Background()
	sel := fonts.SelectFamily(testFamily(t))
	dir := t.TempDir()
	speaker := writePNG(t, dir, "speaker.png", 100, 100)
	logo := writePNG(t, dir, "logo.png", 100, 100)

	t.Run("empty speaker path", func(t *testing.T) {
		_, err := g.FromFiles(ctx, "", logo, "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("empty logo path", func(t *testing.T) {
		_, err := g.FromFiles(ctx, speaker, "", "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("missing speaker file", func(t *testing.T) {
		_, err := g.FromFiles(ctx, filepath.Join(dir, "nope.png"), logo, "John Doe", sel, Options{})
		assert.ErrorIs(t, err, errs.ErrMissingResource)
	})

	t.Run("empty font name list fails before any file I/O", func(t *testing.T) {
		_, err := g.FromFiles(ctx, filepath.Join(dir, "nope.png"), logo, "John Doe", fonts.SelectNames(), Options{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestFromURLsRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	g := testGenerator(t)
	sel := fonts.SelectFamily(testFamily(t))
	_, err := g.FromURLs(context.Background(), srv.URL+"/s.png", srv.URL+"/l.png", "John Doe", sel, Options{})
	assert.ErrorIs(t, err, errs.ErrRemoteFetch)
}

func TestFromURLsSuccess(t *testing.T) {
	body := pngBytes(t, 100, 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	g := testGenerator(t)
	sel := fonts.SelectFamily(testFamily(t))
	img, err := g.FromURLs(context.Background(), srv.URL+"/s.png", srv.URL+"/l.png", "John Doe", sel, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestFromFilesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	speaker := writePNG(t, dir, "speaker.png", 100, 100)
	logo := writePNG(t, dir, "logo.png", 100, 100)
	g := testGenerator(t)
	sel := fonts.SelectFamily(testFamily(t))

	t.Run("default dimensions", func(t *testing.T) {
		img, err := g.FromFiles(context.Background(), speaker, logo, "John Doe", sel, Options{})
		require.NoError(t, err)
		assert.Equal(t, DefaultWidth, img.Bounds().Dx())
		assert.Equal(t, DefaultHeight, img.Bounds().Dy())
	})

	t.Run("explicit dimensions", func(t *testing.T) {
		img, err := g.FromFiles(context.Background(), speaker, logo, "John Doe", sel, Options{Width: 600, Height: 315})
		require.NoError(t, err)
		assert.Equal(t, 600, img.Bounds().Dx())
		assert.Equal(t, 315, img.Bounds().Dy())
	})

	t.Run("qr overlay keeps dimensions", func(t *testing.T) {
		img, err := g.FromFiles(context.Background(), speaker, logo, "John Doe", sel,
			Options{QRText: "https://morespeakers.com/john-doe"})
		require.NoError(t, err)
		assert.Equal(t, DefaultWidth, img.Bounds().Dx())
		assert.Equal(t, DefaultHeight, img.Bounds().Dy())
	})
}

func TestFromFilesWithFontFile(t *testing.T) {
	dir := t.TempDir()
	speaker := writePNG(t, dir, "speaker.png", 100, 100)
	logo := writePNG(t, dir, "logo.png", 100, 100)
	g := testGenerator(t)

	t.Run("missing font file is a missing resource", func(t *testing.T) {
		_, err := g.FromFiles(context.Background(), speaker, logo, "John Doe",
			fonts.SelectFile(filepath.Join(dir, "nope.ttf")), Options{})
		assert.ErrorIs(t, err, errs.ErrMissingResource)
	})
}
