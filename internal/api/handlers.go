package api

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/speakercard/internal/card"
	"github.com/youruser/speakercard/internal/fonts"
	imagepkg "github.com/youruser/speakercard/internal/image"
	"github.com/youruser/speakercard/pkg/errs"
)

// Handler serves the card-composition endpoints. defaultSel is the
// font used when a request names none, typically the theme list.
type Handler struct {
	gen        *card.Generator
	defaultSel fonts.Selector
	logger     *zap.Logger
}

func New(gen *card.Generator, defaultSel fonts.Selector, logger *zap.Logger) *Handler {
	if defaultSel.IsZero() {
		defaultSel = fonts.SelectNames(fonts.ThemeFonts...)
	}
	return &Handler{gen: gen, defaultSel: defaultSel, logger: logger}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type cardRequest struct {
	SpeakerURL  string   `json:"speaker_url"`
	LogoURL     string   `json:"logo_url"`
	SpeakerName string   `json:"speaker_name"`
	FontNames   []string `json:"font_names"`
	FontFile    string   `json:"font_file"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	QRText      string   `json:"qr_text"`
}

// cardHandler composes a speaker card from two remote images and
// returns it as PNG bytes.
func (h *Handler) cardHandler(c *gin.Context) {
	var req cardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := h.defaultSel
	switch {
	case req.FontFile != "":
		sel = fonts.SelectFile(req.FontFile)
	case len(req.FontNames) > 0:
		sel = fonts.SelectNames(req.FontNames...)
	}

	img, err := h.gen.FromURLs(c.Request.Context(),
		req.SpeakerURL, req.LogoURL, req.SpeakerName, sel,
		card.Options{Width: req.Width, Height: req.Height, QRText: req.QRText})
	if err != nil {
		h.logger.Warn("card generation failed", zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			size = v
		}
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// statusFor maps the failure tiers to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrMissingResource):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRemoteFetch):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrNoFontAvailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
