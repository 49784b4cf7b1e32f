package imagepkg

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/youruser/speakercard/pkg/errs"
)

// DefaultClient is used when the caller does not supply one.
var DefaultClient = &http.Client{Timeout: 10 * time.Second}

// Fetch downloads and decodes an image. A non-success status is a
// distinct remote-fetch failure, never silently treated as image data.
func Fetch(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %d: %w", url, resp.StatusCode, errs.ErrRemoteFetch)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// Open loads and decodes an image from disk. Nonexistence is surfaced
// as a missing-resource failure before any decode attempt.
func Open(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Missingf("image file %s", path)
		}
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
