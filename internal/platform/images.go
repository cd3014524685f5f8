package platform

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// imageClient fetches remote pictures. Deadlines come from the caller's context.
var imageClient = &http.Client{}

// LoadImage reads and decodes the image behind a Fyne storage URI.
// Remote http(s) reads are bound to ctx, so a stalled server is abandoned
// once the deadline passes.
func LoadImage(ctx context.Context, rawURI string) (image.Image, error) {
	uri, err := storage.ParseURI(rawURI)
	if err != nil {
		return nil, fmt.Errorf("invalid image URI %q: %w", rawURI, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := openImage(ctx, uri)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to open %s: %w", uri, err)
	}
	defer reader.Close()

	img, err := DecodeImage(reader)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to load %s: %w", uri, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// openImage opens http(s) URIs with a request bound to ctx and everything
// else through the Fyne storage repositories
func openImage(ctx context.Context, uri fyne.URI) (io.ReadCloser, error) {
	switch uri.Scheme() {
	case "http", "https":
		return fetchImage(ctx, uri.String())
	default:
		return storage.Reader(uri)
	}
}

func fetchImage(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// DecodeImage decodes a PNG or JPEG stream
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
