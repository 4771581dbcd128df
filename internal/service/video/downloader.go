package video

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	downloadAttempts = 3
	downloadBackoff  = 2 * time.Second
	downloadTimeout  = 30 * time.Second
)

// imageDownloader fetches generated image assets to local files with
// bounded retry.
type imageDownloader struct {
	client *http.Client
}

func newImageDownloader() *imageDownloader {
	return &imageDownloader{
		client: &http.Client{Timeout: downloadTimeout},
	}
}

// download fetches url into filepath, retrying up to downloadAttempts
// times with a fixed backoff. Exhausted retries return the last error.
func (d *imageDownloader) download(ctx context.Context, url, filepath string) error {
	var lastErr error
	for attempt := 1; attempt <= downloadAttempts; attempt++ {
		if err := d.fetch(ctx, url, filepath); err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt).Int("max", downloadAttempts).Msg("image download failed")
			if attempt < downloadAttempts {
				select {
				case <-time.After(downloadBackoff):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("download image after %d attempts: %w", downloadAttempts, lastErr)
}

func (d *imageDownloader) fetch(ctx context.Context, url, filepath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(filepath)
		return err
	}
	return nil
}
