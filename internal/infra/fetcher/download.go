// Package fetcher downloads dataset files from government hosts with a
// bounded redirect chain, a per-fetch timeout, an outbound rate limit and
// a circuit breaker shared across refresh runs.
package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/resilience/circuitbreaker"

	"golang.org/x/time/rate"
)

// ErrTooManyRedirects is returned when a redirect chain exceeds the
// configured bound.
var ErrTooManyRedirects = errors.New("too many redirects")

// Downloader retrieves dataset files over HTTP(S) and stages them in the
// configured work directory. It is safe for concurrent use.
type Downloader struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	limiter *rate.Limiter
	config  Config
}

// NewDownloader creates a Downloader from the given configuration. The
// work directory is created if it does not exist.
func NewDownloader(config Config) (*Downloader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("create work directory %s: %w", config.WorkDir, err)
	}

	d := &Downloader{
		breaker: circuitbreaker.New(circuitbreaker.DatasetFetchConfig()),
		limiter: rate.NewLimiter(rate.Limit(config.RatePerSecond), config.Burst),
		config:  config,
	}

	d.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= d.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), d.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return d, nil
}

// Download fetches url and writes the body to localFileName inside the
// work directory, returning the staged path.
//
// Failure mapping:
//   - transport failure           -> *entity.NetworkError
//   - non-2xx terminal status     -> *entity.FetchError
//   - HTML body (error page)      -> *entity.ParseError
//   - empty body                  -> *entity.ParseError
//
// Redirects are followed up to the configured bound; exceeding it is a
// NetworkError wrapping ErrTooManyRedirects. A partially written file is
// removed on any failure.
func (d *Downloader) Download(ctx context.Context, url, localFileName string) (string, error) {
	if err := validateURL(url, d.config.DenyPrivateIPs); err != nil {
		return "", err
	}
	if err := d.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.doDownload(ctx, url, localFileName)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (d *Downloader) doDownload(ctx context.Context, url, localFileName string) (string, error) {
	logger := slog.Default()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", d.config.UserAgent)
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", &entity.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &entity.FetchError{URL: url, Status: resp.StatusCode}
	}

	destPath := filepath.Join(d.config.WorkDir, filepath.Base(localFileName))
	written, err := d.writeBody(destPath, resp.Body)
	if err != nil {
		os.Remove(destPath)
		return "", err
	}
	if written == 0 {
		os.Remove(destPath)
		return "", &entity.ParseError{Reason: fmt.Sprintf("empty response body from %s", url)}
	}

	// Government endpoints serve HTML error pages with a 200 status;
	// those are failures, not data.
	if reason, isHTML := detectHTML(destPath); isHTML {
		os.Remove(destPath)
		return "", &entity.ParseError{Reason: reason}
	}

	logger.Debug("download completed",
		slog.String("url", url),
		slog.String("path", destPath),
		slog.Int64("bytes", written),
		slog.Duration("duration", time.Since(start)))

	return destPath, nil
}

// writeBody streams the response body to path, enforcing MaxBodySize.
func (d *Downloader) writeBody(path string, body io.Reader) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create staging file %s: %w", path, err)
	}
	defer out.Close()

	written, err := io.Copy(out, io.LimitReader(body, d.config.MaxBodySize+1))
	if err != nil {
		return written, fmt.Errorf("write staging file %s: %w", path, err)
	}
	if written > d.config.MaxBodySize {
		return written, fmt.Errorf("response body exceeds %d byte limit", d.config.MaxBodySize)
	}
	return written, nil
}
