package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/logging"
)

// Loader fetches the catalog document once per run. Any failure falls back
// to the built-in set; the failure is logged, never surfaced to the user.
type Loader struct {
	url     string
	timeout time.Duration
	client  *http.Client
	log     logging.Logger
}

func NewLoader(url string, timeout time.Duration, log logging.Logger) *Loader {
	return &Loader{
		url:     url,
		timeout: timeout,
		client:  &http.Client{},
		log:     log,
	}
}

// Load returns the fetched catalog, or Defaults when the URL is unset or
// the fetch/parse fails.
func (l *Loader) Load(ctx context.Context) Document {
	if l.url == "" {
		return Defaults()
	}

	doc, err := l.fetch(ctx)
	if err != nil {
		l.log.Warn(ctx, "catalog load failed, using built-in set", "url", l.url, "error", err)
		return Defaults()
	}

	return *doc
}

// fetch performs the GET with a per-attempt timeout and a short constant
// backoff. Network and 5xx failures retry; a parse failure does not.
func (l *Loader) fetch(ctx context.Context) (*Document, error) {
	var doc Document

	backoff := retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, l.url, nil)
		if err != nil {
			return err
		}

		resp, err := l.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("%w: unexpected status %s", common.ErrCatalogLoad, resp.Status)
			if resp.StatusCode >= 500 {
				return retry.RetryableError(err)
			}
			return err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		if err := json.Unmarshal(body, &doc); err != nil {
			return fmt.Errorf("%w: %v", common.ErrCatalogLoad, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &doc, nil
}
