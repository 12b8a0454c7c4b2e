package scrape

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL, sleeping delays[i] before retry i+1.
// Missing pages and sites that block the client are not retried: another
// attempt would get the same answer. The logger, if not nil, receives one
// line per retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if logger != nil {
			logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// blocker is implemented by errors that report a refused request.
type blocker interface {
	Blocked() bool
}

func retryable(err error) bool {
	if digest.ErrorCode(err) == digest.ENOTFOUND {
		return false
	}
	var b blocker
	return !errors.As(err, &b) || !b.Blocked()
}
