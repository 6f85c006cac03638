package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const userAgent = "jobdeck/0.1"

func getJSONWithRetry(ctx context.Context, client *http.Client, url string, headers map[string]string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			sleepBackoff(ctx, i, 0)
			continue
		}
		var retryAfter time.Duration
		var permanent bool
		func() {
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests {
				retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				// A 4xx other than 429 will not heal on retry.
				permanent = resp.StatusCode >= 400 && resp.StatusCode < 500
				return
			}
			b, err := readAllLimit(resp.Body, 8<<20)
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		if permanent {
			return nil, lastErr
		}
		sleepBackoff(ctx, i, retryAfter)
	}
	return nil, lastErr
}

func sleepBackoff(ctx context.Context, attempt int, override time.Duration) {
	d := time.Duration(300*(attempt+1)) * time.Millisecond
	if override > 0 {
		d = override
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	// Clamp so one hostile header cannot stall a fetch run.
	if secs > 30 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	// Read one byte past the limit so a body of exactly max bytes
	// is still accepted.
	lr := &io.LimitedReader{R: r, N: max + 1}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
