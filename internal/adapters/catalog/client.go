// Package catalog is the HTTP client for the upstream place catalog.
package catalog

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

const maxPages = 1000

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// GetPlace fetches one raw place record (modern endpoint first, then legacy).
func (c *Client) GetPlace(ctx context.Context, id string) (map[string]any, error) {
	esc := url.PathEscape(id)
	candidates := []string{
		fmt.Sprintf("%s/places/%s", c.base, esc), // preferred
		fmt.Sprintf("%s/place/%s", c.base, esc),  // legacy
	}
	var out map[string]any
	if err := c.getFirst(ctx, "place", candidates, &out); err != nil {
		return nil, err
	}
	// some deployments wrap the record
	if inner, ok := out["data"].(map[string]any); ok {
		return inner, nil
	}
	return out, nil
}

// ListPlaceIDs walks the paginated /places index.
func (c *Client) ListPlaceIDs(ctx context.Context) ([]string, error) {
	var ids []string
	cursor := ""
	for page := 0; page < maxPages; page++ {
		u := c.base + "/places"
		if cursor != "" {
			u += "?cursor=" + url.QueryEscape(cursor)
		}
		var pg indexPage
		if err := c.get(ctx, "places", u, &pg); err != nil {
			return nil, err
		}
		ids = append(ids, pg.ids()...)
		if pg.Next == "" || pg.Next == cursor {
			return ids, nil
		}
		cursor = pg.Next
	}
	return ids, fmt.Errorf("catalog: index exceeds %d pages", maxPages)
}

// indexPage accepts {"data":[...],"next":"..."} where items are ids or objects with an id.
type indexPage struct {
	Data []any  `json:"data"`
	Next string `json:"next"`
}

func (p indexPage) ids() []string {
	out := make([]string, 0, len(p.Data))
	for _, it := range p.Data {
		switch v := it.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case map[string]any:
			switch id := v["id"].(type) {
			case string:
				out = append(out, id)
			case float64:
				out = append(out, strconv.FormatFloat(id, 'f', -1, 64))
			}
		}
	}
	return out
}

// ---- Internals ----

var (
	ErrNotFound     = fmt.Errorf("catalog: %w", domain.ErrNotFound)
	ErrUnauthorized = errors.New("catalog: unauthorized")
	ErrForbidden    = errors.New("catalog: forbidden")
)

func (c *Client) getFirst(ctx context.Context, endpoint string, urls []string, out any) error {
	var last error
	for _, u := range urls {
		if err := c.get(ctx, endpoint, u, out); err != nil {
			if errors.Is(err, ErrNotFound) {
				last = err
				continue // try next pattern
			}
			return err // non-404: stop early
		}
		return nil
	}
	if last != nil {
		return last
	}
	return errors.New("no candidate URL succeeded")
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-API-Key", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "trip-planner/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("catalog", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("catalog", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("catalog: decode %s: %w", endpoint, err)
			}
			return nil

		case http.StatusNotFound, http.StatusGone:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff: 200ms doubling per attempt, plus up to 50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
