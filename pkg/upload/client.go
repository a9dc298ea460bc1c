// Package upload pushes compiled collections to the Postman API, one POST
// per configured API key.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/blackcoderx/postgen/pkg/postman"
)

// DefaultEndpoint is the Postman collections API.
const DefaultEndpoint = "https://api.getpostman.com/collections"

// Client uploads collections. Requests for different keys run concurrently;
// a shared limiter spaces them out.
type Client struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates an uploader. timeout bounds each individual request;
// endpoint "" selects the default API.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(4), 1),
	}
}

// Result is the outcome for one API key. Outcomes are captured
// independently so one failure never masks the others.
type Result struct {
	Key    string // masked form, safe to print
	Status int    // HTTP status, 0 when the request never completed
	Err    error
}

// Results aggregates per-key outcomes.
type Results []Result

// Failed returns the subset of results that did not succeed.
func (rs Results) Failed() Results {
	var failed Results
	for _, r := range rs {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err folds all failures into a single error, or nil when every upload
// succeeded.
func (rs Results) Err() error {
	failed := rs.Failed()
	if len(failed) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(failed))
	for _, r := range failed {
		msgs = append(msgs, fmt.Sprintf("%s: %v", r.Key, r.Err))
	}
	return fmt.Errorf("%d of %d uploads failed: %s", len(failed), len(rs), strings.Join(msgs, "; "))
}

// payload is the request body shape the collections API expects.
type payload struct {
	Collection *postman.Collection `json:"collection"`
}

// PushAll uploads the collection once per key. Each request carries its own
// copy of the document with the name suffixed by an upload timestamp, and
// runs under the batch context plus the per-request timeout. Results come
// back in key order.
func (c *Client) PushAll(ctx context.Context, col *postman.Collection, keys []string) Results {
	results := make(Results, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			results[i] = c.push(ctx, col, key)
		}(i, key)
	}
	wg.Wait()
	return results
}

// push performs one upload. The collection struct is copied so concurrent
// pushes never share a mutable document.
func (c *Client) push(ctx context.Context, col *postman.Collection, key string) Result {
	res := Result{Key: MaskKey(key)}

	if err := c.limiter.Wait(ctx); err != nil {
		res.Err = fmt.Errorf("rate limit wait: %w", err)
		return res
	}

	stamped := *col
	stamped.Info.Name = fmt.Sprintf("%s %s", col.Info.Name, time.Now().Format("2006-01-02 15:04:05"))

	body, err := json.Marshal(payload{Collection: &stamped})
	if err != nil {
		res.Err = fmt.Errorf("failed to marshal collection: %w", err)
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		res.Err = fmt.Errorf("failed to create request: %w", err)
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", key)

	resp, err := c.client.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("request failed: %w", err)
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		res.Err = fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	return res
}

// MaskKey keeps a short prefix of an API key for reporting.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8] + "****"
}
