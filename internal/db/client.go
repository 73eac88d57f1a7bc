// Package db wraps the Elasticsearch client with the narrow operation set the
// repositories consume: search, point lookup, index, partial update, delete.
// The engine is a black box reached over its JSON protocol; this package owns
// request encoding, response decoding, and error normalization.
package db

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kitaplik/kitaplik/internal/metrics"
)

// Config holds engine connection settings.
type Config struct {
	Addresses []string
	Username  string
	Password  string

	// Transport overrides the HTTP transport. Tests stub the engine with it.
	Transport http.RoundTripper
}

// Client is a thin wrapper over the vendor client. The vendor client pools
// connections and is safe for concurrent use, so Client holds no state of
// its own and needs no locking.
type Client struct {
	es *elasticsearch.Client
}

// NewClient creates an engine client with basic authentication.
func NewClient(cfg Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create engine client: %w", err)
	}
	return &Client{es: es}, nil
}

// Search executes a query with offset/limit pagination and returns the
// matched hits with their out-of-band identifiers.
func (c *Client) Search(ctx context.Context, index string, size, from int, q any) (*SearchResult, error) {
	body := map[string]any{"query": q}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, &Error{Op: OpSearch, Err: fmt.Errorf("encode query: %w", err)}
	}

	start := time.Now()
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithSize(size),
		c.es.Search.WithFrom(from),
		c.es.Search.WithBody(&buf),
		c.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		metrics.ObserveEngineRequest(OpSearch, "transport_error", time.Since(start))
		return nil, &Error{Op: OpSearch, Err: err}
	}
	defer res.Body.Close()
	metrics.ObserveEngineRequest(OpSearch, res.Status(), time.Since(start))

	if res.IsError() {
		return nil, &Error{Op: OpSearch, Err: responseError(res)}
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, &Error{Op: OpSearch, Err: fmt.Errorf("decode response: %w", err)}
	}

	out := &SearchResult{
		Total: sr.Hits.Total.Value,
		Hits:  make([]Hit, 0, len(sr.Hits.Hits)),
	}
	for _, h := range sr.Hits.Hits {
		out.Hits = append(out.Hits, Hit{ID: h.ID, Source: h.Source})
	}
	return out, nil
}

// Get fetches a single document by id. Returns ErrNotFound when the engine
// does not hold the id.
func (c *Client) Get(ctx context.Context, index, id string) (*Hit, error) {
	start := time.Now()
	res, err := c.es.Get(index, id, c.es.Get.WithContext(ctx))
	if err != nil {
		metrics.ObserveEngineRequest(OpGet, "transport_error", time.Since(start))
		return nil, &Error{Op: OpGet, Err: err}
	}
	defer res.Body.Close()
	metrics.ObserveEngineRequest(OpGet, res.Status(), time.Since(start))

	if res.StatusCode == http.StatusNotFound {
		return nil, &Error{Op: OpGet, Err: ErrNotFound}
	}
	if res.IsError() {
		return nil, &Error{Op: OpGet, Err: responseError(res)}
	}

	var gr getResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return nil, &Error{Op: OpGet, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !gr.Found {
		return nil, &Error{Op: OpGet, Err: ErrNotFound}
	}
	return &Hit{ID: gr.ID, Source: gr.Source}, nil
}

// Index submits a document and returns the engine-assigned identifier.
func (c *Client) Index(ctx context.Context, index string, doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", &Error{Op: OpIndex, Err: fmt.Errorf("encode document: %w", err)}
	}

	start := time.Now()
	res, err := c.es.Index(index, bytes.NewReader(payload), c.es.Index.WithContext(ctx))
	if err != nil {
		metrics.ObserveEngineRequest(OpIndex, "transport_error", time.Since(start))
		return "", &Error{Op: OpIndex, Err: err}
	}
	defer res.Body.Close()
	metrics.ObserveEngineRequest(OpIndex, res.Status(), time.Since(start))

	if res.IsError() {
		return "", &Error{Op: OpIndex, Err: responseError(res)}
	}

	var ir indexResponse
	if err := json.NewDecoder(res.Body).Decode(&ir); err != nil {
		return "", &Error{Op: OpIndex, Err: fmt.Errorf("decode response: %w", err)}
	}
	return ir.ID, nil
}

// Update applies a partial-document merge to the document with the given id.
func (c *Client) Update(ctx context.Context, index, id string, partial any) error {
	body := map[string]any{"doc": partial}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return &Error{Op: OpUpdate, Err: fmt.Errorf("encode document: %w", err)}
	}

	start := time.Now()
	res, err := c.es.Update(index, id, &buf, c.es.Update.WithContext(ctx))
	if err != nil {
		metrics.ObserveEngineRequest(OpUpdate, "transport_error", time.Since(start))
		return &Error{Op: OpUpdate, Err: err}
	}
	defer res.Body.Close()
	metrics.ObserveEngineRequest(OpUpdate, res.Status(), time.Since(start))

	if res.StatusCode == http.StatusNotFound {
		return &Error{Op: OpUpdate, Err: ErrNotFound}
	}
	if res.IsError() {
		return &Error{Op: OpUpdate, Err: responseError(res)}
	}
	return nil
}

// Delete removes a document permanently.
func (c *Client) Delete(ctx context.Context, index, id string) error {
	start := time.Now()
	res, err := c.es.Delete(index, id, c.es.Delete.WithContext(ctx))
	if err != nil {
		metrics.ObserveEngineRequest(OpDelete, "transport_error", time.Since(start))
		return &Error{Op: OpDelete, Err: err}
	}
	defer res.Body.Close()
	metrics.ObserveEngineRequest(OpDelete, res.Status(), time.Since(start))

	if res.StatusCode == http.StatusNotFound {
		return &Error{Op: OpDelete, Err: ErrNotFound}
	}
	if res.IsError() {
		return &Error{Op: OpDelete, Err: responseError(res)}
	}
	return nil
}

// Ping checks engine reachability.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return &Error{Op: OpPing, Err: err}
	}
	defer res.Body.Close()
	if res.IsError() {
		return &Error{Op: OpPing, Err: responseError(res)}
	}
	return nil
}

// WaitForReady pings the engine until it responds or the timeout elapses.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = c.Ping(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return fmt.Errorf("engine not ready after %s: %w", timeout, lastErr)
}

func responseError(res *esapi.Response) error {
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("engine returned %s: %s", res.Status(), bytes.TrimSpace(body))
}
