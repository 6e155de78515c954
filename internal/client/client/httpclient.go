package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/common"
)

const (
	archivePath = "/api/archive"
	healthPath  = "/healthz"
)

// HTTPClient talks to the archive server. It applies no timeout of its own;
// callers bound requests through the context when they need to.
type HTTPClient struct {
	endpointURL string
	http        *http.Client
	codec       *codec.Codec
}

// NewHTTPClient returns a client for the server at endpointURL. A bare
// host:port gets an http:// scheme. A nil hc means http.DefaultClient.
func NewHTTPClient(endpointURL string, hc *http.Client, c *codec.Codec) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	if !strings.Contains(endpointURL, "://") {
		endpointURL = "http://" + endpointURL
	}
	return &HTTPClient{
		endpointURL: strings.TrimRight(endpointURL, "/"),
		http:        hc,
		codec:       c,
	}
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}
	return resp, body, nil
}

// Fetch returns the server copy. The stored updatedAt is preserved so it can
// be compared with the local one. A body that is not a JSON object fails with
// common.ErrParse.
func (c *HTTPClient) Fetch(ctx context.Context) (*archive.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+archivePath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrUnavailable, archivePath, statusMessage(resp, body))
	}

	doc, report, err := c.codec.Decode(body)
	if err != nil {
		return nil, err
	}
	if report.RootNotObject() {
		return nil, fmt.Errorf("%w: GET %s: archive is not a JSON object", common.ErrParse, archivePath)
	}
	return doc, nil
}

// Push replaces the server copy with doc.
func (c *HTTPClient) Push(ctx context.Context, doc *archive.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding archive: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL+archivePath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, body, err := c.do(req)
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrRejected, statusMessage(resp, body))
	default:
		return fmt.Errorf("%w: POST %s: %s", ErrUnavailable, archivePath, statusMessage(resp, body))
	}
}

// Ping checks that the server answers its health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+healthPath, nil)
	if err != nil {
		return err
	}
	resp, body, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnavailable, statusMessage(resp, body))
	}
	return nil
}

// statusMessage prefers the server's {"message": ...} body over the bare
// status text.
func statusMessage(resp *http.Response, body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		return fmt.Sprintf("%d %s", resp.StatusCode, e.Message)
	}
	return resp.Status
}
