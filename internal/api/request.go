package api

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
)

// TransportError represents a failed exchange with the poe.ninja API:
// a network failure, a timeout, or a non-2xx response.
type TransportError struct {
	StatusCode int    // HTTP status, 0 when no response was received
	Message    string // status text or failure summary
	Body       []byte
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("poe.ninja request timed out: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("poe.ninja api error %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("poe.ninja request failed: %s: %v", e.Message, e.Err)
	default:
		return "poe.ninja request failed: " + e.Message
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// get performs a single GET request and returns the decoded response body.
func (c *Client) get(ctx context.Context, path, rawQuery string) ([]byte, error) {
	fullURL := c.baseURL + path
	if rawQuery != "" {
		fullURL += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{Message: "create request", Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	logger := c.logger.With("request_id", requestID, "path", path)
	logger.Debug("sending request", "url", fullURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportFailure("do request", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	logger.Debug("received response",
		"status", resp.StatusCode,
		"encoding", resp.Header.Get("Content-Encoding"),
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}
	if err != nil {
		return nil, transportFailure("read response", err)
	}

	return body, nil
}

// readBody reads the response body, undoing gzip or brotli content encoding.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))); encoding {
	case "", "identity":
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}

	return io.ReadAll(reader)
}

func transportFailure(op string, err error) *TransportError {
	return &TransportError{Message: op, Timeout: isTimeout(err), Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
