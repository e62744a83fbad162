package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrFetch covers transport failures and non-2xx responses.
	ErrFetch = errors.New("content: fetch failed")
	// ErrDecode covers a response body that is not a record array.
	ErrDecode = errors.New("content: decode failed")
)

// FetchError is returned for a non-2xx response.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("content: http %d: %s", e.StatusCode, e.Status)
}

func (e *FetchError) Unwrap() error { return ErrFetch }

// HTTPProvider GETs a JSON array of records from a fixed URL.
type HTTPProvider struct {
	url     string
	http    *http.Client
	timeout time.Duration
}

// NewHTTPProvider builds a provider for url. A nil client uses
// http.DefaultClient; a zero timeout leaves the request unbounded.
func NewHTTPProvider(url string, client *http.Client, timeout time.Duration) *HTTPProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProvider{url: url, http: client, timeout: timeout}
}

// URL returns the endpoint this provider reads.
func (p *HTTPProvider) URL() string { return p.url }

func (p *HTTPProvider) Fetch(ctx context.Context) ([]Record, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}
	dec := json.NewDecoder(resp.Body)
	var out []Record
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after record array", ErrDecode)
	}
	return out, nil
}
