package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrStatus is wrapped by every non-2xx upstream answer.
var ErrStatus = errors.New("upstream returned non-2xx status")

// jsonClient posts JSON to a base URL. Shared by the doctors and payment clients.
type jsonClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func newJSONClient(base string, timeout time.Duration) (*jsonClient, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", base)
	}
	return &jsonClient{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// post sends body (nil for no body) to base + elems and decodes a 2xx reply into out.
func (c *jsonClient) post(ctx context.Context, body interface{}, out interface{}, elems ...string) error {
	u := *c.baseURL // copy
	u.Path = path.Join(append([]string{c.baseURL.Path}, elems...)...)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode, string(snippet))
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
