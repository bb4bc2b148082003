package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// HTTP posts the body as JSON. The response body is drained and discarded.
type HTTP struct {
	client *http.Client
}

// NewHTTP returns an HTTP transport. A nil client means a fresh client with
// no timeout.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTP{client: client}
}

func (h *HTTP) Send(endpoint string, body []byte) error {
	resp, err := h.client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("post %s: status %d", endpoint, resp.StatusCode)
	}
	return nil
}

type httpFactory struct{}

func (httpFactory) Name() string { return "http" }

func (httpFactory) Info() Info {
	return Info{Name: "http", Description: "POST each request as JSON to the endpoint (the Ray app protocol)."}
}

func (httpFactory) Create(opts Options) (Transport, error) {
	return NewHTTP(&http.Client{Timeout: opts.Timeout}), nil
}
