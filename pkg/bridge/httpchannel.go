package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPChannel invokes bridge methods by posting call envelopes to an HTTP
// endpoint hosting the native side.
type HTTPChannel struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPChannel creates a channel talking to the given endpoint. An empty
// endpoint falls back to a local bridge host.
func NewHTTPChannel(endpoint string) (*HTTPChannel, error) {
	if endpoint == "" {
		endpoint = "http://localhost:8090"
	}

	return &HTTPChannel{
		baseURL: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

// Invoke sends one method invocation and waits for its reply.
func (c *HTTPChannel) Invoke(ctx context.Context, channel, method string, args map[string]any) (any, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	call := callEnvelope{
		ID:        uuid.NewString(),
		Channel:   channel,
		Method:    method,
		Arguments: args,
	}

	respBody, err := c.sendRequest(ctx, "/v1/invoke", call)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}

	var reply replyEnvelope
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return nil, fmt.Errorf("failed to parse reply: %v", err)
	}
	if reply.ID != "" && reply.ID != call.ID {
		return nil, fmt.Errorf("reply id mismatch: sent %s, got %s", call.ID, reply.ID)
	}

	return reply.unwrap()
}

func (c *HTTPChannel) sendRequest(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge host returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
