package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/steward-io/steward/pkg/models"
)

// controlClient is the typed JSON-over-HTTP client for the adapter control
// API. Both the local-process and container transports talk this protocol;
// only how the adapter gets started differs.
type controlClient struct {
	baseURL string
	http    *http.Client
}

func newControlClient(baseURL string) *controlClient {
	return &controlClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Spawn posts the brief itself; the adapter answers with its handle.
func (c *controlClient) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	var handle models.AgentHandle
	if err := c.post(ctx, "/spawn", brief, &handle); err != nil {
		return nil, err
	}
	return &handle, nil
}

func (c *controlClient) Pause(ctx context.Context) (*models.SerializedAgentState, error) {
	var state models.SerializedAgentState
	if err := c.post(ctx, "/pause", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *controlClient) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	var handle models.AgentHandle
	if err := c.post(ctx, "/resume", state, &handle); err != nil {
		return nil, err
	}
	return &handle, nil
}

func (c *controlClient) Kill(ctx context.Context, opts models.KillOptions) (*models.KillResult, error) {
	var result models.KillResult
	if err := c.post(ctx, "/kill", opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *controlClient) ResolveDecision(ctx context.Context, decisionID string, res *models.Resolution) error {
	body := map[string]any{"decisionId": decisionID, "resolution": res}
	return c.post(ctx, "/resolve", body, nil)
}

func (c *controlClient) InjectContext(ctx context.Context, injection *models.ContextInjection) error {
	return c.post(ctx, "/inject-context", injection, nil)
}

func (c *controlClient) UpdateBrief(ctx context.Context, patch map[string]any) error {
	return c.post(ctx, "/update-brief", patch, nil)
}

func (c *controlClient) RequestCheckpoint(ctx context.Context, decisionID string) (*models.SerializedAgentState, error) {
	var state models.SerializedAgentState
	body := map[string]any{"decisionId": decisionID}
	if err := c.post(ctx, "/checkpoint", body, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Health probes GET /health; nil means the adapter answered 200.
func (c *controlClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("adapter health returned %d", resp.StatusCode)
	}
	return nil
}

func (c *controlClient) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("adapter %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("adapter %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(detail))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
