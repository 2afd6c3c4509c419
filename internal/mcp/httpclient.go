package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftcoach/internal/models"
	"github.com/claude/liftcoach/internal/storage"
)

// HTTPClient implements DataSource by calling the LiftCoach REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// set history lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, storage.ErrNoSets
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}

	return data, nil
}

func (c *HTTPClient) InsertSet(ctx context.Context, _ int, set models.WorkoutSet) (*models.SetRow, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/sets", nil, set)
	if err != nil {
		return nil, err
	}

	var row models.SetRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("httpclient: decode set: %w", err)
	}
	return &row, nil
}

func (c *HTTPClient) LastSet(ctx context.Context, _ int, exerciseID string) (*models.SetRow, error) {
	params := url.Values{}
	params.Set("exercise", exerciseID)

	body, err := c.do(ctx, http.MethodGet, "/api/v1/sets/last", params, nil)
	if err != nil {
		return nil, err
	}

	var row models.SetRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("httpclient: decode last set: %w", err)
	}
	return &row, nil
}

func (c *HTTPClient) RecentSets(ctx context.Context, _ int, limit int) ([]models.SetRow, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.do(ctx, http.MethodGet, "/api/v1/sets", params, nil)
	if err != nil {
		return nil, err
	}

	var sets []models.SetRow
	if err := json.Unmarshal(body, &sets); err != nil {
		return nil, fmt.Errorf("httpclient: decode sets: %w", err)
	}
	return sets, nil
}

func (c *HTTPClient) UpsertPersonalRecord(ctx context.Context, record models.PersonalRecord) (bool, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/v1/records", nil, record)
	if err != nil {
		return false, err
	}

	var resp struct {
		Updated bool `json:"updated"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("httpclient: decode record update: %w", err)
	}
	return resp.Updated, nil
}

func (c *HTTPClient) ListPersonalRecords(ctx context.Context, _ int) ([]models.PersonalRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/records", nil, nil)
	if err != nil {
		return nil, err
	}

	var records []models.PersonalRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode records: %w", err)
	}
	return records, nil
}
