package habitat

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

// Client talks to the habitat HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "termclock/0.1"
	requestTimeout   = 5 * time.Second

	opTemperature = "temperature"
	opTodos       = "todos"
)

// NewClient builds a Client for the given base URL. The base must be
// non-empty; an empty base means the caller should use a fallback source
// instead of this client.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchTemperature retrieves the newest raw sample for the given device.
// The service returns rows newest-first, so page one with size one is the
// current reading.
func (c *Client) FetchTemperature(ctx context.Context, deviceCode string) (Reading, error) {
	if c == nil {
		return Reading{}, fmt.Errorf("client is nil")
	}
	body := sensorListRequest{
		DeviceCode: deviceCode,
		Page:       page{Num: 1, Size: 1},
	}
	var payload sensorListResponse
	if err := c.post(ctx, opTemperature, "habitat/raw/list", body, &payload); err != nil {
		return Reading{}, err
	}
	if payload.Code != 0 {
		return Reading{}, &Error{
			Op:   opTemperature,
			Kind: KindProtocol,
			Err:  fmt.Errorf("service code %d: %s", payload.Code, payload.Msg),
		}
	}
	if len(payload.Data.Rows) == 0 {
		return Reading{}, &Error{
			Op:   opTemperature,
			Kind: KindDecode,
			Err:  fmt.Errorf("response has no rows"),
		}
	}
	row := payload.Data.Rows[0]
	return Reading{Celsius: row.Values.Temp, Humidity: row.Values.Hum}, nil
}

// FetchTodos retrieves up to limit pending tasks. An empty row set is a
// valid result, not an error; the UI renders its own empty state.
func (c *Client) FetchTodos(ctx context.Context, limit int) ([]Todo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := todoListRequest{
		Status: []int{statusPending},
		Page:   page{Num: 1, Size: limit},
	}
	var payload todoListResponse
	if err := c.post(ctx, opTodos, "todo/list", body, &payload); err != nil {
		return nil, err
	}
	if payload.Code != 0 {
		return nil, &Error{
			Op:   opTodos,
			Kind: KindProtocol,
			Err:  fmt.Errorf("service code %d: %s", payload.Code, payload.Msg),
		}
	}
	todos := make([]Todo, 0, len(payload.Data.Rows))
	for _, row := range payload.Data.Rows {
		todos = append(todos, Todo{
			ID:         row.ID,
			Task:       row.Task,
			Deadline:   row.Deadline,
			Completed:  row.Completed != 0,
			CreateTime: row.CreateTime,
			UpdateTime: row.UpdateTime,
			IPAddr:     row.IPAddr,
		})
	}
	return todos, nil
}

func (c *Client) post(ctx context.Context, op, endpoint string, body, dest any) error {
	raw, err := go_json.Marshal(body)
	if err != nil {
		return &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("encode request: %w", err)}
	}

	reqURL := c.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(raw))
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Op:     op,
			Kind:   KindProtocol,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}
	if err := go_json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// parseBaseURL normalizes the configured base. Unlike a bare host:port
// bind, the base may carry a path prefix, which is preserved; query and
// fragment are dropped.
func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base_url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
