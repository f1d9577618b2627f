package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"todolist/models"
)

// Client talks to the todolist JSON API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// envelope mirrors the server's V2 response shape
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewClient creates a new HTTP client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest executes an HTTP request
func (c *Client) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// handleResponse unwraps the envelope and decodes its data into result
func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Code != "OK" {
		return fmt.Errorf("HTTP %d: %s (%s)", resp.StatusCode, env.Message, env.Code)
	}

	if result != nil {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// HealthCheck pings the health endpoint
func (c *Client) HealthCheck() error {
	resp, err := c.doRequest(http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: HTTP %d", resp.StatusCode)
	}
	return nil
}

// Health returns the raw health document
func (c *Client) Health() (map[string]interface{}, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var health map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return health, nil
}

// ListItems fetches every item
func (c *Client) ListItems() ([]models.Item, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/items", nil)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := c.handleResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem adds an item and returns its id
func (c *Client) CreateItem(text string) (uint, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/items", models.ItemCreate{Text: text})
	if err != nil {
		return 0, err
	}

	var created struct {
		ID uint `json:"id"`
	}
	if err := c.handleResponse(resp, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}
