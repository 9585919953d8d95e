package tasktracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bizcore/clients"
	"bizcore/core"
	"bizcore/models"
)

// TaskTrackerClient implements clients.TaskTrackerClient against the task
// tracker's HTTP API. A client built without a base URL reports
// core.ErrNotConfigured from every operation instead of failing mid-request.
type TaskTrackerClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewTaskTrackerClient creates a new task tracker client. baseURL may be
// empty, which produces a valid but unconfigured client.
func NewTaskTrackerClient(baseURL, apiKey string) clients.TaskTrackerClient {
	return &TaskTrackerClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *TaskTrackerClient) isConfigured() bool {
	return c.baseURL != ""
}

// ListTasks fetches up to limit tasks ordered by creation time, newest first
func (c *TaskTrackerClient) ListTasks(ctx context.Context, limit int) ([]models.TrackedTask, error) {
	if !c.isConfigured() {
		return nil, fmt.Errorf("task tracker: %w", core.ErrNotConfigured)
	}

	url := fmt.Sprintf("%s/api/tasks?limit=%d&sort=created_desc", c.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list tasks failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var tasks []models.TrackedTask
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return tasks, nil
}

// CreateTask persists one task draft and returns the created record
func (c *TaskTrackerClient) CreateTask(ctx context.Context, draft models.TaskDraft) (*models.TrackedTask, error) {
	if !c.isConfigured() {
		return nil, fmt.Errorf("task tracker: %w", core.ErrNotConfigured)
	}

	jsonBody, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/tasks", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create task failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var task models.TrackedTask
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &task, nil
}

func (c *TaskTrackerClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
