package jobrunner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bizcore/clients"
)

// JobRunnerClient implements clients.JobRunnerClient against the internal
// jobs API. Each trigger is a single POST; the endpoints return no payload
// contract beyond their status code.
type JobRunnerClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewJobRunnerClient creates a new job runner client
func NewJobRunnerClient(baseURL string) clients.JobRunnerClient {
	return &JobRunnerClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// TriggerReport starts a report generation job
func (c *JobRunnerClient) TriggerReport(ctx context.Context) error {
	return c.post(ctx, "/reports")
}

// TriggerForecast starts a forecast computation job
func (c *JobRunnerClient) TriggerForecast(ctx context.Context) error {
	return c.post(ctx, "/forecast")
}

func (c *JobRunnerClient) post(ctx context.Context, path string) error {
	if c.baseURL == "" {
		return fmt.Errorf("job runner base URL is not set")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to trigger job %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("job trigger %s failed: status %d, body: %s", path, resp.StatusCode, string(body))
	}

	return nil
}
