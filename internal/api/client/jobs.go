package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a specific scheduled job. A
// limit of zero uses the server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunSummary counts the products one scheduled check run touched.
type RunSummary struct {
	Priority  int `json:"priority_checked"`
	Routine   int `json:"routine_checked"`
	Available int `json:"available"`
	Failed    int `json:"failed"`
}

// RunInventoryCheck triggers a priority-then-routine check run on the server.
func (c *Client) RunInventoryCheck(ctx context.Context) (*RunSummary, error) {
	var resp struct {
		Summary *RunSummary `json:"summary"`
	}
	if err := c.post(ctx, "/api/v1/inventory/run", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Summary, nil
}
