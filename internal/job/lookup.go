// Package job resolves a single job by project slug and job number
package job

import (
	"context"
	"fmt"

	"github.com/pipewatch/cli/internal/api"
	"github.com/pipewatch/cli/internal/models"
)

// The job detail endpoint names the number field differently from the
// workflow job listing, and older deployments omit the id entirely.
type jobDetail struct {
	ID        string  `json:"id"`
	Number    int     `json:"number"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Type      string  `json:"type"`
	StartedAt *string `json:"started_at"`
	StoppedAt *string `json:"stopped_at"`
}

// Lookup fetches one job record. When the API answers 2xx but resolves no
// job, the result carries a null Job rather than failing.
func Lookup(ctx context.Context, client *api.Client, projectSlug string, jobNumber int) (*models.JobLookupResult, error) {
	var detail jobDetail
	endpoint := fmt.Sprintf("/project/%s/job/%d", projectSlug, jobNumber)
	if err := client.Get(ctx, endpoint, &detail); err != nil {
		return nil, fmt.Errorf("looking up job %d in project %s: %w", jobNumber, projectSlug, err)
	}

	result := &models.JobLookupResult{
		ProjectSlug: projectSlug,
		JobNumber:   jobNumber,
	}

	if detail.Name == "" && detail.Status == "" && detail.Number == 0 {
		return result, nil
	}

	result.Job = &models.Job{
		ID:        detail.ID,
		Number:    detail.Number,
		Name:      detail.Name,
		Status:    models.StatusFrom(detail.Status),
		Type:      detail.Type,
		StartedAt: detail.StartedAt,
		StoppedAt: detail.StoppedAt,
	}

	return result, nil
}
