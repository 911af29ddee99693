// Package pipeline composes the pipeline→workflows→jobs traversal into a
// single summary
package pipeline

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pipewatch/cli/internal/api"
	"github.com/pipewatch/cli/internal/models"
)

type workflowList struct {
	Items []workflowItem `json:"items"`
}

type workflowItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	CreatedAt *string `json:"created_at"`
	StoppedAt *string `json:"stopped_at"`
}

type jobList struct {
	Items []jobItem `json:"items"`
}

type jobItem struct {
	ID        string  `json:"id"`
	Number    int     `json:"job_number"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Type      string  `json:"type"`
	StartedAt *string `json:"started_at"`
	StoppedAt *string `json:"stopped_at"`
}

// Summarize fetches the workflows of a pipeline and the jobs of each
// workflow, one call at a time in upstream order, and merges them into a
// PipelineSummary. The first failing call aborts the traversal; no partial
// summary is ever returned. A pipeline with no workflows yields a valid
// empty summary.
func Summarize(ctx context.Context, client *api.Client, pipelineID string) (*models.PipelineSummary, error) {
	var workflows workflowList
	endpoint := fmt.Sprintf("/pipeline/%s/workflow", url.PathEscape(pipelineID))
	if err := client.Get(ctx, endpoint, &workflows); err != nil {
		return nil, fmt.Errorf("listing workflows for pipeline %s: %w", pipelineID, err)
	}

	summary := &models.PipelineSummary{
		PipelineID:   pipelineID,
		StatusCounts: map[string]int{},
		Workflows:    []models.Workflow{},
	}

	// The upstream listing is not specified to be duplicate-free. A
	// repeated workflow id is fetched and counted once, first occurrence
	// wins, so aggregates never double-count.
	seen := make(map[string]bool, len(workflows.Items))

	for _, item := range workflows.Items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		var jobs jobList
		endpoint := fmt.Sprintf("/workflow/%s/job", url.PathEscape(item.ID))
		if err := client.Get(ctx, endpoint, &jobs); err != nil {
			return nil, fmt.Errorf("listing jobs for workflow %s: %w", item.ID, err)
		}

		workflow := models.Workflow{
			ID:        item.ID,
			Name:      item.Name,
			Status:    models.StatusFrom(item.Status),
			CreatedAt: item.CreatedAt,
			StoppedAt: item.StoppedAt,
			Jobs:      make([]models.Job, 0, len(jobs.Items)),
		}

		for _, j := range jobs.Items {
			status := models.StatusFrom(j.Status)
			workflow.Jobs = append(workflow.Jobs, models.Job{
				ID:        j.ID,
				Number:    j.Number,
				Name:      j.Name,
				Status:    status,
				Type:      j.Type,
				StartedAt: j.StartedAt,
				StoppedAt: j.StoppedAt,
			})
			summary.StatusCounts[status.String()]++
			summary.JobCount++
		}

		summary.Workflows = append(summary.Workflows, workflow)
	}

	summary.WorkflowCount = len(summary.Workflows)
	return summary, nil
}
