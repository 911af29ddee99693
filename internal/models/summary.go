package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pipewatch/cli/internal/ui"
)

// PipelineSummary merges the workflows of one pipeline and the jobs under
// them into a single report with per-status counts.
type PipelineSummary struct {
	PipelineID    string         `json:"pipeline_id" yaml:"pipeline_id"`
	WorkflowCount int            `json:"workflow_count" yaml:"workflow_count"`
	JobCount      int            `json:"job_count" yaml:"job_count"`
	StatusCounts  map[string]int `json:"status_counts" yaml:"status_counts"`
	Workflows     []Workflow     `json:"workflows" yaml:"workflows"`
}

// TextOutput implements output.Formatter. Workflows and jobs appear in the
// order the API returned them; status count lines are sorted by status
// label so the output is deterministic.
func (s PipelineSummary) TextOutput() string {
	var b strings.Builder

	writeFact(&b, "pipeline_id", s.PipelineID)
	writeFact(&b, "workflow_count", fmt.Sprintf("%d", s.WorkflowCount))
	writeFact(&b, "job_count", fmt.Sprintf("%d", s.JobCount))

	labels := make([]string, 0, len(s.StatusCounts))
	for label := range s.StatusCounts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		writeFact(&b, "status_counts."+label, fmt.Sprintf("%d", s.StatusCounts[label]))
	}

	for _, wf := range s.Workflows {
		fmt.Fprintf(&b, "workflow id=%s name=%s status=%s jobs=%d\n",
			wf.ID, wf.Name, ui.RenderStatus(wf.Status.String()), len(wf.Jobs))
		for _, job := range wf.Jobs {
			fmt.Fprintf(&b, "job id=%s number=%d name=%s status=%s\n",
				job.ID, job.Number, job.Name, ui.RenderStatus(job.Status.String()))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// JobLookupResult is the outcome of resolving a single job by project slug
// and job number. Job is null when the API did not resolve a record.
type JobLookupResult struct {
	ProjectSlug string `json:"project_slug" yaml:"project_slug"`
	JobNumber   int    `json:"job_number" yaml:"job_number"`
	Job         *Job   `json:"job" yaml:"job"`
}

// TextOutput implements output.Formatter
func (r JobLookupResult) TextOutput() string {
	var b strings.Builder

	writeFact(&b, "project_slug", r.ProjectSlug)
	writeFact(&b, "job_number", fmt.Sprintf("%d", r.JobNumber))

	if r.Job == nil {
		writeFact(&b, "job_id", "")
		writeFact(&b, "job_name", "")
		writeFact(&b, "job_status", "")
		writeFact(&b, "job_type", "")
		writeFact(&b, "started_at", "")
		writeFact(&b, "stopped_at", "")
	} else {
		writeFact(&b, "job_id", r.Job.ID)
		writeFact(&b, "job_name", r.Job.Name)
		writeFact(&b, "job_status", ui.RenderStatus(r.Job.Status.String()))
		writeFact(&b, "job_type", r.Job.Type)
		writeFact(&b, "started_at", deref(r.Job.StartedAt))
		writeFact(&b, "stopped_at", deref(r.Job.StoppedAt))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func writeFact(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(value)
	b.WriteString("\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
