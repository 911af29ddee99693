package models

// Job is a single executable unit within a workflow
type Job struct {
	ID        string  `json:"id" yaml:"id"`
	Number    int     `json:"job_number" yaml:"job_number"`
	Name      string  `json:"name" yaml:"name"`
	Status    Status  `json:"status" yaml:"status"`
	Type      string  `json:"type" yaml:"type"`
	StartedAt *string `json:"started_at" yaml:"started_at"`
	StoppedAt *string `json:"stopped_at" yaml:"stopped_at"`
}
