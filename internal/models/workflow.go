package models

// Workflow is an ordered group of jobs within a pipeline. Jobs keep the
// order the remote API returned them in.
type Workflow struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Status    Status  `json:"status" yaml:"status"`
	CreatedAt *string `json:"created_at" yaml:"created_at"`
	StoppedAt *string `json:"stopped_at" yaml:"stopped_at"`
	Jobs      []Job   `json:"jobs" yaml:"jobs"`
}
