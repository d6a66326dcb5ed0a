package domain

import "time"

type HarvestState string

const (
	StateIdle                  HarvestState = "idle"
	StateFetchingOrganizations HarvestState = "fetching-organizations"
	StateFetchingDatasets      HarvestState = "fetching-datasets"
	StateProcessingDatasets    HarvestState = "processing-datasets"
	StateCompleted             HarvestState = "completed"
	StateCancelled             HarvestState = "cancelled"
	StateFailed                HarvestState = "failed"
)

// Terminal reports whether a run in this state has stopped for good.
func (s HarvestState) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

// Counters holds the cumulative number of records written during a run.
type Counters struct {
	Organizations int `json:"orgCount"`
	Datasets      int `json:"datasetCount"`
	Resources     int `json:"resourceCount"`
	Errors        int `json:"errorCount"`
}

// Status is a point in time snapshot of a harvest run, as seen by observers.
type Status struct {
	RunID           string       `json:"runId,omitempty"`
	State           HarvestState `json:"state"`
	Active          bool         `json:"active"`
	CancelRequested bool         `json:"cancelRequested"`
	Progress        int          `json:"progressPercent"`
	Message         string       `json:"message"`
	Counters
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

type StoreStats struct {
	Organizations int64 `json:"organizations"`
	Datasets      int64 `json:"datasets"`
	Resources     int64 `json:"resources"`
	Categories    int64 `json:"categories"`
}
