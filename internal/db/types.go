package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume status values. A resume moves from uploaded to parsed when
// structuring succeeds, or to failed when no usable text could be extracted.
const (
	ResumeStatusUploaded = "uploaded"
	ResumeStatusParsed   = "parsed"
	ResumeStatusFailed   = "failed"
)

// Analysis run status values.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Resume is a stored resume record.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	RawText   string    `json:"raw_text"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisRun groups the match results of one batch analysis against a job.
type AnalysisRun struct {
	ID          uuid.UUID  `json:"id"`
	JobText     string     `json:"job_text"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// MatchRecord is one persisted match result within an analysis run.
type MatchRecord struct {
	RunID        uuid.UUID `json:"run_id"`
	ResumeID     uuid.UUID `json:"resume_id"`
	OverallScore int       `json:"overall_score"`
	CreatedAt    time.Time `json:"created_at"`
}
