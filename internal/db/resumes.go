package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// CreateResume stores a raw resume text and returns its ID
func (db *DB) CreateResume(ctx context.Context, rawText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (raw_text, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		rawText, ResumeStatusUploaded,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// UpdateResumeStatus transitions a resume to a new status
func (db *DB) UpdateResumeStatus(ctx context.Context, resumeID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET status = $1 WHERE id = $2`,
		status, resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume status: %w", err)
	}
	return nil
}

// GetResume retrieves a resume record by ID
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, raw_text, status, created_at FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&r.ID, &r.RawText, &r.Status, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// SaveStructuredResume upserts the structured form of a resume, keyed by
// resume ID. Re-parsing replaces the previous structure.
func (db *DB) SaveStructuredResume(ctx context.Context, resumeID uuid.UUID, structured *types.StructuredResume) error {
	jsonBytes, err := json.Marshal(structured)
	if err != nil {
		return fmt.Errorf("failed to marshal structured resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO structured_resumes (resume_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (resume_id) DO UPDATE SET content = $2, updated_at = NOW()`,
		resumeID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save structured resume: %w", err)
	}
	return nil
}

// GetStructuredResume retrieves the structured form of a resume, or nil if
// the resume has not been structured yet
func (db *DB) GetStructuredResume(ctx context.Context, resumeID uuid.UUID) (*types.StructuredResume, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM structured_resumes WHERE resume_id = $1`,
		resumeID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get structured resume: %w", err)
	}

	var structured types.StructuredResume
	if err := json.Unmarshal(content, &structured); err != nil {
		return nil, fmt.Errorf("failed to unmarshal structured resume: %w", err)
	}
	return &structured, nil
}
