package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrDuplicateMatch reports a second write for the same (run, resume) pair.
// Match results are written once; hitting this means a caller bug, not a
// race to resolve.
var ErrDuplicateMatch = errors.New("match result already exists for this run and resume")

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// CreateAnalysisRun creates a new analysis run record and returns its ID
func (db *DB) CreateAnalysisRun(ctx context.Context, jobText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (job_text, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		jobText, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create analysis run: %w", err)
	}
	return id, nil
}

// CompleteAnalysisRun marks an analysis run as finished
func (db *DB) CompleteAnalysisRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE analysis_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete analysis run: %w", err)
	}
	return nil
}

// SaveMatchScore stores the match result for one resume within a run. The
// (run_id, resume_id) pair is unique; a conflicting write returns
// ErrDuplicateMatch.
func (db *DB) SaveMatchScore(ctx context.Context, runID, resumeID uuid.UUID, score *types.MatchScore) error {
	jsonBytes, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal match score: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_scores (run_id, resume_id, overall_score, content)
		 VALUES ($1, $2, $3, $4)`,
		runID, resumeID, score.OverallScore, jsonBytes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: run %s resume %s", ErrDuplicateMatch, runID, resumeID)
		}
		return fmt.Errorf("failed to save match score: %w", err)
	}
	return nil
}

// GetMatchScore retrieves the match result for one resume within a run, or
// nil if none was stored
func (db *DB) GetMatchScore(ctx context.Context, runID, resumeID uuid.UUID) (*types.MatchScore, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM match_scores WHERE run_id = $1 AND resume_id = $2`,
		runID, resumeID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}

	var score types.MatchScore
	if err := json.Unmarshal(content, &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match score: %w", err)
	}
	return &score, nil
}

// ListMatchRecords returns the match summaries of a run ordered by overall
// score, best first
func (db *DB) ListMatchRecords(ctx context.Context, runID uuid.UUID) ([]MatchRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT run_id, resume_id, overall_score, created_at
		 FROM match_scores WHERE run_id = $1
		 ORDER BY overall_score DESC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match records: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		if err := rows.Scan(&r.RunID, &r.ResumeID, &r.OverallScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match records: %w", err)
	}
	return records, nil
}
