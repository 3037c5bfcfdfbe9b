package repository

import (
	"context"
	"database/sql"

	"launchstories/internal/model"
)

const submissionSchema = `
	CREATE TABLE IF NOT EXISTS launch_story_submission (
		id                UUID PRIMARY KEY,
		merchant_name     TEXT NOT NULL,
		launch_consultant TEXT NOT NULL,
		sheet_name        TEXT NOT NULL,
		doc_url           TEXT NOT NULL DEFAULT '',
		slack_notified    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// SubmissionRepository keeps an append-only ledger of accepted stories next to the sheet.
type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, submissionSchema)
	return err
}

func (r *SubmissionRepository) SaveSubmission(ctx context.Context, sub *model.Submission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO launch_story_submission(id, merchant_name, launch_consultant, sheet_name, doc_url, slack_notified, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)
	`, sub.ID, sub.MerchantName, sub.LaunchConsultant, sub.SheetName, sub.DocURL, sub.SlackNotified, sub.CreatedAt)
	return err
}

func (r *SubmissionRepository) GetRecentSubmissions(ctx context.Context, limit int) ([]model.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, merchant_name, launch_consultant, sheet_name, doc_url, slack_notified, created_at
		FROM launch_story_submission
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var s model.Submission
		err := rows.Scan(&s.ID, &s.MerchantName, &s.LaunchConsultant, &s.SheetName, &s.DocURL, &s.SlackNotified, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *SubmissionRepository) CountSubmissions(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM launch_story_submission`).Scan(&total)
	return total, err
}
