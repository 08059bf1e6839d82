package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"languager/internal/domain"
)

// AudioRepo implements repository.AudioRepository
type AudioRepo struct {
	db *sql.DB
}

// NewAudioRepo creates a new audio submission repository
func NewAudioRepo(db *sql.DB) *AudioRepo {
	return &AudioRepo{db: db}
}

const audioColumns = `id, user_id, audio_path, original_transcript, language, created_at`

// Create stores a transcription result for the user
func (r *AudioRepo) Create(ctx context.Context, s domain.NewAudioSubmission) (*domain.AudioSubmission, error) {
	query := `
		INSERT INTO audio_submissions (user_id, audio_path, original_transcript, language)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING ` + audioColumns

	submission, err := scanAudio(r.db.QueryRowContext(ctx, query, s.UserID, s.AudioPath, s.OriginalTranscript, s.Language))
	if err != nil {
		return nil, fmt.Errorf("insert audio submission: %w", err)
	}
	return submission, nil
}

// GetForUser returns a submission only if it belongs to the user
func (r *AudioRepo) GetForUser(ctx context.Context, userID, id int64) (*domain.AudioSubmission, error) {
	query := `SELECT ` + audioColumns + ` FROM audio_submissions WHERE id = $1 AND user_id = $2`

	submission, err := scanAudio(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select audio submission: %w", err)
	}
	return submission, nil
}

// ListForUser returns the user's submissions, newest first.
// A non-positive limit returns everything after offset.
func (r *AudioRepo) ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.AudioSubmission, error) {
	query := `
		SELECT ` + audioColumns + `
		FROM audio_submissions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list audio submissions: %w", err)
	}
	defer rows.Close()

	submissions := []domain.AudioSubmission{}
	for rows.Next() {
		s, err := scanAudio(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *s)
	}

	return submissions, rows.Err()
}

// CountForUser returns the number of submissions the user owns
func (r *AudioRepo) CountForUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM audio_submissions WHERE user_id = $1`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

// DeleteForUser removes a submission owned by the user; false means nothing matched
func (r *AudioRepo) DeleteForUser(ctx context.Context, userID, id int64) (bool, error) {
	query := `DELETE FROM audio_submissions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete audio submission: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAudio(row scanner) (*domain.AudioSubmission, error) {
	var s domain.AudioSubmission
	var language sql.NullString
	if err := row.Scan(&s.ID, &s.UserID, &s.AudioPath, &s.OriginalTranscript, &language, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Language = nullString(language)
	return &s, nil
}
