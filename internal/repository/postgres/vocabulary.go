package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"languager/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

const vocabularyColumns = `id, russian_word, translation, example_sentence, user_id, created_at`

// Create saves a word-translation pair
func (r *VocabularyRepo) Create(ctx context.Context, item domain.NewVocabularyItem) (*domain.VocabularyItem, error) {
	query := `
		INSERT INTO vocabulary_items (russian_word, translation, example_sentence, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + vocabularyColumns

	v, err := scanVocabulary(r.db.QueryRowContext(ctx, query, item.RussianWord, item.Translation, item.ExampleSentence, item.UserID))
	if err != nil {
		return nil, fmt.Errorf("insert vocabulary item: %w", err)
	}
	return v, nil
}

// ListForUser returns the user's items, newest first.
// A non-positive limit returns everything after offset.
func (r *VocabularyRepo) ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.VocabularyItem, error) {
	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary items: %w", err)
	}
	defer rows.Close()

	items := []domain.VocabularyItem{}
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}

	return items, rows.Err()
}

// DeleteForUser removes an item owned by the user; false means nothing matched
func (r *VocabularyRepo) DeleteForUser(ctx context.Context, userID, id int64) (bool, error) {
	query := `DELETE FROM vocabulary_items WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete vocabulary item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanVocabulary(row scanner) (*domain.VocabularyItem, error) {
	var v domain.VocabularyItem
	var example sql.NullString
	var userID sql.NullInt64
	if err := row.Scan(&v.ID, &v.RussianWord, &v.Translation, &example, &userID, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.ExampleSentence = nullString(example)
	if userID.Valid {
		v.UserID = &userID.Int64
	}
	return &v, nil
}
