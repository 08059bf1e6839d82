package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"languager/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, telegram_id, username, email, hashed_password, first_name, last_name, created_at, updated_at`

// Create inserts a web-registered user
func (r *UserRepo) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	query := `
		INSERT INTO users (username, hashed_password, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, u.Username, u.HashedPassword, u.Email, u.FirstName, u.LastName))
	if constraint, ok := violatedConstraint(err); ok {
		if constraint == usersEmailKey {
			return nil, domain.ErrEmailTaken
		}
		return nil, domain.ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetByUsername returns the user with the given username or domain.ErrNotFound
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetByTelegramID returns the user with the given Telegram id or domain.ErrNotFound
func (r *UserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	return r.getOne(ctx, query, telegramID)
}

// EnsureTelegramUser creates user if not exists and returns it
func (r *UserRepo) EnsureTelegramUser(ctx context.Context, p domain.TelegramProfile) (*domain.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (telegram_id) DO UPDATE SET updated_at = users.updated_at
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, p.TelegramID, p.Username, p.FirstName, p.LastName))
	if isUniqueViolation(err) {
		// The Telegram username collides with a web account; keep the bot user anonymous.
		query = `
			INSERT INTO users (telegram_id, first_name, last_name)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
			ON CONFLICT (telegram_id) DO UPDATE SET updated_at = users.updated_at
			RETURNING ` + userColumns
		user, err = scanUser(r.db.QueryRowContext(ctx, query, p.TelegramID, p.FirstName, p.LastName))
	}
	if err != nil {
		return nil, fmt.Errorf("ensure telegram user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	var telegramID sql.NullInt64
	var username, email, hashed, firstName, lastName sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(&u.ID, &telegramID, &username, &email, &hashed, &firstName, &lastName, &u.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if telegramID.Valid {
		u.TelegramID = &telegramID.Int64
	}
	u.Username = nullString(username)
	u.Email = nullString(email)
	u.HashedPassword = nullString(hashed)
	u.FirstName = nullString(firstName)
	u.LastName = nullString(lastName)
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return &u, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
