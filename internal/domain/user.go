package domain

import "time"

// User represents an account reachable by username (web) or Telegram id (bot)
type User struct {
	ID             int64      `json:"id"`
	TelegramID     *int64     `json:"telegram_id,omitempty"`
	Username       *string    `json:"username,omitempty"`
	Email          *string    `json:"email,omitempty"`
	HashedPassword *string    `json:"-"`
	FirstName      *string    `json:"first_name,omitempty"`
	LastName       *string    `json:"last_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// DisplayName returns the best human-readable name for the user
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != nil && *u.FirstName != "":
		return *u.FirstName
	case u.Username != nil && *u.Username != "":
		return *u.Username
	default:
		return "there"
	}
}

// NewUser holds the fields for a web registration
type NewUser struct {
	Username       string
	HashedPassword string
	Email          *string
	FirstName      *string
	LastName       *string
}

// TelegramProfile is the part of a Telegram sender we persist on first contact
type TelegramProfile struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// UserState represents user's current bot interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	CurrentWord string
}

// Token is an issued bearer token
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
