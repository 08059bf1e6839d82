package user

import "languager/internal/domain"

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Username  string  `json:"username" minLength:"1" maxLength:"50" example:"alice" doc:"Unique login name"`
	Password  string  `json:"password" minLength:"1" doc:"Plain password, stored as a bcrypt hash"`
	Email     *string `json:"email,omitempty" format:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type tokenInput struct {
	RawBody []byte `contentType:"application/x-www-form-urlencoded"`
}

type tokenOutput struct {
	Body domain.Token
}

type userOutput struct {
	Body *domain.User
}
