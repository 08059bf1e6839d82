package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Register a user",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) tokenOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-token",
		Method:      http.MethodPost,
		Path:        "/api/auth/token",
		Summary:     "Exchange username and password for a bearer token",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Current user",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}
