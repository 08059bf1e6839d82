package grammar

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) checkOp() huma.Operation {
	return huma.Operation{
		OperationID: "grammar-check",
		Method:      http.MethodPost,
		Path:        "/api/grammar/check",
		Summary:     "Check and correct grammar",
		Tags:        []string{"grammar"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
