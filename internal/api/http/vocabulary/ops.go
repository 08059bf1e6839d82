package vocabulary

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "vocabulary-create",
		Method:        http.MethodPost,
		Path:          "/api/vocabulary/",
		Summary:       "Save a word with its translation",
		Tags:          []string{"vocabulary"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabulary-list",
		Method:      http.MethodGet,
		Path:        "/api/vocabulary/",
		Summary:     "Vocabulary of the current user",
		Tags:        []string{"vocabulary"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "vocabulary-delete",
		Method:        http.MethodDelete,
		Path:          "/api/vocabulary/{id}",
		Summary:       "Delete a vocabulary item",
		Tags:          []string{"vocabulary"},
		Security:      bearer,
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) suggestOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabulary-suggest-translation",
		Method:      http.MethodPost,
		Path:        "/api/vocabulary/suggest-translation",
		Summary:     "Suggest a translation for a Russian word",
		Description: "Always succeeds; when no translator is available the suggestion says so.",
		Tags:        []string{"vocabulary"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
