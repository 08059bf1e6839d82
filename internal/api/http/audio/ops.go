package audio

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) transcribeOp() huma.Operation {
	return huma.Operation{
		OperationID:   "audio-transcribe",
		Method:        http.MethodPost,
		Path:          "/api/audio/transcribe-audio",
		Summary:       "Upload and transcribe an audio file",
		Tags:          []string{"audio"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "audio-upload-and-transcribe",
		Method:        http.MethodPost,
		Path:          "/api/audio/upload-and-transcribe",
		Summary:       "Upload and transcribe an audio file",
		Tags:          []string{"audio"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "audio-list",
		Method:      http.MethodGet,
		Path:        "/api/audio/my-transcriptions",
		Summary:     "Recent transcriptions of the current user",
		Tags:        []string{"audio"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "audio-delete",
		Method:        http.MethodDelete,
		Path:          "/api/audio/transcriptions/{id}",
		Summary:       "Delete a transcription and its audio file",
		Tags:          []string{"audio"},
		Security:      bearer,
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
