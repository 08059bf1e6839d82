package audio

import (
	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
)

type audioForm struct {
	AudioFile huma.FormFile `form:"audio_file" required:"true" doc:"Recorded audio (wav, mp3, mp4, ogg, flac or webm)"`
}

type transcribeInput struct {
	RawBody huma.MultipartFormFiles[audioForm]
}

type submissionOutput struct {
	Body *domain.AudioSubmission
}

type listInput struct {
	Offset int `query:"offset" default:"0" minimum:"0" doc:"Number of most recent transcriptions to skip"`
	Limit  int `query:"limit" default:"5" minimum:"0" doc:"Maximum number to return, 0 for all"`
}

type listOutput struct {
	Body []domain.AudioSubmission
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Transcription ID"`
}
