package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"languager/internal/domain"
	"languager/internal/repository"
	"languager/internal/tempstore"
	"languager/internal/transcriber"

	"go.uber.org/zap"
)

// Transcriber converts an audio file into text
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (transcriber.Result, error)
}

// Demuxer extracts the audio track of a video file
type Demuxer interface {
	ExtractAudio(ctx context.Context, src, dst string) error
}

// AudioService runs the upload, transcribe and persist workflow
type AudioService struct {
	audioRepo   repository.AudioRepository
	store       *tempstore.Store
	transcriber Transcriber
	demuxer     Demuxer
	logger      *zap.Logger
}

// NewAudioService creates a new audio service
func NewAudioService(
	audioRepo repository.AudioRepository,
	store *tempstore.Store,
	transcriber Transcriber,
	demuxer Demuxer,
	logger *zap.Logger,
) *AudioService {
	return &AudioService{
		audioRepo:   audioRepo,
		store:       store,
		transcriber: transcriber,
		demuxer:     demuxer,
		logger:      logger,
	}
}

// NormalizeContentType lowercases a media type and drops its parameters
func NormalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// Submit validates, stores and transcribes an audio upload, then persists the result.
// The temporary file never outlives the call.
func (s *AudioService) Submit(ctx context.Context, ownerID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
	if !domain.IsAllowedAudioType(NormalizeContentType(upload.ContentType)) {
		return nil, &domain.UnsupportedMediaTypeError{Received: upload.ContentType}
	}

	ctx = context.WithoutCancel(ctx)

	path, err := s.store.Save(upload.Content, upload.Filename)
	if err != nil {
		return nil, s.internal("save upload", err)
	}
	defer s.cleanup(path)

	return s.transcribe(ctx, ownerID, path)
}

// SubmitVideo extracts the audio track of a video upload and transcribes it
func (s *AudioService) SubmitVideo(ctx context.Context, ownerID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
	ctx = context.WithoutCancel(ctx)

	filename := upload.Filename
	if filepath.Ext(filename) == "" {
		filename = "video.mp4"
	}

	videoPath, err := s.store.Save(upload.Content, filename)
	if err != nil {
		return nil, s.internal("save video", err)
	}
	defer s.cleanup(videoPath)

	audioPath := s.store.NewPath(".mp3")
	defer s.cleanup(audioPath)

	if err := s.demuxer.ExtractAudio(ctx, videoPath, audioPath); err != nil {
		return nil, s.internal("extract audio", err)
	}
	s.cleanup(videoPath)

	return s.transcribe(ctx, ownerID, audioPath)
}

func (s *AudioService) transcribe(ctx context.Context, ownerID int64, path string) (*domain.AudioSubmission, error) {
	result, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		detail := err.Error()
		var terr *transcriber.Error
		if errors.As(err, &terr) {
			detail = terr.Detail
		}
		s.logger.Warn("Transcription failed",
			zap.Int64("user_id", ownerID),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.TranscriptionError{Detail: detail}
	}

	submission, err := s.audioRepo.Create(ctx, domain.NewAudioSubmission{
		UserID:             ownerID,
		AudioPath:          path,
		OriginalTranscript: result.Text,
		Language:           result.Language,
	})
	if err != nil {
		return nil, s.internal("save submission", err)
	}

	s.logger.Info("Audio transcribed",
		zap.Int64("user_id", ownerID),
		zap.Int64("submission_id", submission.ID),
		zap.String("language", result.Language),
	)

	return submission, nil
}

// List returns the owner's submissions, newest first. limit 0 means all.
func (s *AudioService) List(ctx context.Context, ownerID int64, offset, limit int) ([]domain.AudioSubmission, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return s.audioRepo.ListForUser(ctx, ownerID, offset, limit)
}

// ListPage returns one page of submissions and the total page count
func (s *AudioService) ListPage(ctx context.Context, ownerID int64, page domain.Page) ([]domain.AudioSubmission, int, error) {
	if page.Number < 1 {
		page.Number = 1
	}

	submissions, err := s.audioRepo.ListForUser(ctx, ownerID, page.Offset(), page.Size)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.audioRepo.CountForUser(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := domain.TotalPages(total, page.Size)
	if totalPages == 0 {
		totalPages = 1
	}

	return submissions, totalPages, nil
}

// Delete removes an owned submission and its audio file.
// It reports false when the submission does not exist or belongs to someone else.
func (s *AudioService) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	submission, err := s.audioRepo.GetForUser(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if submission.AudioPath != "" {
		if err := s.store.Remove(submission.AudioPath); err != nil {
			s.logger.Error("Failed to remove audio file",
				zap.Int64("submission_id", id),
				zap.String("path", submission.AudioPath),
				zap.Error(err),
			)
		}
	}

	deleted, err := s.audioRepo.DeleteForUser(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("Transcription deleted", zap.Int64("user_id", ownerID), zap.Int64("submission_id", id))
	}
	return deleted, nil
}

func (s *AudioService) cleanup(path string) {
	if err := s.store.Remove(path); err != nil {
		s.logger.Error("Failed to remove temp file", zap.String("path", path), zap.Error(err))
	}
}

func (s *AudioService) internal(op string, err error) error {
	s.logger.Error("Audio workflow failed", zap.String("op", op), zap.Error(err))
	return &domain.InternalError{Err: fmt.Errorf("%s: %w", op, err)}
}
