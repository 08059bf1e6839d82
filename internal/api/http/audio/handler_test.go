package audio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"
	"languager/internal/testutil"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, ownerID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
	args := m.Called(ctx, ownerID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AudioSubmission), args.Error(1)
}

func (m *MockService) List(ctx context.Context, ownerID int64, offset, limit int) ([]domain.AudioSubmission, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AudioSubmission), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

type memFile struct {
	*bytes.Reader
	closed bool
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_submit(t *testing.T) {
	alice := testutil.NewTestUser(1, "alice")

	tests := []struct {
		name           string
		contentType    string
		mockResult     *domain.AudioSubmission
		mockError      error
		expectedStatus int
	}{
		{
			name:        "transcribed",
			contentType: "audio/wav",
			mockResult:  testutil.NewTestSubmission(5, 1, "temp_audio/x.wav", "привет", "ru"),
		},
		{
			name:           "unsupported media type",
			contentType:    "text/plain",
			mockError:      &domain.UnsupportedMediaTypeError{Received: "text/plain"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "transcription failure",
			contentType:    "audio/wav",
			mockError:      &domain.TranscriptionError{Detail: "whisper down"},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			file := &memFile{Reader: bytes.NewReader([]byte("RIFF"))}
			svc.On("Submit", mock.Anything, int64(1), mock.MatchedBy(func(u domain.AudioUpload) bool {
				return u.Content == io.Reader(file) && u.ContentType == tt.contentType && u.Filename == "clip.wav"
			})).Return(tt.mockResult, tt.mockError)
			h := NewHandler(svc, testutil.NewTestLogger(), nil)

			out, err := h.submit(context.Background(), alice, huma.FormFile{
				File:        file,
				ContentType: tt.contentType,
				IsSet:       true,
				Size:        4,
				Filename:    "clip.wav",
			})

			if tt.expectedStatus != 0 {
				assert.Equal(t, tt.expectedStatus, statusOf(t, err))
				assert.Nil(t, out)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), out.Body.ID)
			}
			assert.True(t, file.closed)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_submitMissingFile(t *testing.T) {
	h := NewHandler(new(MockService), testutil.NewTestLogger(), nil)

	out, err := h.submit(context.Background(), testutil.NewTestUser(1, "alice"), huma.FormFile{})

	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	assert.Nil(t, out)
}

func TestHandler_list(t *testing.T) {
	ctx := auth.WithUser(context.Background(), testutil.NewTestUser(1, "alice"))

	t.Run("passes window through", func(t *testing.T) {
		svc := new(MockService)
		items := []domain.AudioSubmission{*testutil.NewTestSubmission(2, 1, "", "b", "en")}
		svc.On("List", mock.Anything, int64(1), 1, 0).Return(items, nil)
		h := NewHandler(svc, testutil.NewTestLogger(), nil)

		out, err := h.list(ctx, &listInput{Offset: 1, Limit: 0})

		require.NoError(t, err)
		assert.Equal(t, items, out.Body)
		svc.AssertExpectations(t)
	})

	t.Run("empty list is not null", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything, int64(1), 0, 5).Return(nil, nil)
		h := NewHandler(svc, testutil.NewTestLogger(), nil)

		out, err := h.list(ctx, &listInput{Offset: 0, Limit: 5})

		require.NoError(t, err)
		assert.NotNil(t, out.Body)
		assert.Empty(t, out.Body)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewHandler(new(MockService), testutil.NewTestLogger(), nil)

		_, err := h.list(context.Background(), &listInput{})

		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestHandler_delete(t *testing.T) {
	ctx := auth.WithUser(context.Background(), testutil.NewTestUser(1, "alice"))

	tests := []struct {
		name           string
		deleted        bool
		expectedStatus int
	}{
		{name: "deleted", deleted: true},
		{name: "not found or not owned", deleted: false, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Delete", mock.Anything, int64(1), int64(9)).Return(tt.deleted, nil)
			h := NewHandler(svc, testutil.NewTestLogger(), nil)

			out, err := h.delete(ctx, &deleteInput{ID: 9})

			assert.Nil(t, out)
			if tt.expectedStatus != 0 {
				assert.Equal(t, tt.expectedStatus, statusOf(t, err))
				assert.Contains(t, err.Error(), "Transcription not found")
			} else {
				assert.NoError(t, err)
			}
			svc.AssertExpectations(t)
		})
	}
}
