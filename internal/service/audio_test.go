package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"languager/internal/domain"
	"languager/internal/tempstore"
	"languager/internal/testutil"
	"languager/internal/transcriber"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTempDir = "temp_audio"

type audioFixture struct {
	fs          afero.Fs
	store       *tempstore.Store
	repo        *testutil.MockAudioRepository
	transcriber *testutil.MockTranscriber
	demuxer     *testutil.MockDemuxer
	service     *AudioService
}

func newAudioFixture() *audioFixture {
	fs := afero.NewMemMapFs()
	f := &audioFixture{
		fs:          fs,
		store:       tempstore.New(fs, testTempDir),
		repo:        new(testutil.MockAudioRepository),
		transcriber: new(testutil.MockTranscriber),
		demuxer:     new(testutil.MockDemuxer),
	}
	f.service = NewAudioService(f.repo, f.store, f.transcriber, f.demuxer, testutil.NewTestLogger())
	return f
}

func (f *audioFixture) tempFiles(t *testing.T) []string {
	t.Helper()
	entries, err := afero.ReadDir(f.fs, testTempDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"audio/webm;codecs=opus", "audio/webm"},
		{"Audio/MPEG", "audio/mpeg"},
		{"audio/wav", "audio/wav"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContentType(tt.input))
		})
	}
}

func TestAudioService_Submit(t *testing.T) {
	repoErr := errors.New("insert failed")

	tests := []struct {
		name             string
		contentType      string
		transcribeErr    error
		createErr        error
		expectTranscribe bool
		expectCreate     bool
		check            func(t *testing.T, err error)
	}{
		{
			name:             "wav upload",
			contentType:      "audio/wav",
			expectTranscribe: true,
			expectCreate:     true,
		},
		{
			name:             "content type parameters are ignored",
			contentType:      "audio/webm;codecs=opus",
			expectTranscribe: true,
			expectCreate:     true,
		},
		{
			name:        "unsupported type",
			contentType: "text/plain",
			check: func(t *testing.T, err error) {
				var target *domain.UnsupportedMediaTypeError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "text/plain", target.Received)
			},
		},
		{
			name:             "transcriber failure",
			contentType:      "audio/mpeg",
			transcribeErr:    &transcriber.Error{Detail: "model not loaded"},
			expectTranscribe: true,
			check: func(t *testing.T, err error) {
				var target *domain.TranscriptionError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "model not loaded", target.Detail)
			},
		},
		{
			name:             "persistence failure",
			contentType:      "audio/ogg",
			createErr:        repoErr,
			expectTranscribe: true,
			expectCreate:     true,
			check: func(t *testing.T, err error) {
				var target *domain.InternalError
				require.ErrorAs(t, err, &target)
				assert.ErrorIs(t, err, repoErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture()

			if tt.expectTranscribe {
				f.transcriber.On("Transcribe", mock.Anything, mock.AnythingOfType("string")).
					Run(func(args mock.Arguments) {
						assert.True(t, f.store.Exists(args.String(1)), "temp file must exist while transcribing")
					}).
					Return(transcriber.Result{Text: "привет мир", Language: "ru"}, tt.transcribeErr)
			}
			if tt.expectCreate {
				created := testutil.NewTestSubmission(10, 1, "", "привет мир", "ru")
				if tt.createErr != nil {
					f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, tt.createErr)
				} else {
					f.repo.On("Create", mock.Anything, mock.MatchedBy(func(n domain.NewAudioSubmission) bool {
						return n.UserID == 1 && n.OriginalTranscript == "привет мир" && n.Language == "ru" &&
							strings.HasPrefix(n.AudioPath, testTempDir)
					})).Return(created, nil)
				}
			}

			submission, err := f.service.Submit(context.Background(), 1, domain.AudioUpload{
				Content:     strings.NewReader("RIFF...."),
				ContentType: tt.contentType,
				Filename:    "recording.wav",
			})

			if tt.check != nil {
				tt.check(t, err)
				assert.Nil(t, submission)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), submission.ID)
			}
			assert.Empty(t, f.tempFiles(t), "no temp file may outlive the call")
			f.transcriber.AssertExpectations(t)
			f.repo.AssertExpectations(t)
			if !tt.expectTranscribe {
				f.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
			}
			if !tt.expectCreate {
				f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAudioService_SubmitVideo(t *testing.T) {
	demuxErr := errors.New("ffmpeg exited 1")

	tests := []struct {
		name          string
		demuxErr      error
		expectedError bool
	}{
		{name: "extracts and transcribes"},
		{name: "demux failure", demuxErr: demuxErr, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture()

			f.demuxer.On("ExtractAudio", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
				Run(func(args mock.Arguments) {
					assert.True(t, strings.HasSuffix(args.String(1), ".mp4"))
					if tt.demuxErr == nil {
						require.NoError(t, afero.WriteFile(f.fs, args.String(2), []byte("ID3"), 0o660))
					}
				}).
				Return(tt.demuxErr)

			if !tt.expectedError {
				f.transcriber.On("Transcribe", mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.HasSuffix(p, ".mp3")
				})).Return(transcriber.Result{Text: "hello", Language: "en"}, nil)
				f.repo.On("Create", mock.Anything, mock.Anything).
					Return(testutil.NewTestSubmission(3, 1, "", "hello", "en"), nil)
			}

			submission, err := f.service.SubmitVideo(context.Background(), 1, domain.AudioUpload{
				Content:     strings.NewReader("video bytes"),
				ContentType: "video/mp4",
			})

			if tt.expectedError {
				var target *domain.InternalError
				assert.ErrorAs(t, err, &target)
				assert.ErrorIs(t, err, demuxErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "hello", submission.OriginalTranscript)
			}
			assert.Empty(t, f.tempFiles(t))
			f.demuxer.AssertExpectations(t)
			f.transcriber.AssertExpectations(t)
			f.repo.AssertExpectations(t)
		})
	}
}

func TestAudioService_List(t *testing.T) {
	tests := []struct {
		name           string
		offset         int
		limit          int
		expectedOffset int
		expectedLimit  int
	}{
		{name: "default window", offset: 0, limit: 5, expectedOffset: 0, expectedLimit: 5},
		{name: "zero limit means all", offset: 0, limit: 0, expectedOffset: 0, expectedLimit: 0},
		{name: "offset skips newest", offset: 1, limit: 2, expectedOffset: 1, expectedLimit: 2},
		{name: "negative values clamp", offset: -3, limit: -1, expectedOffset: 0, expectedLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture()
			expected := []domain.AudioSubmission{*testutil.NewTestSubmission(1, 9, "p", "t", "en")}
			f.repo.On("ListForUser", mock.Anything, int64(9), tt.expectedOffset, tt.expectedLimit).Return(expected, nil)

			result, err := f.service.List(context.Background(), 9, tt.offset, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, expected, result)
			f.repo.AssertExpectations(t)
		})
	}
}

func TestAudioService_ListPage(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		totalCount         int
		expectedOffset     int
		expectedTotalPages int
		mockError          error
		expectedError      bool
	}{
		{name: "first page", page: 1, totalCount: 12, expectedOffset: 0, expectedTotalPages: 3},
		{name: "second page", page: 2, totalCount: 12, expectedOffset: 5, expectedTotalPages: 3},
		{name: "invalid page number defaults to first", page: 0, totalCount: 3, expectedOffset: 0, expectedTotalPages: 1},
		{name: "no submissions still one page", page: 1, totalCount: 0, expectedOffset: 0, expectedTotalPages: 1},
		{name: "repository error", page: 1, mockError: errors.New("database error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture()
			if tt.mockError != nil {
				f.repo.On("ListForUser", mock.Anything, int64(1), 0, 5).Return(nil, tt.mockError)
			} else {
				f.repo.On("ListForUser", mock.Anything, int64(1), tt.expectedOffset, 5).Return([]domain.AudioSubmission{}, nil)
				f.repo.On("CountForUser", mock.Anything, int64(1)).Return(tt.totalCount, nil)
			}

			_, totalPages, err := f.service.ListPage(context.Background(), 1, domain.Page{Number: tt.page, Size: 5})

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTotalPages, totalPages)
			}
			f.repo.AssertExpectations(t)
		})
	}
}

func TestAudioService_Delete(t *testing.T) {
	tests := []struct {
		name         string
		ownerID      int64
		found        bool
		fileOnDisk   bool
		expectDelete bool
		expected     bool
	}{
		{name: "owner deletes row and file", ownerID: 1, found: true, fileOnDisk: true, expectDelete: true, expected: true},
		{name: "missing file does not block row deletion", ownerID: 1, found: true, expectDelete: true, expected: true},
		{name: "other owner sees not found", ownerID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture()
			path := f.store.NewPath(".wav")
			require.NoError(t, f.fs.MkdirAll(testTempDir, 0o770))
			if tt.fileOnDisk {
				require.NoError(t, afero.WriteFile(f.fs, path, []byte("RIFF"), 0o660))
			}

			if tt.found {
				f.repo.On("GetForUser", mock.Anything, tt.ownerID, int64(4)).
					Return(testutil.NewTestSubmission(4, tt.ownerID, path, "text", "en"), nil)
			} else {
				f.repo.On("GetForUser", mock.Anything, tt.ownerID, int64(4)).Return(nil, domain.ErrNotFound)
			}
			if tt.expectDelete {
				f.repo.On("DeleteForUser", mock.Anything, tt.ownerID, int64(4)).Return(true, nil)
			}

			deleted, err := f.service.Delete(context.Background(), tt.ownerID, 4)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)
			assert.False(t, f.store.Exists(path))
			f.repo.AssertExpectations(t)
			if !tt.expectDelete {
				f.repo.AssertNotCalled(t, "DeleteForUser", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
