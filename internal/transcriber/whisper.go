// Package transcriber talks to a Whisper-compatible speech-to-text server.
package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	DefaultURL   = "http://localhost:9000"
	DefaultModel = "whisper-1"

	transcriptionsPath = "/v1/audio/transcriptions"
	unknownLanguage    = "unknown"
)

// failureMarkers prefix transcript text that some servers return instead of an error status
var failureMarkers = []string{"Whisper transcription error", "Error"}

// Result is a successful transcription
type Result struct {
	Text     string
	Language string
}

// Error is a failed transcription; Detail is safe to show to the caller
type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsFailureText reports whether text is an error marker rather than a transcript
func IsFailureText(text string) bool {
	for _, m := range failureMarkers {
		if strings.HasPrefix(text, m) {
			return true
		}
	}
	return false
}

// Config holds connection settings
type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// Client is a Whisper HTTP client that uploads files from fs
type Client struct {
	baseURL    string
	model      string
	fs         afero.Fs
	httpClient *http.Client
}

// New creates a transcription client. A zero timeout means none.
func New(cfg Config, fsys afero.Fs) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		model:   model,
		fs:      fsys,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type transcriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Transcribe uploads the audio file at path and returns its text and detected language
func (c *Client) Transcribe(ctx context.Context, path string) (Result, error) {
	body, contentType, err := c.buildForm(path)
	if err != nil {
		return Result{}, &Error{Detail: "Error reading audio file: " + err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transcriptionsPath, body)
	if err != nil {
		return Result{}, &Error{Detail: "Error building transcription request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, &Error{Detail: "Whisper transcription error: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &Error{Detail: "Whisper transcription error: " + err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &Error{
			Detail: fmt.Sprintf("Whisper transcription error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))),
		}
	}

	var out transcriptionResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return Result{}, &Error{Detail: "Whisper transcription error: malformed response", Err: err}
	}

	text := strings.TrimSpace(out.Text)
	if IsFailureText(text) {
		return Result{}, &Error{Detail: text}
	}

	language := strings.ToLower(strings.TrimSpace(out.Language))
	if language == "" {
		language = unknownLanguage
	}

	return Result{Text: text, Language: language}, nil
}

func (c *Client) buildForm(path string) (io.Reader, string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fileType := mime.TypeByExtension(filepath.Ext(path))
	if fileType == "" {
		fileType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	h.Set("Content-Type", fileType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("model", c.model); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("response_format", "verbose_json"); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
