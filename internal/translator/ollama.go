// Package translator suggests word translations using a local Ollama model.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOllamaURL = "http://localhost:11434"
	DefaultModel     = "qwen2.5:1.5b"
	DefaultTimeout   = 30 * time.Second

	// SourceLanguage is the language vocabulary words are written in
	SourceLanguage = "ru"
)

// ErrUnsupportedLanguage is returned for a target language with no engine
var ErrUnsupportedLanguage = errors.New("unsupported target language")

// targets lists the supported target languages and the names used in prompts
var targets = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"pt": "Portuguese",
}

// IsSupported reports whether lang can be used as a translation target
func IsSupported(lang string) bool {
	_, ok := targets[lang]
	return ok
}

// Config holds connection settings
type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// Client builds translation engines backed by Ollama
type Client struct {
	baseURL string
	model   string
	timeout time.Duration
}

// New creates a translator client
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	url := cfg.URL
	if url == "" {
		url = DefaultOllamaURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		model:   model,
		timeout: timeout,
	}
}

// Engine translates Russian words into one target language
type Engine struct {
	baseURL    string
	model      string
	target     string
	targetName string
	httpClient *http.Client
}

// NewEngine prepares an engine for target, checking the model is installed
func (c *Client) NewEngine(ctx context.Context, target string) (*Engine, error) {
	name, ok := targets[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, target)
	}

	e := &Engine{
		baseURL:    c.baseURL,
		model:      c.model,
		target:     target,
		targetName: name,
		httpClient: &http.Client{
			Timeout:   c.timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}

	models, err := e.listModels(ctx)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("list ollama models: %w", err)
	}
	if !hasModel(models, c.model) {
		e.Close()
		return nil, fmt.Errorf("ollama model %q is not installed", c.model)
	}

	return e, nil
}

// Target returns the engine's target language code
func (e *Engine) Target() string {
	return e.target
}

// Close releases the engine's idle connections
func (e *Engine) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

type generateRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Stream  bool   `json:"stream"`
	Options struct {
		Temperature float64 `json:"temperature"`
		NumPredict  int     `json:"num_predict"`
	} `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// Translate returns the translation of a single Russian word or phrase
func (e *Engine) Translate(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", errors.New("empty word")
	}

	prompt := fmt.Sprintf(`Translate the following Russian word or phrase into %s. Reply with ONLY the translation, no explanations:

%s`, e.targetName, word)

	req := generateRequest{
		Model:  e.model,
		Prompt: prompt,
		Stream: false,
	}
	req.Options.Temperature = 0.1
	req.Options.NumPredict = 64

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("ollama: %s", result.Error)
	}

	translation := cleanTranslation(result.Response)
	if translation == "" {
		return "", errors.New("ollama returned an empty translation")
	}
	return translation, nil
}

func (e *Engine) listModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags status %d", resp.StatusCode)
	}

	var result struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	models := make([]string, len(result.Models))
	for i, m := range result.Models {
		models[i] = m.Name
	}
	return models, nil
}

func hasModel(models []string, want string) bool {
	for _, m := range models {
		if m == want || m == want+":latest" {
			return true
		}
	}
	return false
}

// cleanTranslation keeps the first line of a model reply and strips quotes and trailing dots
func cleanTranslation(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const quotes = " \t\"'«»`"
	s = strings.Trim(s, quotes)
	s = strings.TrimRight(s, ".")
	return strings.Trim(s, quotes)
}
