// Package grammar checks text against a LanguageTool server.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf16"
)

const (
	DefaultURL     = "http://localhost:8010"
	DefaultTimeout = 30 * time.Second
)

var localeMap = map[string]string{
	"en": "en-US",
	"es": "es-ES",
	"ru": "ru-RU",
}

// Locale maps a short language code onto the LanguageTool locale; unknown codes pass through
func Locale(lang string) string {
	lang = strings.TrimSpace(lang)
	if locale, ok := localeMap[strings.ToLower(lang)]; ok {
		return locale
	}
	return lang
}

// Context is the snippet of text around a match, as returned by LanguageTool
type Context struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// Replacement is one suggested fix
type Replacement struct {
	Value string `json:"value"`
}

// Match is one reported issue. Offset and Length count UTF-16 code units.
type Match struct {
	Message      string        `json:"message"`
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	Replacements []Replacement `json:"replacements"`
	Context      Context       `json:"context"`
}

// BadWord returns the offending snippet taken from the match context
func (m Match) BadWord() string {
	return sliceUTF16(m.Context.Text, m.Context.Offset, m.Context.Length)
}

// Suggestions returns the replacement values in server order
func (m Match) Suggestions() []string {
	out := make([]string, 0, len(m.Replacements))
	for _, r := range m.Replacements {
		out = append(out, r.Value)
	}
	return out
}

// Config holds connection settings
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client builds per-locale grammar engines
type Client struct {
	baseURL string
	timeout time.Duration
}

// New creates a LanguageTool client
func New(cfg Config) *Client {
	u := cfg.URL
	if u == "" {
		u = DefaultURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: strings.TrimRight(u, "/"), timeout: timeout}
}

// Engine checks text in a single locale
type Engine struct {
	baseURL    string
	locale     string
	httpClient *http.Client
}

// NewEngine prepares an engine for locale, failing if the server does not support it
func (c *Client) NewEngine(ctx context.Context, locale string) (*Engine, error) {
	e := &Engine{
		baseURL: c.baseURL,
		locale:  locale,
		httpClient: &http.Client{
			Timeout:   c.timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}

	supported, err := e.supports(ctx)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("list languagetool languages: %w", err)
	}
	if !supported {
		e.Close()
		return nil, fmt.Errorf("language %q is not supported by LanguageTool", locale)
	}

	return e, nil
}

// Locale returns the engine's locale
func (e *Engine) Locale() string {
	return e.locale
}

// Close releases the engine's idle connections
func (e *Engine) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

type checkResponse struct {
	Matches []Match `json:"matches"`
}

// Check returns the issues LanguageTool finds in text
func (e *Engine) Check(ctx context.Context, text string) ([]Match, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", e.locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("languagetool error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Matches, nil
}

func (e *Engine) supports(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/v2/languages", nil)
	if err != nil {
		return false, err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("languagetool languages status %d", resp.StatusCode)
	}

	var languages []struct {
		Code     string `json:"code"`
		LongCode string `json:"longCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&languages); err != nil {
		return false, err
	}

	for _, l := range languages {
		if strings.EqualFold(l.LongCode, e.locale) || strings.EqualFold(l.Code, e.locale) {
			return true, nil
		}
	}
	return false, nil
}

// Correct applies the first replacement of every match to text.
// Matches are applied right to left; a match overlapping one already applied is skipped.
func Correct(text string, matches []Match) string {
	units := utf16.Encode([]rune(text))

	applicable := make([]Match, 0, len(matches))
	for _, m := range matches {
		if len(m.Replacements) == 0 || m.Offset < 0 || m.Length < 0 || m.Offset+m.Length > len(units) {
			continue
		}
		applicable = append(applicable, m)
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Offset > applicable[j].Offset
	})

	limit := len(units) + 1
	for _, m := range applicable {
		end := m.Offset + m.Length
		if end > limit {
			continue
		}
		repl := utf16.Encode([]rune(m.Replacements[0].Value))
		tail := append(repl, units[end:]...)
		units = append(units[:m.Offset:m.Offset], tail...)
		limit = m.Offset
	}

	return string(utf16.Decode(units))
}

func sliceUTF16(s string, offset, length int) string {
	units := utf16.Encode([]rune(s))
	if offset < 0 || length < 0 || offset > len(units) {
		return ""
	}
	end := offset + length
	if end > len(units) {
		end = len(units)
	}
	return string(utf16.Decode(units[offset:end]))
}
