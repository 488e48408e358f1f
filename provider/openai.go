package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/locdisplay"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.2
	defaultContext     = "a location name shown in a farming life-simulation game"

	// rateLimitedDelay is the wait after a 429; the client hides Retry-After.
	rateLimitedDelay = time.Second
)

// OpenAITranslator implements Translator using OpenAI's chat API.
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI translator.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAITranslator creates a new OpenAI translator.
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single short text.
func (p *OpenAITranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", &locdisplay.ProviderError{Message: "empty source text"}
	}

	user, _ := json.Marshal(map[string]string{"text": req.Text})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: string(user)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &locdisplay.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content)
}

func (p *OpenAITranslator) buildSystemPrompt(req TranslateRequest) string {
	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "en"
	}

	hint := req.Context
	if hint == "" {
		hint = defaultContext
	}

	sourceName := locdisplay.LanguageName(sourceLang)
	targetName := locdisplay.LanguageName(req.TargetLang)

	return fmt.Sprintf(`# Role
You translate short game UI strings from %s to %s.

# Context
The text is %s.

# Rules
- Keep it short enough for an on-screen notification.
- Keep proper nouns that players know by their official localized name when one exists.
- Do NOT translate placeholders such as {{level}}.

# Format
Return a JSON object with a single key "translation" holding the translated string.
Example: { "translation": "Bauernhof" }`, sourceName, targetName, hint)
}

func (p *OpenAITranslator) parseResponse(content string) (string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return "", &locdisplay.ProviderError{
			Message: "invalid response format from OpenAI",
			Cause:   err,
		}
	}

	if s, ok := obj["translation"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s), nil
	}

	// Some models pick their own key.
	for _, v := range obj {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), nil
		}
	}

	return "", &locdisplay.ProviderError{Message: "empty translation from OpenAI"}
}

// classifyError turns a client error into a ProviderError. Rate limits and
// server errors are retryable; auth and request errors are not. A spent
// context is final, since the lookup budget is gone.
func classifyError(err error) *locdisplay.ProviderError {
	perr := &locdisplay.ProviderError{Message: "OpenAI API call failed", Cause: err}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return perr
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusTooManyRequests:
		perr.Message = "OpenAI rate limit reached"
		perr.Retryable = true
		perr.RetryAfter = rateLimitedDelay
	case status >= http.StatusInternalServerError:
		perr.Retryable = true
	case status > 0:
		perr.Retryable = false
	default:
		// No HTTP status: a transport failure.
		perr.Retryable = isTransientNetworkError(err)
	}
	return perr
}

func isTransientNetworkError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection refused", "connection reset", "timeout", "temporary", "eof"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAITranslator implements Translator
var _ Translator = (*OpenAITranslator)(nil)
