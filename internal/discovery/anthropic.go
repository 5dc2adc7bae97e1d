package discovery

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

// DefaultModel is the fast small classifier used for Tier 3 — cheap and
// quick enough to run on every query that falls through the deterministic
// tiers.
const DefaultModel = "claude-3-5-haiku-20241022"

// DefaultMaxTokens bounds the response to a short structured reply.
const DefaultMaxTokens = 300

// AnthropicConfig configures an AnthropicProvider. Credentials are read once
// when the provider is constructed, never per call.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
	Timeout   time.Duration
}

// AnthropicProvider implements Provider against the Messages API.
type AnthropicProvider struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
	client    *http.Client
}

// NewAnthropicProvider constructs a provider from cfg, applying defaults for
// any zero-valued fields.
func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &AnthropicProvider{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt as a single user message and translates
// provider-layer failures into the typed taxonomy spec.md §4.F requires.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (LLMResponse, error) {
	body := anthropicRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return LLMResponse{}, &ClientFailureError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return LLMResponse{}, &ClientFailureError{Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return LLMResponse{}, &TransportTimeoutError{Err: err}
		}
		return LLMResponse{}, &ClientFailureError{Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return LLMResponse{}, &ClientFailureError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return LLMResponse{}, translateStatus(resp.StatusCode, respBody)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return LLMResponse{}, &ClientFailureError{Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	var text strings.Builder
	for _, c := range apiResp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}

	inputTokens := apiResp.Usage.InputTokens
	outputTokens := apiResp.Usage.OutputTokens
	stopReason := apiResp.StopReason

	return LLMResponse{
		Text:         text.String(),
		Model:        apiResp.Model,
		InputTokens:  &inputTokens,
		OutputTokens: &outputTokens,
		FinishReason: &stopReason,
	}, nil
}

func translateStatus(status int, body []byte) error {
	var apiErr anthropicError
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.Error.Message
	if msg == "" {
		msg = string(body)
	}
	baseErr := fmt.Errorf("api error %d: %s", status, msg)

	switch status {
	case http.StatusUnauthorized:
		return &AuthFailureError{Err: baseErr}
	case http.StatusTooManyRequests:
		return &RateLimitedError{Err: baseErr}
	default:
		return &ClientFailureError{StatusCode: status, Err: baseErr}
	}
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	var t timeouter
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}
