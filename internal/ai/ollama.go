package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"kitek/internal/config"
)

// OllamaGateway serves inference from a local Ollama runtime.
//
// Availability mapping: server unreachable or probe error is
// unavailable; server up without the model pulled is downloadable (the
// pull happens on first session creation); model present is available.
type OllamaGateway struct {
	endpoint string
	model    string
	client   *http.Client
	pull     *http.Client
	logger   *zap.Logger

	// Normalize converts a raw /api/chat response body into the
	// completion text. Overridable because the priority order is a
	// best-effort guess at the response shape, not a contract.
	Normalize func(body []byte) (string, error)
}

// NewOllamaGateway creates a gateway for the configured endpoint/model.
func NewOllamaGateway(cfg config.AIConfig, logger *zap.Logger) *OllamaGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoint := strings.TrimRight(cfg.Host, "/")
	if endpoint == "" {
		endpoint = "http://localhost:11434"
	}
	promptTimeout := cfg.PromptTimeout
	if promptTimeout <= 0 {
		promptTimeout = 2 * time.Minute
	}
	pullTimeout := cfg.PullTimeout
	if pullTimeout <= 0 {
		pullTimeout = 15 * time.Minute
	}

	return &OllamaGateway{
		endpoint:  endpoint,
		model:     cfg.Model,
		client:    &http.Client{Timeout: promptTimeout},
		pull:      &http.Client{Timeout: pullTimeout},
		logger:    logger.Named("ollama"),
		Normalize: normalizeChatResponse,
	}
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Availability probes the runtime with /api/tags.
func (g *OllamaGateway) Availability(ctx context.Context) (Availability, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/api/tags", nil)
	if err != nil {
		return AvailabilityUnavailable, fmt.Errorf("build probe request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Info("runtime unreachable", zap.String("endpoint", g.endpoint), zap.Error(err))
		return AvailabilityUnavailable, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AvailabilityUnavailable, fmt.Errorf("probe returned status %d", resp.StatusCode)
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return AvailabilityUnavailable, fmt.Errorf("decode probe response: %w", err)
	}

	for _, m := range tags.Models {
		if m.Name == g.model || strings.TrimSuffix(m.Name, ":latest") == g.model {
			return AvailabilityAvailable, nil
		}
	}
	g.logger.Info("model not pulled yet", zap.String("model", g.model))
	return AvailabilityDownloadable, nil
}

type ollamaPullRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

// pullModel fetches the model. This is the observable one-time download
// cost of the downloadable state.
func (g *OllamaGateway) pullModel(ctx context.Context) error {
	body, err := json.Marshal(ollamaPullRequest{Model: g.model, Stream: false})
	if err != nil {
		return fmt.Errorf("marshal pull request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build pull request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.Info("pulling model, this can take a while", zap.String("model", g.model))
	resp, err := g.pull.Do(req)
	if err != nil {
		return fmt.Errorf("pull request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pull returned status %d: %s", resp.StatusCode, string(msg))
	}
	g.logger.Info("model pulled", zap.String("model", g.model))
	return nil
}

// CreateSession opens a chat session seeded with cfg.InitialPrompts.
// When the caller already probed, cfg.Availability saves the second
// /api/tags round trip.
func (g *OllamaGateway) CreateSession(ctx context.Context, cfg SessionConfig) (Session, error) {
	avail := cfg.Availability
	if avail == AvailabilityUnchecked {
		var err error
		avail, err = g.Availability(ctx)
		if err != nil {
			return nil, err
		}
	}
	switch avail {
	case AvailabilityDownloadable:
		if err := g.pullModel(ctx); err != nil {
			return nil, err
		}
	case AvailabilityAvailable:
	default:
		return nil, fmt.Errorf("runtime not usable: %s", avail)
	}

	history := make([]Message, len(cfg.InitialPrompts))
	copy(history, cfg.InitialPrompts)
	return &ollamaSession{gateway: g, history: history}, nil
}

// ollamaSession keeps the conversation history so every prompt carries
// the full context (conversation continuity over one live session).
type ollamaSession struct {
	mu      sync.Mutex
	gateway *OllamaGateway
	history []Message
	closed  bool
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Prompt submits text and returns the completion.
func (s *ollamaSession) Prompt(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("session closed")
	}

	messages := append(append([]Message{}, s.history...), Message{Role: "user", Content: text})

	body, err := json.Marshal(ollamaChatRequest{
		Model:    s.gateway.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gateway.endpoint+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.gateway.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat returned status %d: %s", resp.StatusCode, string(raw))
	}

	reply, err := s.gateway.Normalize(raw)
	if err != nil {
		return "", err
	}

	s.history = messages
	s.history = append(s.history, Message{Role: "assistant", Content: reply})
	return reply, nil
}

// Close marks the session unusable.
func (s *ollamaSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// normalizeChatResponse extracts the completion text from a raw
// response body. Field priority: message.content, then response, then
// content, then the raw body as a last resort.
func normalizeChatResponse(body []byte) (string, error) {
	var shape struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Response string `json:"response"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	switch {
	case shape.Message.Content != "":
		return shape.Message.Content, nil
	case shape.Response != "":
		return shape.Response, nil
	case shape.Content != "":
		return shape.Content, nil
	default:
		return string(body), nil
	}
}
