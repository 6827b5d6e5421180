package ai

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SessionManager owns the single live model session.
//
// The availability probe runs at most once per process and its result is
// cached for the lifetime of the manager. The session is created lazily
// on first need and reused for every later prompt; a failed creation
// caches nothing, so the next request retries from scratch.
type SessionManager struct {
	mu      sync.Mutex
	gateway Gateway
	session Session
	avail   Availability
	group   singleflight.Group
	logger  *zap.Logger
}

// NewSessionManager wires a manager to a gateway.
// A nil gateway means the capability does not exist at all: every probe
// reports unsupported and no session is ever created.
func NewSessionManager(gateway Gateway, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		gateway: gateway,
		avail:   AvailabilityUnchecked,
		logger:  logger.Named("ai"),
	}
}

// CheckAvailability probes the gateway once and caches the answer.
// Fails soft: probe errors cache unavailable rather than propagate.
func (m *SessionManager) CheckAvailability(ctx context.Context) Availability {
	m.mu.Lock()
	if m.avail != AvailabilityUnchecked {
		avail := m.avail
		m.mu.Unlock()
		return avail
	}
	m.mu.Unlock()

	// singleflight collapses concurrent first probes into one gateway
	// round trip; the cache handles everything after that.
	result, _, _ := m.group.Do("availability", func() (interface{}, error) {
		avail := m.probe(ctx)
		m.mu.Lock()
		m.avail = avail
		m.mu.Unlock()
		return avail, nil
	})
	return result.(Availability)
}

func (m *SessionManager) probe(ctx context.Context) Availability {
	if m.gateway == nil {
		m.logger.Info("no inference gateway configured")
		return AvailabilityUnsupported
	}
	avail, err := m.gateway.Availability(ctx)
	if err != nil {
		m.logger.Warn("availability probe failed", zap.Error(err))
		return AvailabilityUnavailable
	}
	m.logger.Info("inference gateway probed", zap.Stringer("availability", avail))
	return avail
}

// CachedAvailability returns the last probe result without probing.
// Unchecked until CheckAvailability has completed once.
func (m *SessionManager) CachedAvailability() Availability {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.avail
}

// Ready reports whether a live session already exists.
func (m *SessionManager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// EnsureSession returns true when a live session exists or could be
// created. Creation is seeded with the fixed system prompt. On failure
// nothing is cached and false is returned; errors never propagate.
func (m *SessionManager) EnsureSession(ctx context.Context) bool {
	m.mu.Lock()
	if m.session != nil {
		m.mu.Unlock()
		return true
	}
	m.mu.Unlock()

	avail := m.CheckAvailability(ctx)
	if !avail.Usable() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil { // raced with another caller
		return true
	}

	session, err := m.gateway.CreateSession(ctx, SessionConfig{
		Availability:   avail,
		InitialPrompts: []Message{{Role: "system", Content: SystemPrompt}},
	})
	if err != nil {
		m.logger.Error("failed to create session", zap.Error(err))
		return false
	}

	m.logger.Info("KITEK_AI.EXE session established")
	m.session = session
	return true
}

// Ask submits a question to the model and returns the raw completion.
// ok is false when no session could be established or the prompt
// failed; the shell renders an in-character error line in that case.
func (m *SessionManager) Ask(ctx context.Context, question string) (reply string, ok bool) {
	if !m.EnsureSession(ctx) {
		m.logger.Warn("session not ready", zap.Stringer("availability", m.CheckAvailability(ctx)))
		return "", false
	}

	m.mu.Lock()
	session := m.session
	m.mu.Unlock()

	reply, err := session.Prompt(ctx, question)
	if err != nil {
		m.logger.Error("prompt failed", zap.Error(err))
		return "", false
	}
	return reply, true
}

// Close releases the live session, if any.
func (m *SessionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	err := m.session.Close()
	m.session = nil
	return err
}
