package ai

import (
	"errors"
	"strings"
	"sync"
)

// AcceptToken is what the user must type to approve a batch.
// Matched after trimming, case-insensitively.
const AcceptToken = "y"

// ErrConfirmationPending is returned when a confirmation request
// arrives while another batch is still awaiting its decision.
var ErrConfirmationPending = errors.New("a confirmation is already pending")

// Confirmer is the single-slot confirmation gate between extraction and
// dispatch. At most one batch awaits a decision at any time; a second
// request is busy-rejected. Each pending batch resolves exactly once no
// matter how many key events race in.
type Confirmer struct {
	mu      sync.Mutex
	pending *pendingConfirmation
}

type pendingConfirmation struct {
	calls  []ToolCall
	result chan bool
	once   sync.Once
}

// NewConfirmer returns an empty confirmation gate.
func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

// Request parks a batch in the slot and returns the channel its
// decision will arrive on. The channel receives exactly one value.
func (c *Confirmer) Request(calls []ToolCall) (<-chan bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return nil, ErrConfirmationPending
	}
	c.pending = &pendingConfirmation{
		calls:  calls,
		result: make(chan bool, 1),
	}
	return c.pending.result, nil
}

// Waiting reports whether a batch is awaiting its decision.
func (c *Confirmer) Waiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Calls returns the pending batch, in execution order.
func (c *Confirmer) Calls() []ToolCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil
	}
	return c.pending.calls
}

// Submit evaluates a confirm-key press with the given input buffer.
//   - buffer equals the accept token (trimmed, case-insensitive): accept
//   - buffer non-empty but not the token: cancel
//   - buffer empty: inert, the confirmation stays pending
//
// Returns true when the event resolved the confirmation.
func (c *Confirmer) Submit(buffer string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(buffer))
	if trimmed == "" {
		return false
	}
	return c.resolve(trimmed == AcceptToken)
}

// Cancel resolves the pending confirmation negatively (the cancel key).
// Returns false when nothing was pending.
func (c *Confirmer) Cancel() bool {
	return c.resolve(false)
}

// resolve delivers the decision exactly once and frees the slot.
func (c *Confirmer) resolve(accepted bool) bool {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	if pending == nil {
		return false
	}
	pending.once.Do(func() {
		pending.result <- accepted
	})
	return true
}
