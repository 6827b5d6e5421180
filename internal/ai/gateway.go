// Package ai implements the KITEK assistant: the inference gateway, the
// session lifecycle, tool-call extraction from generated text, the
// confirmation slot, and the whitelisted dispatcher.
//
// The trust boundary is the Toolset: model output can name any function
// it likes, but only whitelisted names ever execute, and only after the
// user confirms the batch.
package ai

import "context"

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionConfig seeds a new session.
type SessionConfig struct {
	// Availability optionally carries the caller's already-probed
	// state so the gateway can skip a redundant probe. Unchecked means
	// the caller does not know.
	Availability Availability

	// InitialPrompts is the ordered seed conversation, usually a single
	// system message. Treated as an opaque blob; never reparsed.
	InitialPrompts []Message
}

// Gateway is the on-device text-generation capability.
type Gateway interface {
	// Availability probes the runtime. Called at most once per process
	// by the session manager.
	Availability(ctx context.Context) (Availability, error)

	// CreateSession opens a model session. In the downloadable state
	// this blocks on the one-time model fetch; there is no cancellation
	// once the fetch begins beyond ctx.
	CreateSession(ctx context.Context, cfg SessionConfig) (Session, error)
}

// Session is a live conversation with the model.
type Session interface {
	// Prompt submits text and returns the full completion.
	Prompt(ctx context.Context, text string) (string, error)

	// Close releases the session.
	Close() error
}
