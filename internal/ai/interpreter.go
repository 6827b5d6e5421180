package ai

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Turn is one resolved query cycle: the user's question, the prose to
// display, and the tool calls awaiting confirmation (possibly none).
type Turn struct {
	ID          string
	Query       string
	DisplayText string
	Calls       []ToolCall
}

// HasCalls reports whether the turn needs a confirmation step.
func (t *Turn) HasCalls() bool {
	return len(t.Calls) > 0
}

// Interpreter runs the AI side of the terminal: it owns the session
// manager, the tool whitelist and the confirmation slot, and turns free
// text queries into display text plus confirmed, dispatched tool calls.
type Interpreter struct {
	manager   *SessionManager
	toolset   *Toolset
	confirmer *Confirmer
	logger    *zap.Logger
}

// NewInterpreter assembles the interpreter core.
func NewInterpreter(manager *SessionManager, toolset *Toolset, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{
		manager:   manager,
		toolset:   toolset,
		confirmer: NewConfirmer(),
		logger:    logger.Named("interpreter"),
	}
}

// Available reports whether the assistant can serve queries at all,
// probing the gateway if nothing is cached yet.
func (i *Interpreter) Available(ctx context.Context) bool {
	return i.manager.CheckAvailability(ctx).Usable()
}

// Usable is the non-blocking variant of Available: it only consults
// the cached probe result. Unchecked counts as not usable, so callers
// on a UI event loop fall through safely until the warmup finishes.
func (i *Interpreter) Usable() bool {
	return i.manager.CachedAvailability().Usable()
}

// HandleQuery runs the inference half of a turn: ensure a session,
// submit the question, and split the completion into prose and calls.
// ok is false on any gateway failure; the caller shows an error line.
func (i *Interpreter) HandleQuery(ctx context.Context, query string) (*Turn, bool) {
	reply, ok := i.manager.Ask(ctx, query)
	if !ok {
		return nil, false
	}

	display, calls := ExtractCalls(reply)
	turn := &Turn{
		ID:          uuid.NewString(),
		Query:       query,
		DisplayText: display,
		Calls:       calls,
	}
	i.logger.Debug("turn resolved",
		zap.String("turn", turn.ID),
		zap.Int("calls", len(calls)))
	return turn, true
}

// Confirmer exposes the single confirmation slot to the shell.
func (i *Interpreter) Confirmer() *Confirmer {
	return i.confirmer
}

// RequestConfirmation parks a turn's calls for user approval.
func (i *Interpreter) RequestConfirmation(turn *Turn) (<-chan bool, error) {
	return i.confirmer.Request(turn.Calls)
}

// Dispatch executes a confirmed batch against the whitelist.
func (i *Interpreter) Dispatch(calls []ToolCall) []DispatchResult {
	return i.toolset.Dispatch(calls)
}

// Close releases the model session.
func (i *Interpreter) Close() error {
	return i.manager.Close()
}
