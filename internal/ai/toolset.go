package ai

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Toolset errors.
var (
	ErrToolNameEmpty     = errors.New("tool name cannot be empty")
	ErrToolExecuteNil    = errors.New("tool execute function cannot be nil")
	ErrToolAlreadyListed = errors.New("tool already whitelisted")
)

// Tool is one whitelisted function the model may invoke.
type Tool struct {
	// Name is the case-sensitive function name matched against
	// extracted calls.
	Name string

	// Description is shown in the confirmation prompt.
	Description string

	// Execute runs the tool with the call's arguments, in order.
	Execute func(args []string) error
}

// Validate checks the tool definition.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Toolset is the closed whitelist of model-callable functions.
// Built once at startup and never extended afterwards; it is the sole
// trust boundary between generated text and side effects.
type Toolset struct {
	tools  map[string]*Tool
	logger *zap.Logger
}

// NewToolset builds the whitelist. Duplicate or invalid tools fail
// construction; there is no way to add tools later.
func NewToolset(logger *zap.Logger, tools ...*Tool) (*Toolset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	set := &Toolset{
		tools:  make(map[string]*Tool, len(tools)),
		logger: logger.Named("tools"),
	}
	for _, tool := range tools {
		if err := tool.Validate(); err != nil {
			return nil, fmt.Errorf("invalid tool: %w", err)
		}
		if _, exists := set.tools[tool.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrToolAlreadyListed, tool.Name)
		}
		set.tools[tool.Name] = tool
	}
	return set, nil
}

// Has reports whether name is whitelisted.
func (s *Toolset) Has(name string) bool {
	_, ok := s.tools[name]
	return ok
}

// DispatchResult records the outcome of one call in a batch.
type DispatchResult struct {
	Call    ToolCall
	Unknown bool
	Err     error
}

// Dispatch executes a confirmed batch strictly in extraction order.
// Unknown names are logged and skipped, never executed. A failing or
// panicking tool is logged and does not stop the rest of the batch.
func (s *Toolset) Dispatch(calls []ToolCall) []DispatchResult {
	results := make([]DispatchResult, 0, len(calls))
	for _, call := range calls {
		tool, ok := s.tools[call.FunctionName]
		if !ok {
			s.logger.Warn("unknown tool function", zap.String("function", call.FunctionName))
			results = append(results, DispatchResult{Call: call, Unknown: true})
			continue
		}

		s.logger.Info("executing tool",
			zap.String("function", call.FunctionName),
			zap.Strings("args", call.Args))
		err := s.execute(tool, call.Args)
		if err != nil {
			s.logger.Error("tool execution failed",
				zap.String("function", call.FunctionName), zap.Error(err))
		}
		results = append(results, DispatchResult{Call: call, Err: err})
	}
	return results
}

// execute isolates a single tool call, converting panics to errors.
func (s *Toolset) execute(tool *Tool, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", tool.Name, r)
		}
	}()
	return tool.Execute(args)
}
