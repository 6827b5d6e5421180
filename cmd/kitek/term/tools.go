package term

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"kitek/internal/ai"
	"kitek/internal/command"
	"kitek/internal/config"
	"kitek/internal/content"
)

// EffectSink collects the shell actions produced by confirmed tool
// calls. Dispatch runs the whitelist handlers in order; the handlers
// push actions here and the shell applies the drained batch afterwards,
// still in call order.
type EffectSink struct {
	mu      sync.Mutex
	actions []command.Action
}

func (s *EffectSink) push(a command.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, a)
}

// Drain returns and clears the collected actions.
func (s *EffectSink) Drain() []command.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := s.actions
	s.actions = nil
	return actions
}

// NewToolset builds the closed whitelist the model may invoke, bound to
// the command surface. This is the only bridge from generated text to
// side effects, and it is never extended at runtime.
func NewToolset(processor *command.Processor, logger *zap.Logger) (*ai.Toolset, *EffectSink, error) {
	sink := &EffectSink{}

	set, err := ai.NewToolset(logger,
		&ai.Tool{
			Name:        "runCommand",
			Description: "Execute a terminal command",
			Execute: func(args []string) error {
				if len(args) == 0 {
					return fmt.Errorf("runCommand requires a command")
				}
				// Join the arguments so both [CALL:runCommand(theme green)]
				// and [CALL:runCommand(theme,green)] work.
				sink.push(processor.Run(strings.Join(args, " ")))
				return nil
			},
		},
		&ai.Tool{
			Name:        "navigateTo",
			Description: "Navigate to a section",
			Execute: func(args []string) error {
				if len(args) == 0 {
					return fmt.Errorf("navigateTo requires a section")
				}
				section := args[0]
				if _, ok := content.Titles[section]; !ok {
					return fmt.Errorf("unknown section %q", section)
				}
				sink.push(command.Action{Kind: command.ActionNavigate, Target: section})
				return nil
			},
		},
		&ai.Tool{
			Name:        "showHelp",
			Description: "Display the help menu",
			Execute: func([]string) error {
				sink.push(command.Action{Kind: command.ActionHelp})
				return nil
			},
		},
		&ai.Tool{
			Name:        "setTheme",
			Description: "Change the phosphor theme",
			Execute: func(args []string) error {
				if len(args) == 0 {
					return fmt.Errorf("setTheme requires a theme")
				}
				if !config.ValidTheme(args[0]) {
					return fmt.Errorf("unknown theme %q", args[0])
				}
				sink.push(command.Action{Kind: command.ActionSetTheme, Theme: args[0]})
				return nil
			},
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return set, sink, nil
}
