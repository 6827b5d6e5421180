// Package command implements the terminal command surface: the keyword
// table, the theme command, the directory listing easter egg and the
// help menu. Commands resolve to typed Actions the shell applies;
// free text that matches nothing becomes an AI query when the
// assistant is up, an error line otherwise.
package command

import (
	"strings"

	"go.uber.org/zap"

	"kitek/internal/config"
	"kitek/internal/content"
)

// ActionKind tells the shell what a command resolved to.
type ActionKind int

const (
	// ActionNone is the zero value; nothing to do (empty input).
	ActionNone ActionKind = iota

	// ActionNavigate switches the content panel to Action.Target.
	ActionNavigate

	// ActionHelp shows the help menu.
	ActionHelp

	// ActionThemeMenu shows the phosphor theme panel.
	ActionThemeMenu

	// ActionSetTheme applies Action.Theme.
	ActionSetTheme

	// ActionDirListing shows the directory listing easter egg.
	ActionDirListing

	// ActionStartGame opens the snake view.
	ActionStartGame

	// ActionStartDownload opens the download view and starts the export.
	ActionStartDownload

	// ActionPowerOff plays the shutdown effect and quits.
	ActionPowerOff

	// ActionAIQuery hands Action.Query to the assistant.
	ActionAIQuery

	// ActionError shows Action.ErrorLines in red.
	ActionError
)

// Action is a resolved command.
type Action struct {
	Kind       ActionKind
	Target     string
	Theme      string
	Query      string
	ErrorLines []string
}

// entry maps command keywords to a navigation target.
type entry struct {
	keywords []string
	target   string
}

// The keyword table. Matching is exact on the whole cleaned input.
var entries = []entry{
	{keywords: []string{"home", "cls", "clear"}, target: content.SectionHome},
	{keywords: []string{"exp", "work"}, target: content.SectionExperience},
	{keywords: []string{"skill", "skills"}, target: content.SectionSkills},
	{keywords: []string{"proj", "projects"}, target: content.SectionProjects},
	{keywords: []string{"contact", "mail"}, target: content.SectionContact},
	{keywords: []string{"download", "pdf", "print"}, target: content.SectionDownload},
	{keywords: []string{"snake", "game", "play"}, target: content.SectionSnake},
	{keywords: []string{"exit", "quit", "shutdown", "poweroff"}, target: "exit"},
}

// Processor resolves raw command input into Actions.
type Processor struct {
	aiAvailable func() bool
	logger      *zap.Logger
}

// NewProcessor creates a processor. aiAvailable reports whether free
// text can fall through to the assistant; nil means never.
func NewProcessor(aiAvailable func() bool, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if aiAvailable == nil {
		aiAvailable = func() bool { return false }
	}
	return &Processor{aiAvailable: aiAvailable, logger: logger.Named("command")}
}

// Run resolves one line of input.
func (p *Processor) Run(raw string) Action {
	clean := strings.ToLower(strings.TrimSpace(raw))
	if clean == "" {
		return Action{Kind: ActionNone}
	}

	if strings.HasPrefix(clean, "theme") {
		return p.themeCommand(clean)
	}

	switch clean {
	case "dir", "ls", "ls -la":
		return Action{Kind: ActionDirListing}
	case "help":
		return Action{Kind: ActionHelp}
	}

	for _, e := range entries {
		for _, k := range e.keywords {
			if clean != k {
				continue
			}
			switch e.target {
			case "exit":
				return Action{Kind: ActionPowerOff}
			case content.SectionSnake:
				return Action{Kind: ActionStartGame}
			case content.SectionDownload:
				return Action{Kind: ActionStartDownload}
			default:
				return Action{Kind: ActionNavigate, Target: e.target}
			}
		}
	}

	if p.aiAvailable() {
		p.logger.Debug("falling through to assistant", zap.String("query", raw))
		return Action{Kind: ActionAIQuery, Query: strings.TrimSpace(raw)}
	}
	return Action{
		Kind: ActionError,
		ErrorLines: []string{
			"ERROR: COMMAND NOT RECOGNIZED",
			"Type 'help' for available commands",
		},
	}
}

// themeCommand handles "theme" and "theme <name>".
func (p *Processor) themeCommand(clean string) Action {
	parts := strings.Fields(clean)
	if len(parts) == 1 {
		return Action{Kind: ActionThemeMenu}
	}
	name := parts[1]
	if !config.ValidTheme(name) {
		return Action{
			Kind: ActionError,
			ErrorLines: []string{
				"ERROR: Unknown theme \"" + name + "\"",
				"Available: green, amber, white",
			},
		}
	}
	return Action{Kind: ActionSetTheme, Theme: name}
}
