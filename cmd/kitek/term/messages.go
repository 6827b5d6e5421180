package term

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kitek/internal/ai"
	"kitek/internal/boot"
	"kitek/internal/printer"
)

// ContentReloadedMsg tells the shell the section library changed on
// disk and the current panel should be re-rendered. Sent from outside
// the event loop by the content watcher.
type ContentReloadedMsg struct{}

// Internal messages driving the shell's animations and async work.
type (
	// bootStepMsg plays boot.Sequence[index].
	bootStepMsg struct{ index int }

	// clockTickMsg updates the status bar clock.
	clockTickMsg time.Time

	// aiReplyMsg delivers the result of one inference turn.
	aiReplyMsg struct {
		turn *ai.Turn
		ok   bool
	}

	// typeTickMsg advances the typing animation by one character.
	typeTickMsg struct{}

	// decisionMsg delivers the user's confirmation decision.
	decisionMsg struct{ accepted bool }

	// snakeTickMsg advances the snake game one step.
	snakeTickMsg struct{}

	// downloadStepMsg plays printer.Steps[index].
	downloadStepMsg struct{ index int }

	// downloadDoneMsg reports the written CV file.
	downloadDoneMsg struct {
		path string
		err  error
	}

	// clipboardMsg reports the contact email copy.
	clipboardMsg struct{ err error }

	// powerOffMsg ends the shutdown effect.
	powerOffMsg struct{}
)

func bootStepCmd(index int) tea.Cmd {
	if index >= len(boot.Sequence) {
		return func() tea.Msg { return bootStepMsg{index: index} }
	}
	return tea.Tick(boot.Sequence[index].Delay, func(time.Time) tea.Msg {
		return bootStepMsg{index: index}
	})
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func typeTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typeTickMsg{}
	})
}

func snakeTickCmd() tea.Cmd {
	return tea.Tick(snakeTickRate, func(time.Time) tea.Msg {
		return snakeTickMsg{}
	})
}

func downloadStepCmd(index int) tea.Cmd {
	return tea.Tick(printer.Steps[index].Delay, func(time.Time) tea.Msg {
		return downloadStepMsg{index: index}
	})
}

func powerOffCmd() tea.Cmd {
	return tea.Tick(powerOffDelay, func(time.Time) tea.Msg {
		return powerOffMsg{}
	})
}

// askCmd submits a query to the interpreter off the event loop.
func (m Model) askCmd(query string) tea.Cmd {
	interp := m.interp
	timeout := m.cfg.AI.PromptTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		turn, ok := interp.HandleQuery(ctx, query)
		return aiReplyMsg{turn: turn, ok: ok}
	}
}

// awaitDecisionCmd blocks on the confirmation channel.
func awaitDecisionCmd(result <-chan bool) tea.Cmd {
	return func() tea.Msg {
		return decisionMsg{accepted: <-result}
	}
}
