package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"kitek/cmd/kitek/ui"
	"kitek/internal/boot"
	"kitek/internal/command"
	"kitek/internal/content"
	"kitek/internal/game"
	"kitek/internal/printer"
)

// Update is the shell's event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeBoot:
			// any key skips the boot sequence
			return m.enterBrowse()
		case ModeSnake:
			return m.handleSnakeKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		case ModePowerOff:
			return m, nil
		default:
			return m.handleBrowseKey(msg)
		}

	case bootStepMsg:
		return m.handleBootStep(msg)

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case aiReplyMsg:
		return m.handleAIReply(msg)

	case typeTickMsg:
		return m.handleTypeTick()

	case decisionMsg:
		return m.handleDecision(msg)

	case snakeTickMsg:
		return m.handleSnakeTick()

	case downloadStepMsg:
		return m.handleDownloadStep(msg)

	case downloadDoneMsg:
		return m.handleDownloadDone(msg)

	case clipboardMsg:
		if msg.err != nil {
			m = m.appendConsole(lineError, "> Clipboard unavailable: "+msg.err.Error())
		} else {
			m = m.appendConsole(lineStatus, "> Email address copied to clipboard.")
		}
		return m, nil

	case ContentReloadedMsg:
		if m.mode == ModeBrowse && m.panel.markdown {
			if body, ok := m.library.Get(m.section); ok {
				m = m.setPanel(panelContent{markdown: true, text: body})
			}
		}
		return m, nil

	case powerOffMsg:
		return m, tea.Quit
	}

	return m, nil
}

// --- resize ---

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentWidth := msg.Width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := msg.Height - 7
	if contentHeight < 5 {
		contentHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(contentWidth),
	)
	if err != nil {
		m.logger.Warn("glamour renderer unavailable", zap.Error(err))
	} else {
		m.renderer = renderer
	}

	if m.mode != ModeBoot {
		m = m.refreshViewport()
	}
	return m, nil
}

// --- boot ---

func (m Model) handleBootStep(msg bootStepMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeBoot {
		return m, nil
	}
	if msg.index >= len(boot.Sequence) {
		return m.enterBrowse()
	}
	step := boot.Sequence[msg.index]
	m.bootTranscript.Append(step.Text)
	// flash lines brighten the screen until the next step, standing in
	// for the original's beeps
	m.bootFlash = step.Flash
	m.bootIndex = msg.index + 1
	return m, bootStepCmd(msg.index + 1)
}

func (m Model) enterBrowse() (tea.Model, tea.Cmd) {
	m.mode = ModeBrowse
	m.bootFlash = false
	m = m.loadSection(content.SectionHome)
	m.input.Focus()
	return m, nil
}

// --- browse keys ---

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.menuIndex = (m.menuIndex + len(content.Order) - 1) % len(content.Order)
		return m, nil
	case tea.KeyDown:
		m.menuIndex = (m.menuIndex + 1) % len(content.Order)
		return m, nil
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyCtrlE:
		if m.section == content.SectionContact {
			return m, copyEmailCmd()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m.activateMenuSelection()
	}

	m.input.SetValue("")
	action := m.processor.Run(value)
	return m.applyAction(action, false)
}

// activateMenuSelection opens the highlighted section. Hitting enter on
// DOWNLOAD while already looking at it starts the export, standing in
// for the original's download button.
func (m Model) activateMenuSelection() (tea.Model, tea.Cmd) {
	target := content.Order[m.menuIndex]
	if target == content.SectionDownload && m.section == content.SectionDownload {
		return m.applyAction(command.Action{Kind: command.ActionStartDownload}, false)
	}
	return m.applyAction(command.Action{Kind: command.ActionNavigate, Target: target}, false)
}

// --- actions ---

// applyAction carries out one resolved command. fromTool marks actions
// produced by confirmed AI tool calls, which may not start new queries.
func (m Model) applyAction(action command.Action, fromTool bool) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case command.ActionNone:
		return m, nil

	case command.ActionNavigate:
		m = m.loadSection(action.Target)
		return m, nil

	case command.ActionHelp:
		m = m.setPanel(panelContent{text: command.HelpText(m.aiAvailable())})
		return m, nil

	case command.ActionThemeMenu:
		m = m.setPanel(panelContent{text: command.ThemeMenuText()})
		return m, nil

	case command.ActionSetTheme:
		return m.applyTheme(action.Theme)

	case command.ActionDirListing:
		m = m.setPanel(panelContent{text: command.DirListing(m.now)})
		return m, nil

	case command.ActionStartGame:
		return m.startGame()

	case command.ActionStartDownload:
		return m.startDownload()

	case command.ActionPowerOff:
		m.mode = ModePowerOff
		return m, powerOffCmd()

	case command.ActionAIQuery:
		if fromTool {
			// a tool re-entering the model would loop forever
			m.logger.Warn("tool call tried to start a new AI query", zap.String("query", action.Query))
			return m, nil
		}
		return m.startQuery(action.Query)

	case command.ActionError:
		for _, line := range action.ErrorLines {
			m = m.appendConsole(lineError, line)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) applyTheme(name string) (tea.Model, tea.Cmd) {
	m.styles = ui.NewStyles(ui.ThemeByName(name))
	if m.prefs != nil {
		if err := m.prefs.SetTheme(name); err != nil {
			m.logger.Warn("failed to persist theme", zap.Error(err))
		}
	}
	m = m.setPanel(panelContent{text: command.ThemeAppliedText(name)})
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.mode = ModeSnake
	m.snake = game.New(snakeCols, snakeRows, time.Now().UnixNano())
	m.scoreSaved = false
	return m, snakeTickCmd()
}

// --- AI turn ---

func (m Model) aiAvailable() bool {
	return m.interp != nil
}

// startQuery begins one AI turn. A query during the typing animation is
// queued (latest wins); a query while a confirmation is pending is
// rejected with a status line.
func (m Model) startQuery(query string) (tea.Model, tea.Cmd) {
	if m.interp == nil {
		m = m.appendConsole(lineError, "ERROR: COMMAND NOT RECOGNIZED")
		return m, nil
	}
	if m.interp.Confirmer().Waiting() {
		m = m.appendConsole(lineHint, "> Resolve the pending tool request first (y/ESC).")
		return m, nil
	}
	if m.thinking || m.typingTurn != nil {
		m.queuedQuery = query
		return m, nil
	}

	m = m.appendConsole(lineUser, "> USER: "+query)
	m = m.appendConsole(lineStatus, "KITEK_AI.EXE: Processing...")
	m.thinking = true
	return m, tea.Batch(m.askCmd(query), m.spin.Tick)
}

func (m Model) handleAIReply(msg aiReplyMsg) (tea.Model, tea.Cmd) {
	m.thinking = false
	m = m.dropLastStatusLine()

	if !msg.ok {
		m = m.appendConsole(lineError, "KITEK_AI.EXE: ERROR - Neural network malfunction")
		return m.startNextQueued()
	}

	m.typingTurn = msg.turn
	m.typingPos = 0
	m = m.appendConsole(lineAI, "KITEK_AI.EXE: ")
	if msg.turn.DisplayText == "" {
		return m.finishTyping()
	}
	return m, typeTickCmd(m.charDelay(0))
}

// charDelay returns the delay before typing rune pos+1. typingPos
// counts runes, not bytes, so multi-byte glyphs never render half-cut.
func (m Model) charDelay(pos int) time.Duration {
	runes := []rune(m.typingTurn.DisplayText)
	if pos < len(runes) && runes[pos] == ' ' {
		return m.cfg.Typing.SpaceDelay
	}
	return m.cfg.Typing.CharDelay
}

func (m Model) handleTypeTick() (tea.Model, tea.Cmd) {
	if m.typingTurn == nil {
		return m, nil
	}
	runes := []rune(m.typingTurn.DisplayText)
	if m.typingPos < len(runes) {
		m.typingPos++
		m = m.setLastConsoleLine("KITEK_AI.EXE: " + string(runes[:m.typingPos]))
	}
	if m.typingPos < len(runes) {
		return m, typeTickCmd(m.charDelay(m.typingPos))
	}
	return m.finishTyping()
}

// finishTyping runs after the response is fully typed out: only now may
// the confirmation prompt appear, so tool execution never races the
// display animation.
func (m Model) finishTyping() (tea.Model, tea.Cmd) {
	turn := m.typingTurn
	m.typingTurn = nil
	m.typingPos = 0

	if turn == nil || !turn.HasCalls() {
		return m.startNextQueued()
	}

	result, err := m.interp.RequestConfirmation(turn)
	if err != nil {
		// the slot is busy; new queries are rejected while a batch is
		// pending, so this should not happen in practice
		m.logger.Error("confirmation slot busy", zap.Error(err))
		m = m.appendConsole(lineError, "> Tool execution unavailable.")
		return m.startNextQueued()
	}

	m.confirmedCalls = turn.Calls
	m.mode = ModeConfirm
	m.input.SetValue("")
	return m, awaitDecisionCmd(result)
}

func (m Model) startNextQueued() (tea.Model, tea.Cmd) {
	if m.queuedQuery == "" {
		return m, nil
	}
	query := m.queuedQuery
	m.queuedQuery = ""
	return m.startQuery(query)
}

// --- confirmation ---

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.interp.Confirmer().Submit(m.input.Value()) {
			m.input.SetValue("")
		}
		return m, nil
	case tea.KeyEsc:
		m.interp.Confirmer().Cancel()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleDecision(msg decisionMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeBrowse
	calls := m.confirmedCalls
	m.confirmedCalls = nil

	if !msg.accepted {
		m = m.appendConsole(lineHint, "> Tool execution cancelled.")
		next, cmd := m.startNextQueued()
		return next, cmd
	}

	results := m.interp.Dispatch(calls)
	for _, r := range results {
		switch {
		case r.Unknown:
			m = m.appendConsole(lineHint, "> Unknown function: "+r.Call.FunctionName)
		case r.Err != nil:
			m = m.appendConsole(lineError, "> "+r.Call.String()+" failed: "+r.Err.Error())
		}
	}

	var cmds []tea.Cmd
	next := m
	for _, action := range m.sink.Drain() {
		applied, cmd := next.applyAction(action, true)
		next = applied.(Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	queued, cmd := next.startNextQueued()
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return queued, tea.Batch(cmds...)
}

// --- snake ---

func (m Model) handleSnakeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.snake.Steer(game.DirUp)
	case tea.KeyDown:
		m.snake.Steer(game.DirDown)
	case tea.KeyLeft:
		m.snake.Steer(game.DirLeft)
	case tea.KeyRight:
		m.snake.Steer(game.DirRight)
	case tea.KeyEnter:
		if m.snake.Over() {
			m.snake.Restart()
			m.scoreSaved = false
			return m, snakeTickCmd()
		}
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.menuIndex = 0
		m = m.loadSection(content.SectionHome)
		return m, nil
	}
	return m, nil
}

func (m Model) handleSnakeTick() (tea.Model, tea.Cmd) {
	if m.mode != ModeSnake || m.snake == nil {
		return m, nil
	}
	if m.snake.Step() {
		return m, snakeTickCmd()
	}

	// game over: persist the high score once
	if !m.scoreSaved {
		m.scoreSaved = true
		if score := m.snake.Score(); score > m.highScore {
			m.highScore = score
			if m.prefs != nil {
				if err := m.prefs.SetSnakeHighScore(score); err != nil {
					m.logger.Warn("failed to persist high score", zap.Error(err))
				}
			}
		}
	}
	return m, nil
}

// --- download ---

func (m Model) startDownload() (tea.Model, tea.Cmd) {
	if !m.exporter.TryStart() {
		m = m.appendConsole(lineHint, "> Export already in progress.")
		return m, nil
	}
	m = m.loadSection(content.SectionDownload)
	m.downloadLines = nil
	return m, downloadStepCmd(0)
}

func (m Model) handleDownloadStep(msg downloadStepMsg) (tea.Model, tea.Cmd) {
	step := printer.Steps[msg.index]
	m.downloadLines = append(m.downloadLines, "> "+step.Text)
	m = m.refreshViewport()

	if msg.index+1 < len(printer.Steps) {
		return m, downloadStepCmd(msg.index + 1)
	}

	exporter := m.exporter
	return m, func() tea.Msg {
		path, err := exporter.Write()
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m Model) handleDownloadDone(msg downloadDoneMsg) (tea.Model, tea.Cmd) {
	m.exporter.Finish()
	if msg.err != nil {
		m.downloadLines = append(m.downloadLines, "", "EXPORT FAILED: "+msg.err.Error())
	} else {
		m.downloadLines = append(m.downloadLines,
			"",
			printer.RenderBar(len(printer.Steps), len(printer.Steps)),
			"",
			"═══════════════════════════════════════════",
			"DOWNLOAD COMPLETE!",
			"═══════════════════════════════════════════",
			"",
			"> CV written to "+msg.path,
		)
	}
	m = m.refreshViewport()
	return m, nil
}

// --- clipboard ---

func copyEmailCmd() tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(content.Email)}
	}
}

// --- console/panel helpers ---

func (m Model) loadSection(key string) Model {
	body, ok := m.library.Get(key)
	if !ok {
		m.logger.Warn("unknown section", zap.String("section", key))
		return m.setPanel(panelContent{text: fmt.Sprintf("ERROR: Template not found: %s", key)})
	}
	m.section = key
	for i, section := range content.Order {
		if section == key {
			m.menuIndex = i
			break
		}
	}
	m.console = nil
	m.downloadLines = nil
	return m.setPanel(panelContent{markdown: true, text: body})
}

func (m Model) setPanel(panel panelContent) Model {
	m.panel = panel
	return m.refreshViewport()
}

func (m Model) appendConsole(kind lineKind, text string) Model {
	m.console = append(m.console, consoleLine{kind: kind, text: text})
	return m.refreshViewport()
}

func (m Model) setLastConsoleLine(text string) Model {
	if len(m.console) == 0 {
		return m
	}
	m.console[len(m.console)-1].text = text
	return m.refreshViewport()
}

// dropLastStatusLine removes the "Processing..." indicator.
func (m Model) dropLastStatusLine() Model {
	if len(m.console) > 0 && m.console[len(m.console)-1].kind == lineStatus {
		m.console = m.console[:len(m.console)-1]
	}
	return m.refreshViewport()
}
