// Package term implements the interactive terminal shell for KITEK.
// The shell is split across multiple files:
//   - model.go: types, construction, Init
//   - update.go: the event loop and mode handlers
//   - view.go: rendering
//   - tools.go: the AI tool whitelist bound to shell effects
package term

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"kitek/cmd/kitek/ui"
	"kitek/internal/ai"
	"kitek/internal/boot"
	"kitek/internal/command"
	"kitek/internal/config"
	"kitek/internal/content"
	"kitek/internal/game"
	"kitek/internal/printer"
	"kitek/internal/store"
)

// Mode is the shell's top-level input state.
type Mode int

const (
	// ModeBoot plays the BIOS boot sequence; any key skips it.
	ModeBoot Mode = iota

	// ModeBrowse is the normal shell: menu, panels, command input.
	ModeBrowse

	// ModeConfirm blocks normal input while a tool batch awaits the
	// user's accept/cancel decision.
	ModeConfirm

	// ModeSnake hands the keyboard to the snake game.
	ModeSnake

	// ModePowerOff plays the shutdown effect, then quits.
	ModePowerOff
)

// lineKind classifies console transcript lines for styling.
type lineKind int

const (
	lineUser lineKind = iota
	lineAI
	lineError
	lineStatus
	lineHint
)

// consoleLine is one appended line under the content panel.
type consoleLine struct {
	kind lineKind
	text string
}

// panelContent is what the viewport shows above the console lines.
type panelContent struct {
	markdown bool
	text     string
}

const (
	snakeCols     = 20
	snakeRows     = 15
	snakeTickRate = 100 * time.Millisecond
	powerOffDelay = 700 * time.Millisecond
)

// Options wires the shell to its collaborators.
type Options struct {
	Config    *config.Config
	Library   *content.Library
	Prefs     *store.Preferences // nil disables persistence
	Interp    *ai.Interpreter    // nil disables the assistant
	Sink      *EffectSink        // nil unless Interp is set
	Processor *command.Processor
	Exporter  *printer.Exporter
	Logger    *zap.Logger

	// Theme overrides the persisted/configured startup theme.
	Theme string
}

// Model is the bubbletea model for the whole shell.
type Model struct {
	cfg       *config.Config
	styles    ui.Styles
	library   *content.Library
	prefs     *store.Preferences
	interp    *ai.Interpreter
	sink      *EffectSink
	processor *command.Processor
	exporter  *printer.Exporter
	logger    *zap.Logger

	mode   Mode
	width  int
	height int
	ready  bool

	// boot sequence
	bootIndex      int
	bootTranscript boot.Transcript
	bootFlash      bool

	// browse state
	input     textinput.Model
	viewport  viewport.Model
	renderer  *glamour.TermRenderer
	menuIndex int
	section   string
	panel     panelContent
	console   []consoleLine
	spin      spinner.Model
	thinking  bool

	// AI turn state
	typingTurn     *ai.Turn
	typingPos      int
	queuedQuery    string
	confirmedCalls []ai.ToolCall

	// snake state
	snake      *game.Snake
	highScore  int
	scoreSaved bool

	// download state
	downloadLines []string

	// clock
	now    time.Time
	warsaw *time.Location
}

// New builds the shell model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	theme := startupTheme(opts)

	input := textinput.New()
	input.Prompt = "C:\\> "
	input.CharLimit = 256
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	highScore := 0
	if opts.Prefs != nil {
		if score, err := opts.Prefs.SnakeHighScore(); err == nil {
			highScore = score
		}
	}

	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		warsaw = nil
	}

	return Model{
		cfg:       opts.Config,
		styles:    ui.NewStyles(ui.ThemeByName(theme)),
		library:   opts.Library,
		prefs:     opts.Prefs,
		interp:    opts.Interp,
		sink:      opts.Sink,
		processor: opts.Processor,
		exporter:  opts.Exporter,
		logger:    logger.Named("term"),
		mode:      ModeBoot,
		input:     input,
		spin:      spin,
		section:   content.SectionHome,
		highScore: highScore,
		now:       time.Now(),
		warsaw:    warsaw,
	}
}

// startupTheme resolves the theme precedence: explicit flag, persisted
// preference, config file, default.
func startupTheme(opts Options) string {
	if opts.Theme != "" && config.ValidTheme(opts.Theme) {
		return opts.Theme
	}
	if opts.Prefs != nil {
		if saved, err := opts.Prefs.Theme(); err == nil && config.ValidTheme(saved) {
			return saved
		}
	}
	if opts.Config != nil && config.ValidTheme(opts.Config.Theme) {
		return opts.Config.Theme
	}
	return "green"
}

// Init starts the boot sequence and the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		bootStepCmd(0),
		clockTickCmd(),
		m.spin.Tick,
	)
}
