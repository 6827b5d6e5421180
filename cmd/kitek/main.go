package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kitek/cmd/kitek/term"
	"kitek/internal/ai"
	"kitek/internal/command"
	"kitek/internal/config"
	"kitek/internal/content"
	"kitek/internal/logging"
	"kitek/internal/printer"
	"kitek/internal/store"
)

// Version is stamped by the release build.
var Version = "dev"

var (
	verbose    bool
	configPath string
	noAI       bool
	themeFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "kitek",
	Short: "KITEK - Marcin's retro terminal portfolio",
	Long: `KITEK is an interactive DOS-style terminal portfolio.

Browse the CV sections with the arrow keys, type commands at the
C:\> prompt (try HELP), or just ask a question: with a local Ollama
running, KITEK_AI.EXE answers and can drive the terminal for you,
after asking permission for every action it wants to take.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the KITEK version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("KITEK %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.kitek/config.yaml)")
	rootCmd.Flags().BoolVar(&noAI, "no-ai", false, "disable the assistant even if configured")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "startup theme: green, amber or white")
	rootCmd.AddCommand(versionCmd)
}

func runShell() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Dir: cfg.StateDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("kitek starting", zap.String("version", Version))

	// Preferences are best effort: a broken database costs persistence,
	// not the whole app.
	var prefs *store.Preferences
	if p, err := store.Open(filepath.Join(cfg.StateDir, "kitek.db"), logger); err != nil {
		logger.Warn("preferences unavailable", zap.Error(err))
	} else {
		prefs = p
		defer prefs.Close()
	}

	library := content.NewLibrary(logger)
	if cfg.ContentPath != "" {
		if err := library.LoadOverrides(cfg.ContentPath); err != nil {
			logger.Warn("content overrides not loaded", zap.Error(err))
		}
	}

	var (
		interp *ai.Interpreter
		sink   *term.EffectSink
	)
	// The processor runs on the UI event loop, so it may only consult
	// the cached probe result; the warmup goroutine below fills it.
	aiAvailable := func() bool {
		return interp != nil && interp.Usable()
	}
	processor := command.NewProcessor(aiAvailable, logger)

	if cfg.AI.Enabled && !noAI {
		gateway := ai.NewOllamaGateway(cfg.AI, logger)
		manager := ai.NewSessionManager(gateway, logger)
		toolset, toolSink, err := term.NewToolset(processor, logger)
		if err != nil {
			return fmt.Errorf("build toolset: %w", err)
		}
		interp = ai.NewInterpreter(manager, toolset, logger)
		sink = toolSink
		defer func() { _ = interp.Close() }()

		// Warm the availability probe so the first command at the
		// prompt does not wait on the network round trip.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			interp.Available(ctx)
		}()
	}

	exporter := printer.NewExporter(library, cfg.StateDir, logger)

	model := term.New(term.Options{
		Config:    cfg,
		Library:   library,
		Prefs:     prefs,
		Interp:    interp,
		Sink:      sink,
		Processor: processor,
		Exporter:  exporter,
		Logger:    logger,
		Theme:     themeFlag,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.ContentPath != "" {
		stop, err := library.Watch(cfg.ContentPath, func() {
			program.Send(term.ContentReloadedMsg{})
		})
		if err != nil {
			logger.Warn("content watcher not started", zap.Error(err))
		} else {
			defer stop()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	logger.Info("kitek exiting")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
